package systems

import (
	"math"

	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/shared/animation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var movementQuery = donburi.NewQuery(filter.Contains(
	components.Movement,
	components.Controller,
	components.State,
	components.Physics,
))

// UpdateMovement turns held direction controls into forces and facing. The
// state entered this tick decides both: a state in the facing set turns the
// sprite toward the held direction, and a state in the speed table pushes
// the body at speed times the state's multiplier. Diagonals are normalised.
func UpdateMovement(ecs *ecs.ECS) {
	movementQuery.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}

		x, y := components.Controller.Get(e).Direction()
		if x == 0 && y == 0 {
			return
		}

		move := components.Movement.Get(e)
		m := components.State.Get(e)
		state := m.State()

		if move.Facing[state] {
			if f, ok := animation.FacingOf(x, y); ok {
				m.SetFacing(f)
			}
		}

		mult, ok := move.States[state]
		if !ok || mult == 0 {
			return
		}
		speed := move.Speed * mult
		if x != 0 && y != 0 {
			speed *= math.Sqrt(.5)
		}
		components.Physics.Get(e).ApplyForce(x*speed, y*speed)
	})
}
