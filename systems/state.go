package systems

import (
	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates advances every animation state machine one tick, then rolls
// controller input over so "pressed" predicates only fire once.
func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		m := components.State.Get(e)
		m.Update()

		if m.Cue() {
			events.SoundCue.Publish(ecs.World, events.SoundCueData{
				Entity: e.Entity(),
				Sprite: spriteName(e),
				State:  m.State(),
			})
		}
	})

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		components.Controller.Get(e).Advance()
	})
}
