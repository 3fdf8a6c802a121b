package systems

import (
	"github.com/automoto/zsengine/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var physicsQuery = donburi.NewQuery(filter.Contains(components.Physics, components.Object))

// UpdatePhysics integrates every body once.
func UpdatePhysics(ecs *ecs.ECS) {
	physicsQuery.Each(ecs.World, func(e *donburi.Entry) {
		// Dying entities freeze in place until removal
		if e.HasComponent(components.Death) {
			return
		}

		body := components.Physics.Get(e)
		body.Step(components.Object.Get(e))
	})
}
