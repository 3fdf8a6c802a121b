package factory

import (
	"github.com/automoto/zsengine/archetypes"
	"github.com/automoto/zsengine/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// AddToSpace places e's object into the scene's space, if there is one.
func AddToSpace(ecs *ecs.ECS, e *donburi.Entry) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Add(components.Object.Get(e).Object)
}
