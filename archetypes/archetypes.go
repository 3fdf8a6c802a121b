package archetypes

import (
	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Sprite = newArchetype(
		tags.Sprite,
		components.Object,
		components.Sprite,
		components.Physics,
		components.State,
		components.Controller,
	)
	Region = newArchetype(
		tags.Region,
		components.Region,
	)
	CollisionLayer = newArchetype(
		components.CollisionLayer,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)

	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}
