package factory

import (
	"fmt"

	"github.com/automoto/zsengine/archetypes"
	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollisionLayer spawns the collision layer singleton holding docs'
// systems in declaration order.
func CreateCollisionLayer(ecs *ecs.ECS, docs []cfg.CollisionDoc) (*donburi.Entry, error) {
	var layer components.CollisionLayerData
	for _, doc := range docs {
		s, err := NewCollisionSystem(doc)
		if err != nil {
			return nil, err
		}
		layer.Add(s)
	}

	entry := archetypes.CollisionLayer.Spawn(ecs)
	components.CollisionLayer.SetValue(entry, layer)
	return entry, nil
}

// NewCollisionSystem converts one collision document. For hitbox systems a
// response names the state struck sprites are forced into, and restart
// renews it on every hit.
func NewCollisionSystem(doc cfg.CollisionDoc) (components.CollisionSystem, error) {
	kind, err := components.ParseCollisionKind(doc.Kind)
	if err != nil {
		return components.CollisionSystem{}, fmt.Errorf("collision %q: %w", doc.Name, err)
	}

	s := components.CollisionSystem{
		Name:   doc.Name,
		Kind:   kind,
		GroupA: doc.GroupA,
		GroupB: doc.GroupB,
	}

	switch kind {
	case components.SpriteVsRegion:
		switch doc.Response {
		case "", cfg.ResponseSmooth:
			s.WallResponse = components.Smooth
		case cfg.ResponseBounce:
			s.WallResponse = components.Bounce
		default:
			return components.CollisionSystem{}, fmt.Errorf("collision %q: unknown wall response %q", doc.Name, doc.Response)
		}
	case components.SpriteVsHitbox:
		state := doc.Response
		if state == "" {
			state = cfg.Animation.HurtState
		}
		if doc.Restart {
			s.HitResponse = systems.RestartState(state)
		} else {
			s.HitResponse = systems.ReactState(state)
		}
	}
	return s, nil
}
