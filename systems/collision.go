package systems

import (
	"fmt"

	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCollisions runs every registered collision system once, in
// registration order. Group membership is snapshotted per system.
func UpdateCollisions(ecs *ecs.ECS) {
	layerEntry, ok := components.CollisionLayer.First(ecs.World)
	if !ok {
		return
	}
	layer := components.CollisionLayer.Get(layerEntry)

	for _, s := range layer.Systems {
		RunCollisionSystem(ecs.World, s)
	}
}

// RunCollisionSystem dispatches one system by kind.
func RunCollisionSystem(w donburi.World, s components.CollisionSystem) {
	switch s.Kind {
	case components.SpriteVsRegion:
		spriteVsRegion(w, s)
	case components.SpriteVsSprite:
		spriteVsSprite(w, s)
	case components.SpriteVsHitbox:
		spriteVsHitbox(w, s)
	default:
		panic(fmt.Sprintf("collision system %q: unknown kind %v", s.Name, s.Kind))
	}
}

// guard runs one pair's test and response, logging instead of propagating
// a panic so the rest of the scan still runs.
func guard(s components.CollisionSystem, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().Error("collision pair failed",
				zap.String("system", s.Name),
				zap.Stringer("kind", s.Kind),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}

func defaultHurtState() string {
	return cfg.Animation.HurtState
}
