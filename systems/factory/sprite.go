package factory

import (
	"fmt"

	"github.com/automoto/zsengine/archetypes"
	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/automoto/zsengine/shared/physics"
	"github.com/automoto/zsengine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateSprite spawns an animated, physics-driven sprite at x, y (top-left).
// Its state machine reads the controls declared in doc, and its object is
// sized to the default animation's frame. Sets with movement rules also get
// a Movement component.
func CreateSprite(ecs *ecs.ECS, set *cfg.AnimationSet, doc cfg.SpriteDoc, x, y float64) (*donburi.Entry, error) {
	ctrl := components.NewController(doc.Controls...)

	m, err := set.NewMachine(ctrl.Predicates())
	if err != nil {
		return nil, fmt.Errorf("sprite %q: %w", doc.Name, err)
	}

	scale := set.RenderScale()
	frame := m.Animation(m.DefaultState)

	sprite := archetypes.Sprite.Spawn(ecs)

	obj := resolv.NewObject(x, y, frame.W*scale, frame.H*scale)
	obj.AddTags("sprite")
	obj.Data = sprite
	components.Object.SetValue(sprite, components.ObjectData{Object: obj})

	components.Sprite.SetValue(sprite, components.SpriteData{
		Name:      doc.Name,
		Animation: set.Name,
		Scale:     scale,
	})

	props := doc.Body()
	body := physics.NewBody(doc.Name, props.Friction)
	body.SetMass(props.Mass)
	body.SetGravity(props.Gravity)
	body.SetElasticity(props.Elasticity)
	body.LastPosition.X, body.LastPosition.Y = x, y
	components.Physics.SetValue(sprite, components.PhysicsData{Body: body})

	if f, ok := doc.InitialFacing(); ok {
		m.SetFacing(f)
	}
	components.State.SetValue(sprite, components.StateData{Machine: m})
	components.Controller.Set(sprite, ctrl)

	if mv := set.Movement; mv != nil {
		donburi.Add(sprite, components.Movement, &components.MovementData{
			Speed:  mv.Speed,
			States: mv.States,
			Facing: mv.FacingStates(),
		})
	}

	entity := sprite.Entity()
	world := sprite.World
	m.OnChange(func(from, to string) {
		events.StateChanged.Publish(world, events.StateChangeData{
			Entity:  entity,
			Machine: doc.Name,
			From:    from,
			To:      to,
		})
	})

	tags.Join(sprite, doc.Groups...)
	AddToSpace(ecs, sprite)

	logger.L().Debug("sprite created",
		zap.String("sprite", doc.Name),
		zap.String("animation", set.Name),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Strings("groups", doc.Groups),
	)
	return sprite, nil
}
