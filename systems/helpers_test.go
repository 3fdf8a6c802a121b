package systems

import (
	"testing"

	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/shared/physics"
	"github.com/automoto/zsengine/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const boxerYAML = `
name: boxer
hitboxes:
  body: {x: 0, y: 0, w: 20, h: 20, key: hurtbox}
  fist: {x: -10, y: 5, w: 40, h: 10}
animations:
  idle: {frame_length: 4, frame_count: 1, size: [20, 20], hitboxes: [body]}
  punch: {frame_length: 4, frame_count: 2, size: [20, 20], hitboxes: [body, fist], sound_frame: 1}
  hurt: {frame_length: 4, frame_count: 2, size: [20, 20], hitboxes: [body]}
transitions:
  punch:
    - {check: auto, to: idle}
  idle: []
  hurt:
    - {check: auto, to: idle}
`

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// spawnBox creates a stateless sprite whose body is its object rect.
func spawnBox(e *ecs.ECS, name string, x, y, w, h float64, groups ...string) *donburi.Entry {
	world := e.World
	entry := world.Entry(world.Create(tags.Sprite, components.Object, components.Sprite, components.Physics))

	components.Object.SetValue(entry, components.ObjectData{Object: resolv.NewObject(x, y, w, h)})
	components.Sprite.SetValue(entry, components.SpriteData{Name: name, Scale: 1})
	body := physics.NewBody(name, 1)
	body.LastPosition.X, body.LastPosition.Y = x, y
	components.Physics.SetValue(entry, components.PhysicsData{Body: body})

	tags.Join(entry, groups...)
	return entry
}

// spawnBoxer creates a sprite running the boxer animation set.
func spawnBoxer(t *testing.T, e *ecs.ECS, name string, x, y float64, groups ...string) *donburi.Entry {
	t.Helper()

	set, err := config.ParseAnimationSet([]byte(boxerYAML))
	require.NoError(t, err)
	m, err := set.NewMachine(nil)
	require.NoError(t, err)

	entry := spawnBox(e, name, x, y, 20, 20, groups...)
	entry.AddComponent(components.State)
	components.State.SetValue(entry, components.StateData{Machine: m})
	return entry
}

func body(e *donburi.Entry) *physics.Body {
	return components.Physics.Get(e).Body
}

func object(e *donburi.Entry) *components.ObjectData {
	return components.Object.Get(e)
}
