package scenes

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const blockYAML = `
animations:
  idle: {frame_length: 1, frame_count: 1, size: [16, 16]}
`

const dropYAML = `
name: drop
animations:
  block: block.yaml
groups: [bodies, floors]
regions:
  - name: floor
    groups: [floors]
    walls:
      - {name: ground, origin: [0, 100], end: [200, 100]}
sprites:
  - name: crate
    animation: block
    position: [50, 0]
    groups: [bodies]
    friction: 1
    gravity: 1
collisions:
  - {name: land, kind: sprite_vs_region, group_a: bodies, group_b: floors}
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"drop.yaml":  {Data: []byte(dropYAML)},
		"block.yaml": {Data: []byte(blockYAML)},
	}
}

func TestCrateComesToRestOnFloor(t *testing.T) {
	sim, err := NewSimulation(testFS(), "drop.yaml")
	require.NoError(t, err)
	assert.Equal(t, "drop", sim.Name())
	assert.Len(t, sim.ID(), 36)

	var contacts int
	events.WallContact.Subscribe(sim.World(), func(_ donburi.World, _ events.WallContactData) {
		contacts++
	})

	crate, ok := sim.Sprite("crate")
	require.True(t, ok)

	for i := 0; i < 40; i++ {
		sim.Tick()
	}

	obj := components.Object.Get(crate)
	assert.InDelta(t, 84, obj.Y, 1e-6, "bottom edge sits on the floor")
	assert.InDelta(t, 50, obj.X, 1e-6)
	assert.InDelta(t, 0, components.Physics.Get(crate).Velocity.J, 1e-6)
	assert.Positive(t, contacts, "wall contacts are delivered within the tick")
	assert.Equal(t, 40, sim.Ticks())
}

func TestDeadSpritesLeaveTheSimulation(t *testing.T) {
	sim, err := NewSimulation(testFS(), "drop.yaml")
	require.NoError(t, err)

	var died []string
	events.Died.Subscribe(sim.World(), func(_ donburi.World, d events.DeathData) {
		died = append(died, d.Name)
	})

	crate, ok := sim.Sprite("crate")
	require.True(t, ok)
	systems.Kill(crate, 2)

	sim.Tick()
	_, ok = sim.Sprite("crate")
	assert.True(t, ok)

	sim.Tick()
	_, ok = sim.Sprite("crate")
	assert.False(t, ok)
	assert.Equal(t, []string{"crate"}, died)
}

func TestControllersByName(t *testing.T) {
	sim, err := NewSimulation(testFS(), "drop.yaml")
	require.NoError(t, err)

	ctrls := sim.Controllers()
	require.Contains(t, ctrls, "crate")
	assert.Empty(t, ctrls["crate"].Current)
}

func TestNewSimulationReportsBadScenes(t *testing.T) {
	fsys := testFS()
	fsys["broken.yaml"] = &fstest.MapFile{Data: []byte("name: broken\ngroups: [a, a]\n")}

	_, err := NewSimulation(fsys, "broken.yaml")
	assert.Error(t, err)

	_, err = NewSimulation(fsys, "missing.yaml")
	assert.Error(t, err)
}

const walkerYAML = `
animations:
  idle: {frame_length: 1, frame_count: 1, size: [16, 16]}
  idle_left: {frame_length: 1, frame_count: 1, size: [16, 16]}
movement:
  speed: 1
  states: {idle: 1}
  facing: [idle]
`

const walkYAML = `
name: walk
animations:
  walker: walker.yaml
groups: [bodies]
sprites:
  - name: w
    animation: walker
    position: [100, 0]
    groups: [bodies]
    controls: [left, right]
    friction: 1
`

func TestHeldDirectionWalksSprite(t *testing.T) {
	fsys := testFS()
	fsys["walk.yaml"] = &fstest.MapFile{Data: []byte(walkYAML)}
	fsys["walker.yaml"] = &fstest.MapFile{Data: []byte(walkerYAML)}

	sim, err := NewSimulation(fsys, "walk.yaml")
	require.NoError(t, err)
	w, ok := sim.Sprite("w")
	require.True(t, ok)

	sim.Controllers()["w"].Set("left", true)
	for i := 0; i < 5; i++ {
		sim.Tick()
	}

	assert.Less(t, components.Object.Get(w).X, 100.0)
	assert.Equal(t, "idle_left", components.State.Get(w).AnimationState())
}
