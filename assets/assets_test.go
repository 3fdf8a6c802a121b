package assets

import (
	"testing"

	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/scenes"
	"github.com/automoto/zsengine/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxSceneRuns(t *testing.T) {
	sim, err := scenes.NewSimulation(Scenes(), Sandbox)
	require.NoError(t, err)

	for i := 0; i < 240; i++ {
		sim.Tick()
	}

	for _, name := range []string{"player", "dummy", "crate"} {
		e, ok := sim.Sprite(name)
		require.True(t, ok, name)

		obj := components.Object.Get(e)
		assert.Less(t, obj.Y+obj.H, 351.0, "%s stays above the arena floor", name)
		assert.Greater(t, obj.Y, 9.0, "%s stays below the arena ceiling", name)
	}
}

func TestArenaMapHasSpawns(t *testing.T) {
	level, err := leveldata.LoadLevel(Scenes(), "arena.tmx")
	require.NoError(t, err)

	for _, name := range []string{"left", "right", "top"} {
		_, ok := level.Spawn(name)
		assert.True(t, ok, name)
	}
	// 4 bounds edges and 4 ledge edges
	assert.Len(t, level.Walls, 8)
	assert.Equal(t, 640, level.MapWidth)

	// The bounds enclose the arena, so the floor faces up into it.
	floor := level.Walls[0]
	assert.Equal(t, 350.0, floor.Origin.Y)
	assert.Equal(t, 350.0, floor.EndPoint().Y)
	assert.Less(t, floor.Normal().J, -.99)
}
