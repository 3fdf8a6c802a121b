package systems

import (
	"testing"

	"github.com/automoto/zsengine/archetypes"
	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/shared/animation"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/automoto/zsengine/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGuardRecoversAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	s := components.CollisionSystem{Name: "broken", Kind: components.SpriteVsHitbox}
	assert.NotPanics(t, func() {
		guard(s, func() { panic("boom") })
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "collision pair failed", entries[0].Message)
	assert.Equal(t, "broken", entries[0].ContextMap()["system"])
}

func TestFailingPairDoesNotStopScan(t *testing.T) {
	e := newTestECS()
	spawnBoxer(t, e, "a", 0, 0, "fighters")
	b := spawnBoxer(t, e, "b", 25, 0, "fighters")
	c := spawnBoxer(t, e, "c", 100, 0, "fighters")
	d := spawnBoxer(t, e, "d", 125, 0, "fighters")

	var struck []donburi.Entity
	RunCollisionSystem(e.World, components.CollisionSystem{
		Name:   "combat",
		Kind:   components.SpriteVsHitbox,
		GroupA: "fighters",
		HitResponse: func(_ donburi.World, e *donburi.Entry, _ []animation.Hitbox) {
			if e.Entity() == b.Entity() {
				panic("b cannot be hit")
			}
			struck = append(struck, e.Entity())
		},
	})

	assert.Len(t, struck, 2)
	assert.Contains(t, struck, c.Entity())
	assert.Contains(t, struck, d.Entity())
}

func TestUnknownKindPanics(t *testing.T) {
	e := newTestECS()
	assert.Panics(t, func() {
		RunCollisionSystem(e.World, components.CollisionSystem{Name: "odd", Kind: components.CollisionKind(42)})
	})
}

func TestUpdateCollisionsRunsLayerInOrder(t *testing.T) {
	e := newTestECS()
	spawnFloor(t, e.World)
	box := spawnBox(e, "box", 50, 70, 20, 20, "movers")
	body(box).Velocity.SetValue(0, 15)

	layer := archetypes.CollisionLayer.Spawn(e)
	components.CollisionLayer.Get(layer).Add(
		components.CollisionSystem{Name: "land", Kind: components.SpriteVsRegion, GroupA: "movers", GroupB: "walls", WallResponse: components.Bounce},
		components.CollisionSystem{Name: "crowd", Kind: components.SpriteVsSprite, GroupA: "movers"},
	)

	var order []string
	events.WallContact.Subscribe(e.World, func(_ donburi.World, d events.WallContactData) {
		order = append(order, d.System)
	})

	UpdatePhysics(e)
	UpdateCollisions(e)
	events.ProcessAll(e.World)

	assert.Equal(t, []string{"land"}, order)
	assert.InDelta(t, -15, body(box).Velocity.J, 1e-6)
}

func TestUpdateCollisionsWithoutLayer(t *testing.T) {
	e := newTestECS()
	assert.NotPanics(t, func() { UpdateCollisions(e) })
}

func TestKillRemovesEntityAfterTimer(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 0, 0, "fighters")
	body(a).Velocity.SetValue(5, 0)

	var died []string
	events.Died.Subscribe(e.World, func(_ donburi.World, d events.DeathData) {
		died = append(died, d.Name)
	})

	Kill(a, 2)
	Kill(a, 100)
	require.Equal(t, 2, components.Death.Get(a).Timer, "killing a dying entity does nothing")

	UpdatePhysics(e)
	assert.InDelta(t, 0, object(a).X, 1e-9, "dying entities do not move")

	UpdateDeaths(e)
	require.True(t, a.Valid())

	UpdateDeaths(e)
	events.ProcessAll(e.World)

	assert.False(t, e.World.Valid(a.Entity()))
	assert.Empty(t, tags.Members(e.World, "fighters"))
	assert.Equal(t, []string{"a"}, died)
}

func TestUpdateStatesAdvancesControllers(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 0, 0)
	ctrl := components.NewController("attack")
	a.AddComponent(components.Controller)
	components.Controller.Set(a, ctrl)

	ctrl.Set("attack", true)
	assert.True(t, ctrl.JustPressed("attack"))

	UpdateStates(e)
	assert.Equal(t, 0, components.State.Get(a).StateFrame())
	assert.False(t, components.Controller.Get(a).JustPressed("attack"))
	assert.True(t, components.Controller.Get(a).Held("attack"))
}

func TestUpdateStatesPublishesSoundCue(t *testing.T) {
	e := newTestECS()
	spawnBoxer(t, e, "a", 0, 0)
	b := spawnBoxer(t, e, "b", 50, 0)
	components.State.Get(b).SetState("hurt")

	var cues []events.SoundCueData
	events.SoundCue.Subscribe(e.World, func(_ donburi.World, c events.SoundCueData) {
		cues = append(cues, c)
	})

	for i := 0; i < 4; i++ {
		UpdateStates(e)
		events.ProcessAll(e.World)
	}
	assert.Empty(t, cues)

	UpdateStates(e)
	events.ProcessAll(e.World)
	require.Len(t, cues, 1, "only punch declares a sound frame")
	assert.Equal(t, "a", cues[0].Sprite)
	assert.Equal(t, "punch", cues[0].State)
}
