package systems

import (
	"testing"

	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/shared/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestResolveHitboxesFiltersByKey(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 100, 50)

	all := ResolveHitboxes(a, "")
	assert.Len(t, all, 2)

	hurt := ResolveHitboxes(a, animation.HurtboxKey)
	require.Len(t, hurt, 1)
	assert.Equal(t, "body", hurt[0].Name)
	assert.InDelta(t, 100, hurt[0].Position.X, 1e-9)
	assert.InDelta(t, 50, hurt[0].Position.Y, 1e-9)
}

func TestHitboxPairTest(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 0, 0)
	b := spawnBoxer(t, e, "b", 25, 0)

	hits := HitboxPairTest(a, b)
	require.Len(t, hits, 1)
	assert.Equal(t, "fist", hits[0].Name)

	far := spawnBoxer(t, e, "far", 200, 0)
	assert.Empty(t, HitboxPairTest(a, far))
}

func TestMutualHitsAreBothApplied(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 0, 0, "fighters")
	b := spawnBoxer(t, e, "b", 25, 0, "fighters")

	var landed []events.HitData
	events.HitLanded.Subscribe(e.World, func(_ donburi.World, d events.HitData) {
		landed = append(landed, d)
	})

	RunCollisionSystem(e.World, components.CollisionSystem{
		Name:   "combat",
		Kind:   components.SpriteVsHitbox,
		GroupA: "fighters",
	})
	events.ProcessAll(e.World)

	assert.Equal(t, "hurt", components.State.Get(a).State())
	assert.Equal(t, "hurt", components.State.Get(b).State())

	require.Len(t, landed, 2)
	assert.Equal(t, a.Entity(), landed[0].Attacker)
	assert.Equal(t, b.Entity(), landed[0].Struck)
	assert.Equal(t, b.Entity(), landed[1].Attacker)
	assert.Equal(t, a.Entity(), landed[1].Struck)
}

func TestReactStateSkipsMissingAndCurrentStates(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 0, 0)
	m := components.State.Get(a)

	ReactState("stunned")(e.World, a, nil)
	assert.Equal(t, "punch", m.State())

	m.SetState("hurt")
	m.Update()
	require.Equal(t, 0, m.StateFrame())
	ReactState("hurt")(e.World, a, nil)
	assert.Equal(t, 0, m.StateFrame(), "an entity already reacting is not restarted")
}

func TestCustomHitResponse(t *testing.T) {
	e := newTestECS()
	spawnBoxer(t, e, "a", 0, 0, "fighters")
	spawnBoxer(t, e, "b", 25, 0, "fighters")

	var struck int
	RunCollisionSystem(e.World, components.CollisionSystem{
		Name:   "combat",
		Kind:   components.SpriteVsHitbox,
		GroupA: "fighters",
		HitResponse: func(_ donburi.World, _ *donburi.Entry, hits []animation.Hitbox) {
			struck += len(hits)
		},
	})
	assert.Equal(t, 2, struck)
}

func TestHitboxInsideTargetLands(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 30, 30)
	wall := spawnBox(e, "wall", 0, 0, 100, 100)

	var names []string
	for _, h := range HitboxPairTest(a, wall) {
		names = append(names, h.Name)
	}
	assert.Contains(t, names, "fist", "a fist wholly inside the target's body still lands")
}

func TestHitboxTouchingTargetMisses(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 0, 0)
	// The fist's right edge is x=30.
	b := spawnBox(e, "b", 30, 0, 20, 20)

	assert.Empty(t, HitboxPairTest(a, b))
}

func TestRestartStateRenewsReaction(t *testing.T) {
	e := newTestECS()
	a := spawnBoxer(t, e, "a", 0, 0)
	m := components.State.Get(a)

	RestartState("stunned")(e.World, a, nil)
	assert.Equal(t, "punch", m.State(), "a missing state is still skipped")

	m.SetState("hurt")
	m.Update()
	m.Update()
	require.Equal(t, 1, m.StateFrame())

	RestartState("hurt")(e.World, a, nil)
	assert.Equal(t, "hurt", m.State())
	assert.Equal(t, -1, m.StateFrame(), "a second hit starts the reaction over")
}
