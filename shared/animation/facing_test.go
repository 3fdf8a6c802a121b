package animation

import (
	"testing"

	"github.com/automoto/zsengine/shared/fsm"
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacingOf(t *testing.T) {
	tests := []struct {
		x, y float64
		want Facing
		ok   bool
	}{
		{1, 0, FaceRight, true},
		{-1, 0, FaceLeft, true},
		{0, -1, FaceUp, true},
		{0, 1, FaceDown, true},
		{-1, 1, FaceLeft, true},
		{0, 0, FaceRight, false},
	}
	for _, tt := range tests {
		got, ok := FacingOf(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%v, %v)", tt.x, tt.y)
		assert.Equal(t, tt.want, got, "(%v, %v)", tt.x, tt.y)
	}

	for _, f := range []Facing{FaceRight, FaceLeft, FaceUp, FaceDown} {
		parsed, ok := ParseFacing(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, parsed)
	}
	_, ok := ParseFacing("sideways")
	assert.False(t, ok)
}

func newJabMachine(t *testing.T) *Machine {
	t.Helper()
	catalog := Catalog{
		"body":      {Name: "body", Shape: ShapeRect, W: 10, H: 10, Key: HurtboxKey},
		"jab_right": {Name: "jab_right", Shape: ShapeRect, Position: gamemath.Point{X: 10, Y: 2}, W: 6, H: 4},
		"jab_left":  {Name: "jab_left", Shape: ShapeRect, Position: gamemath.Point{X: -6, Y: 2}, W: 6, H: 4},
	}
	return newMachine(t,
		fsm.Table{{State: "idle"}},
		nil,
		map[string]*Animation{
			"idle":       {FrameLength: 1, FrameCount: 1, Hitboxes: []string{"body"}},
			"idle_right": {FrameLength: 1, FrameCount: 1, Hitboxes: []string{"body", "jab_right"}},
			"idle_left":  {FrameLength: 1, FrameCount: 2, Hitboxes: []string{"body", "jab_left"}},
		},
		catalog,
	)
}

func TestDirectionalHitboxTables(t *testing.T) {
	am := newJabMachine(t)
	am.Update()

	assert.Equal(t, FaceRight, am.Facing())
	assert.Equal(t, "idle_right", am.AnimationState())
	assert.Equal(t, []string{"body", "jab_right"}, am.ActiveHitboxes())

	am.SetFacing(FaceLeft)
	assert.Equal(t, "idle_left", am.AnimationState())
	assert.Equal(t, 2, am.Current().FrameCount)

	boxes := am.ResolveHitboxes(1, gamemath.Point{X: 100}, "")
	require.Len(t, boxes, 2)
	assert.Equal(t, "jab_left", boxes[1].Name)
	assert.Equal(t, gamemath.Point{X: 94, Y: 2}, boxes[1].Position)
}

func TestMissingDirectionFallsBackToState(t *testing.T) {
	am := newJabMachine(t)
	am.SetFacing(FaceUp)
	am.Update()

	assert.Equal(t, "idle", am.AnimationState())
	assert.Equal(t, []string{"body"}, am.ActiveHitboxes())
}

func TestTurningKeepsFrame(t *testing.T) {
	am := newJabMachine(t)
	am.SetFacing(FaceLeft)
	am.Update()
	am.Update()
	require.Equal(t, 1, am.Frame())

	am.SetFacing(FaceDown)
	assert.Equal(t, 1, am.StateFrame())
}
