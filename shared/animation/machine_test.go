package animation

import (
	"testing"

	"github.com/automoto/zsengine/shared/fsm"
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(t *testing.T, table fsm.Table, preds fsm.Predicates, anims map[string]*Animation, catalog Catalog) *Machine {
	t.Helper()
	m, err := fsm.Build("fighter", table, preds)
	require.NoError(t, err)
	am, err := NewMachine(m, anims, catalog, "")
	require.NoError(t, err)
	return am
}

func TestFrameSequence(t *testing.T) {
	am := newMachine(t,
		fsm.Table{{State: "idle"}},
		nil,
		map[string]*Animation{"idle": {FrameLength: 2, FrameCount: 3}},
		nil,
	)

	expected := []int{0, 0, 1, 1, 2, 2, 0, 0, 1}
	for counter, frame := range expected {
		am.Update()
		require.Equal(t, counter, am.StateFrame())
		assert.Equal(t, frame, am.Frame(), "counter %d", counter)
	}
}

func TestCompleteAfterOneLoop(t *testing.T) {
	am := newMachine(t,
		fsm.Table{{State: "idle"}},
		nil,
		map[string]*Animation{"idle": {FrameLength: 2, FrameCount: 3}},
		nil,
	)

	for i := 0; i < 5; i++ {
		am.Update()
		assert.False(t, am.Complete(), "counter %d", am.StateFrame())
	}
	am.Update()
	assert.True(t, am.Complete())
}

func TestStateChangeResetsFrame(t *testing.T) {
	attack := false
	am := newMachine(t,
		fsm.Table{
			{State: "idle", Transitions: []fsm.TransitionSpec{{Check: "attack", To: "attack"}}},
			{State: "attack", Transitions: []fsm.TransitionSpec{{Check: "auto", To: "idle"}}},
		},
		fsm.Predicates{"attack": func() bool { return attack }},
		map[string]*Animation{
			"idle":   {FrameLength: 1, FrameCount: 4},
			"attack": {FrameLength: 1, FrameCount: 3},
		},
		nil,
	)

	am.Update()
	am.Update()
	require.Equal(t, 1, am.StateFrame())

	attack = true
	am.Update()
	assert.Equal(t, "attack", am.State())
	assert.Equal(t, 0, am.StateFrame(), "first update after a change yields frame 0")
	assert.Equal(t, "idle", am.LastState)

	attack = false
	am.Update()
	am.Update()
	assert.Equal(t, "attack", am.State())
	assert.True(t, am.Complete())

	am.Update()
	assert.Equal(t, "idle", am.State(), "auto transition fires once the animation completes")
}

func TestBufferedTransitionWaitsForAnimationEnd(t *testing.T) {
	hit := false
	am := newMachine(t,
		fsm.Table{
			{State: "idle", Transitions: []fsm.TransitionSpec{{Check: "hit", To: "combo", Buffered: true}}},
			{State: "combo"},
		},
		fsm.Predicates{"hit": func() bool { return hit }},
		map[string]*Animation{
			"idle":  {FrameLength: 2, FrameCount: 2},
			"combo": {FrameLength: 1, FrameCount: 1},
		},
		nil,
	)

	am.Update() // counter 0
	hit = true
	am.Update() // buffers, counter 1
	hit = false
	am.Update() // counter 2
	assert.Equal(t, "idle", am.State())
	am.Update() // counter 3 == length-1 after this tick
	assert.Equal(t, "idle", am.State())
	am.Update()
	assert.Equal(t, "combo", am.State())
}

func TestDefaultAnimationFallback(t *testing.T) {
	am := newMachine(t,
		fsm.Table{{State: "idle"}, {State: "crouch"}},
		nil,
		map[string]*Animation{"idle": {FrameLength: 3, FrameCount: 2}},
		nil,
	)

	am.SetState("crouch")
	assert.Same(t, am.Animation("idle"), am.Current())
}

func TestNewMachineErrors(t *testing.T) {
	m := fsm.New("fighter", "idle")

	_, err := NewMachine(m, map[string]*Animation{"run": {FrameLength: 1, FrameCount: 1}}, nil, "")
	assert.ErrorIs(t, err, ErrMissingAnimation)

	_, err = NewMachine(m, map[string]*Animation{"idle": {FrameLength: 0, FrameCount: 1}}, nil, "")
	assert.ErrorIs(t, err, ErrBadAnimation)

	_, err = NewMachine(m, map[string]*Animation{"idle": {FrameLength: 1, FrameCount: 1, Hitboxes: []string{"fist"}}}, nil, "")
	assert.ErrorIs(t, err, ErrUnknownHitbox)

	_, err = NewMachine(m, map[string]*Animation{"idle": {
		FrameLength:   1,
		FrameCount:    2,
		FrameHitboxes: map[int][]string{5: {"fist"}},
	}}, Catalog{"fist": {Name: "fist"}}, "")
	assert.ErrorIs(t, err, ErrBadAnimation)
}

func TestFrameIndexedHitboxes(t *testing.T) {
	catalog := Catalog{
		"fist": {Name: "fist", Shape: ShapeRect, Position: gamemath.Point{X: 10, Y: 4}, W: 6, H: 4},
	}
	am := newMachine(t,
		fsm.Table{{State: "idle"}},
		nil,
		map[string]*Animation{"idle": {
			FrameLength:   1,
			FrameCount:    5,
			FrameHitboxes: map[int][]string{2: {"fist"}},
		}},
		catalog,
	)

	for counter := 0; counter < 10; counter++ {
		am.Update()
		boxes := am.ResolveHitboxes(1, gamemath.Point{}, "")
		if am.Frame() == 2 {
			assert.Len(t, boxes, 1, "counter %d", counter)
		} else {
			assert.Empty(t, boxes, "counter %d", counter)
		}
	}
}

func TestResolveHitboxes(t *testing.T) {
	catalog := Catalog{
		"body":  {Name: "body", Shape: ShapeRect, Position: gamemath.Point{X: 2, Y: 2}, W: 10, H: 20, Key: HurtboxKey},
		"fist":  {Name: "fist", Shape: ShapeCircle, Position: gamemath.Point{X: 14, Y: 8}, Radius: 3},
		"elbow": {Name: "elbow", Shape: ShapeRect, Position: gamemath.Point{X: 12, Y: 6}, W: 2, H: 2},
	}
	am := newMachine(t,
		fsm.Table{{State: "idle"}},
		nil,
		map[string]*Animation{"idle": {
			FrameLength:   1,
			FrameCount:    2,
			Hitboxes:      []string{"body", "elbow"},
			FrameHitboxes: map[int][]string{0: {"fist", "elbow"}},
		}},
		catalog,
	)
	am.Update()

	assert.Equal(t, []string{"body", "elbow", "fist"}, am.ActiveHitboxes())

	boxes := am.ResolveHitboxes(2, gamemath.Point{X: 100, Y: 50}, "")
	require.Len(t, boxes, 3)

	assert.Equal(t, gamemath.Point{X: 104, Y: 54}, boxes[0].Position)
	assert.Equal(t, 20.0, boxes[0].W)
	assert.Equal(t, 40.0, boxes[0].H)

	fist := boxes[2]
	assert.Equal(t, ShapeCircle, fist.Shape)
	assert.Equal(t, 6.0, fist.Radius)
	assert.Equal(t, gamemath.Point{X: 128, Y: 66}, fist.Position)

	hurt := am.ResolveHitboxes(2, gamemath.Point{X: 100, Y: 50}, HurtboxKey)
	require.Len(t, hurt, 1)
	assert.Equal(t, "body", hurt[0].Name)
}

func TestCueOnFirstTickOfSoundFrame(t *testing.T) {
	am := newMachine(t,
		fsm.Table{{State: "idle"}},
		nil,
		map[string]*Animation{"idle": {FrameLength: 2, FrameCount: 3, SoundFrame: 1}},
		nil,
	)
	assert.False(t, am.Cue(), "nothing cues before the first update")

	var cued []int
	for i := 0; i < 12; i++ {
		am.Update()
		if am.Cue() {
			cued = append(cued, am.StateFrame())
		}
	}
	assert.Equal(t, []int{2, 8}, cued)
}

func TestNoSoundNeverCues(t *testing.T) {
	am := newMachine(t,
		fsm.Table{{State: "idle"}},
		nil,
		map[string]*Animation{"idle": {FrameLength: 1, FrameCount: 2, SoundFrame: NoSound}},
		nil,
	)
	for i := 0; i < 4; i++ {
		am.Update()
		assert.False(t, am.Cue())
	}
}

func TestHitboxOverlaps(t *testing.T) {
	box := func(x, y, w, h float64) Hitbox {
		return RectHitbox("box", gamemath.NewRect(x, y, w, h))
	}
	circle := func(x, y, r float64) Hitbox {
		return Hitbox{Name: "circle", Shape: ShapeCircle, Position: gamemath.Point{X: x, Y: y}, Radius: r}
	}

	tests := []struct {
		name string
		a, b Hitbox
		want bool
	}{
		{"rect inside rect", box(5, 5, 4, 4), box(0, 0, 20, 20), true},
		{"rect around rect", box(0, 0, 20, 20), box(5, 5, 4, 4), true},
		{"rects sharing an edge", box(0, 0, 10, 10), box(10, 0, 10, 10), false},
		{"rects apart", box(0, 0, 10, 10), box(11, 0, 10, 10), false},
		{"circle inside rect", circle(10, 10, 2), box(0, 0, 20, 20), true},
		{"rect inside circle", box(9, 9, 2, 2), circle(10, 10, 8), true},
		{"circle touching rect", circle(12, 5, 2), box(0, 0, 10, 10), false},
		{"circles overlapping", circle(0, 0, 3), circle(4, 0, 3), true},
		{"circle inside circle", circle(0, 0, 1), circle(0, 0, 5), true},
		{"circles touching", circle(0, 0, 2), circle(4, 0, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}
