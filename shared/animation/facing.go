package animation

// Facing is the direction a sprite looks in. Animations and hitbox tables
// may have per-facing variants named "<state>_<facing>".
type Facing int

const (
	FaceRight Facing = iota
	FaceLeft
	FaceUp
	FaceDown
)

func (f Facing) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceUp:
		return "up"
	case FaceDown:
		return "down"
	default:
		return "right"
	}
}

// ParseFacing maps a facing name back to its value.
func ParseFacing(s string) (Facing, bool) {
	switch s {
	case "right":
		return FaceRight, true
	case "left":
		return FaceLeft, true
	case "up":
		return FaceUp, true
	case "down":
		return FaceDown, true
	}
	return FaceRight, false
}

// FacingOf returns the facing for a direction. Horizontal input wins on
// diagonals. A zero direction has no facing.
func FacingOf(x, y float64) (Facing, bool) {
	switch {
	case x > 0:
		return FaceRight, true
	case x < 0:
		return FaceLeft, true
	case y < 0:
		return FaceUp, true
	case y > 0:
		return FaceDown, true
	}
	return FaceRight, false
}

// Facing returns the direction the machine's sprite looks in.
func (m *Machine) Facing() Facing {
	return m.facing
}

// SetFacing turns the sprite. The running animation keeps its frame.
func (m *Machine) SetFacing(f Facing) {
	m.facing = f
}

// AnimationState returns the animation name for the current state and
// facing: "<state>_<facing>" when that variant exists, the bare state
// otherwise.
func (m *Machine) AnimationState() string {
	state := m.State()
	if variant := state + "_" + m.facing.String(); m.animations[variant] != nil {
		return variant
	}
	return state
}
