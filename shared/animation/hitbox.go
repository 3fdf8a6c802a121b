package animation

import (
	"fmt"

	"github.com/automoto/zsengine/shared/gamemath"
)

// HurtboxKey tags hitboxes that may be struck.
const HurtboxKey = "hurtbox"

type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// HitboxDef is a hit shape in the animation's local, unscaled space.
// Rect positions are top-left corners; circle positions are centres.
type HitboxDef struct {
	Name     string
	Shape    Shape
	Position gamemath.Point
	W, H     float64
	Radius   float64
	Key      string
}

// Catalog maps hitbox names to their descriptors.
type Catalog map[string]HitboxDef

// Hitbox is a HitboxDef resolved into world space.
type Hitbox struct {
	Name     string
	Key      string
	Shape    Shape
	Position gamemath.Point
	W, H     float64
	Radius   float64
}

// Rect returns the hitbox's bounding rectangle.
func (h Hitbox) Rect() gamemath.Rect {
	if h.Shape == ShapeCircle {
		return gamemath.NewRect(h.Position.X-h.Radius, h.Position.Y-h.Radius, h.Radius*2, h.Radius*2)
	}
	return gamemath.NewRect(h.Position.X, h.Position.Y, h.W, h.H)
}

// Overlaps reports whether h and other share any area, including when one
// lies wholly inside the other. Shapes that only touch do not overlap.
func (h Hitbox) Overlaps(other Hitbox) bool {
	switch {
	case h.Shape == ShapeCircle && other.Shape == ShapeCircle:
		dx := h.Position.X - other.Position.X
		dy := h.Position.Y - other.Position.Y
		r := h.Radius + other.Radius
		return dx*dx+dy*dy < r*r
	case h.Shape == ShapeCircle:
		return other.Rect().CircleCollision(h.Radius, h.Position)
	case other.Shape == ShapeCircle:
		return h.Rect().CircleCollision(other.Radius, other.Position)
	}
	_, ok := h.Rect().Clip(other.Rect())
	return ok
}

// RectHitbox wraps a world-space rectangle, such as a body, as a hitbox.
func RectHitbox(name string, r gamemath.Rect) Hitbox {
	return Hitbox{Name: name, Shape: ShapeRect, Position: r.Position, W: r.W, H: r.H}
}

// Resolve scales d and offsets it by the owner's top-left world position.
func (d HitboxDef) Resolve(scale float64, topLeft gamemath.Point) Hitbox {
	return Hitbox{
		Name:  d.Name,
		Key:   d.Key,
		Shape: d.Shape,
		Position: gamemath.Point{
			X: d.Position.X*scale + topLeft.X,
			Y: d.Position.Y*scale + topLeft.Y,
		},
		W:      d.W * scale,
		H:      d.H * scale,
		Radius: d.Radius * scale,
	}
}

// ActiveHitboxes merges the state-level and frame-indexed hitbox names for
// the current frame, state-level first, without duplicates. A directional
// variant of the state replaces the bare state's tables.
func (m *Machine) ActiveHitboxes() []string {
	a := m.Current()
	frame := a.FrameHitboxes[m.Frame()]

	if len(a.Hitboxes) == 0 {
		return frame
	}

	names := make([]string, 0, len(a.Hitboxes)+len(frame))
	seen := make(map[string]bool, cap(names))
	for _, list := range [][]string{a.Hitboxes, frame} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// ResolveHitboxes returns the world-space hitboxes active on the current
// frame. A non-empty key keeps only hitboxes tagged with it.
func (m *Machine) ResolveHitboxes(scale float64, topLeft gamemath.Point, key string) []Hitbox {
	var out []Hitbox
	for _, name := range m.ActiveHitboxes() {
		def := m.catalog[name]
		if key != "" && def.Key != key {
			continue
		}
		out = append(out, def.Resolve(scale, topLeft))
	}
	return out
}

// Catalog returns the machine's hitbox descriptors.
func (m *Machine) Catalog() Catalog {
	return m.catalog
}
