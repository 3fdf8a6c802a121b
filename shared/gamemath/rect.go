package gamemath

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Position Point
	W, H     float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Position: Point{X: x, Y: y}, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect: (%g, %g) %gx%g", r.Position.X, r.Position.Y, r.W, r.H)
}

func (r Rect) Left() float64   { return r.Position.X }
func (r Rect) Top() float64    { return r.Position.Y }
func (r Rect) Right() float64  { return r.Position.X + r.W }
func (r Rect) Bottom() float64 { return r.Position.Y + r.H }

func (r Rect) TopLeft() Point     { return r.Position }
func (r Rect) TopRight() Point    { return Point{X: r.Right(), Y: r.Top()} }
func (r Rect) BottomLeft() Point  { return Point{X: r.Left(), Y: r.Bottom()} }
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

func (r Rect) MidTop() Point    { return Point{X: r.Left() + r.W/2, Y: r.Top()} }
func (r Rect) MidBottom() Point { return Point{X: r.Left() + r.W/2, Y: r.Bottom()} }
func (r Rect) MidLeft() Point   { return Point{X: r.Left(), Y: r.Top() + r.H/2} }
func (r Rect) MidRight() Point  { return Point{X: r.Right(), Y: r.Top() + r.H/2} }

func (r Rect) Center() Point {
	return Point{X: r.Left() + r.W/2, Y: r.Top() + r.H/2}
}

// SetCenter moves the rect so its centre sits on c.
func (r *Rect) SetCenter(c Point) {
	r.Position = Point{X: c.X - r.W/2, Y: c.Y - r.H/2}
}

func (r *Rect) Move(dx, dy float64) {
	r.Position.X += dx
	r.Position.Y += dy
}

// Clip returns the overlapping area of r and other. The bool is false when
// the overlap has no area; rects that only share an edge do not overlap.
func (r Rect) Clip(other Rect) (Rect, bool) {
	left := math.Max(r.Left(), other.Left())
	top := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	if right <= left || bottom <= top {
		return Rect{}, false
	}
	return NewRect(left, top, right-left, bottom-top), true
}

// Collision returns the centre of the overlap between r and other.
func (r Rect) Collision(other Rect) (Point, bool) {
	clip, ok := r.Clip(other)
	if !ok {
		return Point{}, false
	}
	return clip.Center(), true
}

// CircleCollision reports whether a circle overlaps r. A circle that only
// touches an edge does not, matching Clip.
func (r Rect) CircleCollision(radius float64, centre Point) bool {
	nx := math.Max(r.Left(), math.Min(centre.X, r.Right()))
	ny := math.Max(r.Top(), math.Min(centre.Y, r.Bottom()))
	dx := centre.X - nx
	dy := centre.Y - ny
	return dx*dx+dy*dy < radius*radius
}
