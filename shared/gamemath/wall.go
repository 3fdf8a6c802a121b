package gamemath

import (
	"fmt"
	"math"
)

// Wall is a directed segment from Origin to Origin + (I, J). Walls describe
// static region geometry and, transiently, the path a point travels in one
// tick.
type Wall struct {
	Vector
	Origin Point
}

func NewWall(name string, origin, end Point) *Wall {
	return &Wall{
		Vector: Vector{Name: name, I: end.X - origin.X, J: end.Y - origin.Y},
		Origin: origin,
	}
}

// WallFromVector anchors a copy of v at origin.
func WallFromVector(v *Vector, origin Point) *Wall {
	return &Wall{
		Vector: Vector{Name: v.Name, I: v.I, J: v.J},
		Origin: origin,
	}
}

func (w *Wall) String() string {
	end := w.EndPoint()
	return fmt.Sprintf("Wall: %s angle: %.4f, (%g, %g) to (%g, %g)",
		w.Name, w.Angle(), w.Origin.X, w.Origin.Y, end.X, end.Y)
}

func (w *Wall) EndPoint() Point {
	return w.ApplyToPoint(w.Origin)
}

// Rect returns the wall's bounding box, never thinner than one unit.
func (w *Wall) Rect() Rect {
	width := math.Max(math.Abs(w.I), 1)
	height := math.Max(math.Abs(w.J), 1)

	end := w.EndPoint()
	return NewRect(math.Min(w.Origin.X, end.X), math.Min(w.Origin.Y, end.Y), width, height)
}

// Normal returns a unit vector a quarter turn from the wall's direction.
// Rotate it by a further half turn to face the opposite side.
func (w *Wall) Normal() *Vector {
	n := NewVector(w.Name+" normal force", 1, 0)
	n.SetAngle(w.Angle())
	return n.Rotate(.25)
}

// Copy returns a rotated and scaled copy sharing the same origin.
func (w *Wall) Copy(rotate, scale float64) *Wall {
	return WallFromVector(w.Vector.Copy(rotate, scale), w.Origin)
}

// RotateAround turns both the wall's direction and its origin about pivot.
func (w *Wall) RotateAround(pivot Point, angle float64) *Wall {
	d := NewVector("displacement", w.Origin.X-pivot.X, w.Origin.Y-pivot.Y)
	d.Rotate(angle)
	w.Rotate(angle)
	w.Origin = d.ApplyToPoint(pivot)
	return w
}

// AxisCollision returns where the infinite line through w meets the infinite
// line along v anchored at origin. Parallel lines return false.
//
// The problem is rotated about w's origin until w points straight down, so
// the crossing is the other line's y-intercept in that frame, then rotated
// back.
func (w *Wall) AxisCollision(v *Vector, origin Point) (Point, bool) {
	other := WallFromVector(v, origin)
	delta := .75 - w.Angle()

	other.RotateAround(w.Origin, delta)
	local := Point{X: other.Origin.X - w.Origin.X, Y: other.Origin.Y}

	yInt, ok := other.YIntercept(local)
	if !ok {
		return Point{}, false
	}

	collision := NewVector("collision", 0, yInt-w.Origin.Y)
	collision.Rotate(-delta)
	return collision.ApplyToPoint(w.Origin), true
}

// VectorCollision is AxisCollision bounded to both segments, with one unit
// of tolerance on each axis.
func (w *Wall) VectorCollision(v *Vector, origin Point) (Point, bool) {
	p, ok := w.AxisCollision(v, origin)
	if !ok {
		return Point{}, false
	}

	if !w.inBounds(p) || !WallFromVector(v, origin).inBounds(p) {
		return Point{}, false
	}
	return p, true
}

func (w *Wall) inBounds(p Point) bool {
	start, end := w.Origin, w.EndPoint()
	return withinSpan(p.X, start.X, end.X) && withinSpan(p.Y, start.Y, end.Y)
}

func withinSpan(x, a, b float64) bool {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return lo-1 <= x && x <= hi+1
}

// NormalAdjustment returns the displacement that moves p back onto the
// wall's line along the wall normal.
func (w *Wall) NormalAdjustment(p Point) (Point, bool) {
	hit, ok := w.AxisCollision(w.Normal(), p)
	if !ok {
		return Point{}, false
	}
	return hit.Sub(p), true
}
