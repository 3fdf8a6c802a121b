// Package gamemath holds the pure 2D value math used by the simulation:
// displacement vectors, 2x2 matrices, rectangles and wall segments.
//
// Angles are measured in turns (1.0 == one full revolution), clockwise from
// the positive i axis with j flipped, because screen space grows downward.
package gamemath

import (
	"fmt"
	"math"
)

const tau = 2 * math.Pi

// verticalEpsilon is the relative size below which a component is treated as
// zero when deciding whether a line is vertical or horizontal.
const verticalEpsilon = 1e-9

// Point is a position in world space.
type Point struct {
	X, Y float64
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vector is a named 2D displacement.
type Vector struct {
	Name string
	I, J float64
}

func NewVector(name string, i, j float64) *Vector {
	return &Vector{Name: name, I: i, J: j}
}

func (v *Vector) String() string {
	return fmt.Sprintf("Vector %s: %gi, %gj", v.Name, v.I, v.J)
}

// Value returns the vector's components.
func (v *Vector) Value() (float64, float64) {
	return v.I, v.J
}

// SetValue alters the components in place.
func (v *Vector) SetValue(i, j float64) *Vector {
	v.I = i
	v.J = j
	return v
}

func (v *Vector) Complex() complex128 {
	return complex(v.I, v.J)
}

func (v *Vector) Magnitude() float64 {
	return math.Hypot(v.I, v.J)
}

func (v *Vector) IsZero() bool {
	return v.I == 0 && v.J == 0
}

// Add sums other into v.
func (v *Vector) Add(other *Vector) *Vector {
	v.I += other.I
	v.J += other.J
	return v
}

// Multiply replaces v with the complex product of v and other.
func (v *Vector) Multiply(other *Vector) *Vector {
	c := v.Complex() * other.Complex()
	v.I = real(c)
	v.J = imag(c)
	return v
}

// Scale multiplies both components by s.
func (v *Vector) Scale(s float64) *Vector {
	v.I *= s
	v.J *= s
	return v
}

// Rotate turns the vector in place by theta turns.
func (v *Vector) Rotate(theta float64) *Vector {
	theta *= tau
	return v.Multiply(&Vector{Name: "rotation", I: math.Cos(theta), J: -math.Sin(theta)})
}

// Angle returns the vector's direction in [0, 1) turns. The zero vector
// reports 0, which places it in quadrant 1; this is a boundary case, not an
// error.
func (v *Vector) Angle() float64 {
	if v.IsZero() {
		return 0
	}

	angle := math.Atan2(-v.J, v.I) / tau
	if angle < 0 {
		angle += 1
	}
	if angle >= 1 {
		angle = 0
	}
	return angle
}

// Quadrant returns 1..4 for the angle ranges [0,.25) [.25,.5) [.5,.75) [.75,1].
func (v *Vector) Quadrant() int {
	return QuadrantOf(v.Angle())
}

// QuadrantOf classifies an angle in turns. Values outside [0, 1] are wrapped.
func QuadrantOf(theta float64) int {
	if theta < 0 || theta > 1 {
		theta = WrapAngle(theta)
	}

	switch {
	case theta < .25:
		return 1
	case theta < .5:
		return 2
	case theta < .75:
		return 3
	default:
		return 4
	}
}

// WrapAngle maps any angle in turns onto [0, 1).
func WrapAngle(theta float64) float64 {
	return theta - math.Floor(theta)
}

// SetAngle rotates v so its angle equals the given value.
func (v *Vector) SetAngle(angle float64) *Vector {
	return v.Rotate(angle - v.Angle())
}

// ApplyToPoint returns p displaced by v.
func (v *Vector) ApplyToPoint(p Point) Point {
	return Point{X: p.X + v.I, Y: p.Y + v.J}
}

// Copy returns a rotated and scaled copy; the receiver is untouched.
func (v *Vector) Copy(rotate, scale float64) *Vector {
	c := &Vector{Name: v.Name, I: v.I, J: v.J}
	if rotate != 0 {
		c.Rotate(rotate)
	}
	return c.Scale(scale)
}

// BasisVectors returns the i and j unit vectors of a frame rotated by -angle.
func BasisVectors(angle float64) (*Vector, *Vector) {
	angle *= -1
	i := NewVector("basis_i", 1, 0).Rotate(angle)
	j := NewVector("basis_j", 0, 1).Rotate(angle)
	return i, j
}

// ScaleInDirection scales only the component of v parallel to angle.
// A scalar of 0 removes motion along that axis, -1 reflects it.
func (v *Vector) ScaleInDirection(angle, s float64) *Vector {
	bi, bj := BasisVectors(angle)
	toLocal := MatrixFromVectors(bi, bj)
	scale := Matrix{A: s, B: 0, C: 0, D: 1}
	m := scale.MultiplyMatrix(toLocal)

	v.I, v.J = m.MultiplyVector(v)
	return v.Rotate(angle)
}

// YIntercept returns the y value where the line through origin along v
// crosses x == 0. Vertical vectors have no intercept and return false.
func (v *Vector) YIntercept(origin Point) (float64, bool) {
	if math.Abs(v.I) <= verticalEpsilon*math.Abs(v.J) {
		return 0, false
	}

	if math.Abs(v.J) <= verticalEpsilon*math.Abs(v.I) {
		return origin.Y, true
	}

	slope := v.J / v.I
	return origin.Y - slope*origin.X, true
}

// CheckOrientation reports whether other points within a quarter turn of v.
// The comparison is shifted into the middle band so it never straddles 0/1.
func (v *Vector) CheckOrientation(other *Vector) bool {
	t1, t2 := v.Angle(), other.Angle()

	within := func(a1, a2 float64) bool {
		return a1-.25 < a2 && a2 < a1+.25
	}

	switch {
	case t1 >= .25 && t1 < .75:
		return within(t1, t2)
	case t1 < .25:
		return within(t1+.25, WrapAngle(t2+.25))
	default:
		return within(t1-.25, WrapAngle(t2-.25))
	}
}

// DrawPoint returns the top-left corner of the box spanned by v applied at
// origin, pulled out by buffer on both axes.
func (v *Vector) DrawPoint(origin Point, buffer float64) Point {
	end := v.ApplyToPoint(origin)

	switch v.Quadrant() {
	case 1:
		return Point{X: origin.X - buffer, Y: end.Y - buffer}
	case 2:
		return Point{X: end.X - buffer, Y: end.Y - buffer}
	case 3:
		return Point{X: end.X - buffer, Y: origin.Y - buffer}
	default:
		return Point{X: origin.X - buffer, Y: origin.Y - buffer}
	}
}
