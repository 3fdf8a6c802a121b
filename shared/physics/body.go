// Package physics integrates per-entity forces into velocity and position
// once per tick.
package physics

import (
	"fmt"
	"math"

	"github.com/automoto/zsengine/shared/gamemath"
)

// Mover is anything the integrator can displace.
type Mover interface {
	Position() gamemath.Point
	Move(dx, dy float64)
}

// Body holds an entity's mass, damping and pending forces.
type Body struct {
	Mass       float64
	Friction   float64 // velocity multiplier applied every tick
	Gravity    float64
	Elasticity float64

	Velocity     gamemath.Vector
	Forces       []gamemath.Vector
	LastPosition gamemath.Point
}

// NewBody returns a body with unit mass, no gravity, full elasticity and the
// given friction.
func NewBody(name string, friction float64) *Body {
	return &Body{
		Mass:       1,
		Friction:   clamp01(friction),
		Elasticity: 1,
		Velocity:   gamemath.Vector{Name: name + " velocity"},
	}
}

// SetMass panics on non-positive values.
func (b *Body) SetMass(mass float64) {
	if mass <= 0 {
		panic(fmt.Sprintf("physics: mass must be positive, got %g", mass))
	}
	b.Mass = mass
}

func (b *Body) SetFriction(friction float64) {
	b.Friction = clamp01(friction)
}

func (b *Body) SetElasticity(elasticity float64) {
	b.Elasticity = clamp01(elasticity)
}

func (b *Body) SetGravity(gravity float64) {
	b.Gravity = gravity
}

// ApplyForce queues a force for the next integration. Forces are consumed
// by the tick that sums them.
func (b *Body) ApplyForce(i, j float64) {
	b.Forces = append(b.Forces, gamemath.Vector{Name: "acceleration force", I: i, J: j})
}

// InstantaneousVelocity returns the displacement since the last Step.
func (b *Body) InstantaneousVelocity(current gamemath.Point) *gamemath.Vector {
	d := current.Sub(b.LastPosition)
	return gamemath.NewVector("instantaneous velocity", d.X, d.Y)
}

// Step advances the body and its mover by one tick:
//
//  1. snapshot the current position
//  2. sum and clear pending forces into velocity
//  3. damp velocity by friction
//  4. queue gravity*mass as a force for the next tick
//  5. move by velocity/mass
//
// Gravity is queued after integration, so it always lags one tick. Friction
// is a per-tick multiplier and is not frame-rate normalised.
func (b *Body) Step(m Mover) {
	if b.Mass <= 0 {
		panic(fmt.Sprintf("physics: %s: mass must be positive, got %g", b.Velocity.Name, b.Mass))
	}

	b.LastPosition = m.Position()
	b.integrateForces()

	b.Velocity.Scale(b.Friction)

	if b.Gravity != 0 {
		b.ApplyForce(0, b.Gravity*b.Mass)
	}

	m.Move(b.Velocity.I/b.Mass, b.Velocity.J/b.Mass)
}

func (b *Body) integrateForces() {
	var i, j float64
	for _, f := range b.Forces {
		i += f.I
		j += f.J
	}
	b.Forces = b.Forces[:0]

	b.Velocity.I += i
	b.Velocity.J += j
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
