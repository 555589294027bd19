// Package body defines the kinematic state of a single 2D rigid body.
//
// Mass and rotational inertia are stored as inverses so that an immovable
// or non-rotating body is encoded as zero without branching on infinity.
// Bodies are owned and mutated by the simulation step; the solver only
// holds transient references for the duration of one resolve call.
package body

import (
	"math"

	"github.com/tomz197/rigid2d/internal/vec"
)

// Body is the kinematic state of one rigid body at an instant.
type Body struct {
	Position        vec.Vec2 // Center of mass, world space
	Velocity        vec.Vec2 // Linear velocity
	AngularVelocity float64  // Scalar angular velocity (2D)
	Rotation        float64  // Orientation in radians, integrated by the caller
	InverseMass     float64  // 0 means infinite mass (immovable)
	InverseInertia  float64  // 0 means infinite rotational inertia (non-rotating)
	Radius          float64  // Collision radius; 0 for point masses
}

// NewCircle returns a dynamic body with the given position, radius and mass.
// Rotational inertia uses the solid-disc formula I = m*r^2/2.
// mass must be > 0; use NewStatic for immovable bodies.
func NewCircle(pos vec.Vec2, radius, mass float64) *Body {
	return &Body{
		Position:       pos,
		InverseMass:    1 / mass,
		InverseInertia: 2 / (mass * radius * radius),
		Radius:         radius,
	}
}

// NewStatic returns a fully static body: infinite mass and inertia,
// never moved or rotated by collision resolution.
func NewStatic(pos vec.Vec2) *Body {
	return &Body{Position: pos}
}

// BoxInertia returns the moment of inertia of a solid rectangle rotating
// about its center: m*(w^2 + h^2)/12. Callers with box-shaped masses can
// feed the inverse of this into InverseInertia directly.
func BoxInertia(mass, width, height float64) float64 {
	return mass / 12 * (width*width + height*height)
}

// Static reports whether the body is immovable and non-rotating.
func (b *Body) Static() bool {
	return b.InverseMass == 0 && b.InverseInertia == 0
}

// Mass returns the body's mass, or +Inf for an immovable body.
func (b *Body) Mass() float64 {
	if b.InverseMass == 0 {
		return math.Inf(1)
	}
	return 1 / b.InverseMass
}

// Inertia returns the body's rotational inertia, or +Inf for a
// non-rotating body.
func (b *Body) Inertia() float64 {
	if b.InverseInertia == 0 {
		return math.Inf(1)
	}
	return 1 / b.InverseInertia
}

// VelocityAtPoint returns the velocity of the material point at offset r
// from the center of mass: Velocity + AngularVelocity * Perp(r).
// For a static body this is informative only; resolution never writes it.
func (b *Body) VelocityAtPoint(r vec.Vec2) vec.Vec2 {
	return vec.Add(b.Velocity, vec.Scale(vec.Perp(r), b.AngularVelocity))
}
