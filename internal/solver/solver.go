// Package solver resolves a single contact between two 2D rigid bodies by
// computing and applying an impulse along the contact normal.
//
// The solver is a pure transformation: it is stateless, O(1), allocates
// nothing, and touches exactly the two bodies it is given. Detection,
// position integration and penetration correction belong to the caller.
// Friction is out of the model; the impulse has no tangential component.
package solver

import (
	"errors"
	"math"

	"github.com/tomz197/rigid2d/internal/body"
	"github.com/tomz197/rigid2d/internal/vec"
)

const (
	// denomEpsilon is the threshold below which the effective-mass
	// denominator is treated as degenerate: both bodies immovable and
	// non-rotating along the contact axis, or a zero-length normal.
	denomEpsilon = 1e-12

	// normalTolerance is the allowed deviation of the contact normal's
	// length from 1. Detectors must supply unit normals; a longer or
	// shorter normal is rejected rather than silently renormalized so
	// detector bugs surface immediately.
	normalTolerance = 1e-4
)

var (
	// ErrDegenerateContact is returned when neither body can respond to
	// an impulse along the contact axis. The caller should drop the
	// contact and continue the step.
	ErrDegenerateContact = errors.New("solver: degenerate contact, no body can respond along the normal")

	// ErrInvalidNormal is returned when the supplied contact normal is
	// not unit length within tolerance.
	ErrInvalidNormal = errors.New("solver: contact normal is not unit length")
)

// Contact describes one collision contact between two bodies. It is
// produced per colliding pair, consumed by a single Resolve call, and
// never persisted.
type Contact struct {
	Point       vec.Vec2 // World-space contact point
	Normal      vec.Vec2 // Unit vector, points toward body A
	Restitution float64  // Coefficient of restitution in [0,1]
}

// Resolve computes the scalar impulse for the contact and applies it to
// both bodies' velocities in place, returning the impulse magnitude.
//
// Sign convention: Normal points toward body A, so A receives +J*n and B
// the reaction -J*n. A body with zero inverse mass or inertia is left
// unchanged by the corresponding update, which multiplies by zero; a
// fully static body is therefore never written.
//
// A separating contact (relative normal speed > 0) is a valid no-op:
// Resolve returns 0 with a nil error and no mutation.
func Resolve(a, b *body.Body, c Contact) (float64, error) {
	if math.Abs(vec.Length(c.Normal)-1) > normalTolerance {
		return 0, ErrInvalidNormal
	}

	rAP := vec.Sub(c.Point, a.Position)
	rBP := vec.Sub(c.Point, b.Position)

	vRel := vec.Sub(a.VelocityAtPoint(rAP), b.VelocityAtPoint(rBP))
	vn := vec.Dot(vRel, c.Normal)
	if vn > 0 {
		// Already separating; applying an impulse here would pull the
		// bodies back together.
		return 0, nil
	}

	crossA := vec.Cross(rAP, c.Normal)
	crossB := vec.Cross(rBP, c.Normal)
	denom := vec.Dot(c.Normal, c.Normal)*(a.InverseMass+b.InverseMass) +
		crossA*crossA*a.InverseInertia +
		crossB*crossB*b.InverseInertia
	if denom <= denomEpsilon {
		return 0, ErrDegenerateContact
	}

	j := -(1 + c.Restitution) * vn / denom
	impulse := vec.Scale(c.Normal, j)

	a.Velocity = vec.Add(a.Velocity, vec.Scale(impulse, a.InverseMass))
	b.Velocity = vec.Sub(b.Velocity, vec.Scale(impulse, b.InverseMass))
	a.AngularVelocity += a.InverseInertia * vec.Cross(rAP, impulse)
	b.AngularVelocity -= b.InverseInertia * vec.Cross(rBP, impulse)

	return j, nil
}
