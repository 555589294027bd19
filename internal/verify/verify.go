// Package verify computes the conserved quantities of a set of rigid
// bodies: linear momentum, angular momentum and kinetic energy. The test
// suite uses it to check conservation laws against the solver's output,
// and the sandbox HUD displays its totals live.
//
// Static bodies have infinite mass; their contribution to every total is
// taken as zero (an immovable body at zero velocity carries no momentum
// worth summing, and +Inf would poison the totals).
package verify

import (
	"github.com/tomz197/rigid2d/internal/body"
	"github.com/tomz197/rigid2d/internal/vec"
)

// LinearMomentum returns the component-wise sum of m*v over the given
// bodies, skipping immovable ones.
func LinearMomentum(bodies ...*body.Body) vec.Vec2 {
	var p vec.Vec2
	for _, b := range bodies {
		if b.InverseMass == 0 {
			continue
		}
		p = vec.Add(p, vec.Scale(b.Velocity, 1/b.InverseMass))
	}
	return p
}

// AngularMomentumAbout returns the total angular momentum about the fixed
// reference point ref: the orbital term m*cross(p-ref, v) plus the spin
// term I*w per body. Infinite-mass and infinite-inertia terms are skipped.
func AngularMomentumAbout(ref vec.Vec2, bodies ...*body.Body) float64 {
	var l float64
	for _, b := range bodies {
		if b.InverseMass != 0 {
			l += vec.Cross(vec.Sub(b.Position, ref), b.Velocity) / b.InverseMass
		}
		if b.InverseInertia != 0 {
			l += b.AngularVelocity / b.InverseInertia
		}
	}
	return l
}

// KineticEnergy returns the total kinetic energy: m*|v|^2/2 plus
// I*w^2/2 per body, skipping infinite terms.
func KineticEnergy(bodies ...*body.Body) float64 {
	var e float64
	for _, b := range bodies {
		if b.InverseMass != 0 {
			e += vec.LengthSqr(b.Velocity) / b.InverseMass / 2
		}
		if b.InverseInertia != 0 {
			e += b.AngularVelocity * b.AngularVelocity / b.InverseInertia / 2
		}
	}
	return e
}
