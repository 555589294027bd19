// Package detect produces contacts for the impulse solver. It covers the
// narrow phase for circle bodies and wall contacts against the arena
// bounds; the solver itself never detects anything.
package detect

import (
	"math"

	"github.com/tomz197/rigid2d/internal/body"
	"github.com/tomz197/rigid2d/internal/solver"
	"github.com/tomz197/rigid2d/internal/vec"
)

// Hit is one detected contact plus the penetration depth the positional
// correction pass needs. The contact normal points toward body A.
type Hit struct {
	Contact solver.Contact
	Depth   float64
}

// CircleCircle tests two circle bodies for overlap. On overlap it returns
// a contact whose normal points from b toward a (the solver's "toward
// body A" convention) and whose point sits midway across the overlap
// band. Coincident centers give no usable axis and report no contact.
func CircleCircle(a, b *body.Body, restitution float64) (Hit, bool) {
	axis := vec.Sub(a.Position, b.Position)
	rsum := a.Radius + b.Radius
	distSqr := vec.LengthSqr(axis)
	if distSqr >= rsum*rsum || distSqr == 0 {
		return Hit{}, false
	}

	dist := math.Sqrt(distSqr)
	normal := vec.Scale(axis, 1/dist)
	depth := rsum - dist
	// Midpoint of the overlap band along the contact axis.
	point := vec.Sub(a.Position, vec.Scale(normal, a.Radius-depth/2))

	return Hit{
		Contact: solver.Contact{
			Point:       point,
			Normal:      normal,
			Restitution: restitution,
		},
		Depth: depth,
	}, true
}

// Arena is the axis-aligned box the sandbox bodies live in. Its walls act
// as a single shared static body for resolution purposes.
type Arena struct {
	Min, Max vec.Vec2
}

// Center returns the arena's center point, where the shared wall body sits.
func (ar Arena) Center() vec.Vec2 {
	return vec.Vec2{X: (ar.Min.X + ar.Max.X) / 2, Y: (ar.Min.Y + ar.Max.Y) / 2}
}

// Width returns the arena's horizontal extent.
func (ar Arena) Width() float64 { return ar.Max.X - ar.Min.X }

// Height returns the arena's vertical extent.
func (ar Arena) Height() float64 { return ar.Max.Y - ar.Min.Y }

// WallContacts appends a Hit for every wall the circle body penetrates
// and returns the extended slice. Contact normals point inward, toward
// the body (the body is always "body A" against a wall). buf is reused
// across frames to avoid allocations; a body wedged into a corner yields
// two hits.
func (ar Arena) WallContacts(b *body.Body, restitution float64, buf []Hit) []Hit {
	if d := (b.Position.X - b.Radius) - ar.Min.X; d < 0 {
		buf = append(buf, wallHit(
			vec.Vec2{X: ar.Min.X, Y: b.Position.Y},
			vec.Vec2{X: 1, Y: 0}, -d, restitution))
	}
	if d := ar.Max.X - (b.Position.X + b.Radius); d < 0 {
		buf = append(buf, wallHit(
			vec.Vec2{X: ar.Max.X, Y: b.Position.Y},
			vec.Vec2{X: -1, Y: 0}, -d, restitution))
	}
	if d := (b.Position.Y - b.Radius) - ar.Min.Y; d < 0 {
		buf = append(buf, wallHit(
			vec.Vec2{X: b.Position.X, Y: ar.Min.Y},
			vec.Vec2{X: 0, Y: 1}, -d, restitution))
	}
	if d := ar.Max.Y - (b.Position.Y + b.Radius); d < 0 {
		buf = append(buf, wallHit(
			vec.Vec2{X: b.Position.X, Y: ar.Max.Y},
			vec.Vec2{X: 0, Y: -1}, -d, restitution))
	}
	return buf
}

func wallHit(point, normal vec.Vec2, depth, restitution float64) Hit {
	return Hit{
		Contact: solver.Contact{
			Point:       point,
			Normal:      normal,
			Restitution: restitution,
		},
		Depth: depth,
	}
}
