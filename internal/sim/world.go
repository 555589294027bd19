// Package sim owns the simulation step around the impulse solver:
// integration, broad- and narrow-phase detection, sequential contact
// resolution, and penetration correction. The solver itself stays a pure
// kernel; everything stateful lives here.
package sim

import (
	"errors"

	"github.com/tomz197/rigid2d/internal/body"
	"github.com/tomz197/rigid2d/internal/detect"
	"github.com/tomz197/rigid2d/internal/solver"
	"github.com/tomz197/rigid2d/internal/vec"
	"github.com/tomz197/rigid2d/internal/verify"
)

// World holds the bodies of one simulation and steps them forward.
// A World is single-goroutine: contacts sharing a body are resolved
// sequentially in discovery order, never concurrently.
type World struct {
	Bodies      []*body.Body
	Arena       detect.Arena
	Gravity     vec.Vec2
	Restitution float64

	wall    *body.Body // Shared static body all wall contacts resolve against
	grid    *detect.Grid
	wallBuf []detect.Hit
}

// Stats is a snapshot of the world's conserved quantities for display.
type Stats struct {
	Bodies          int
	LinearMomentum  vec.Vec2
	AngularMomentum float64
	KineticEnergy   float64
}

// NewWorld creates an empty world inside the given arena. cellSize sizes
// the broad-phase grid and must be >= the largest body diameter.
func NewWorld(ar detect.Arena, cellSize float64) *World {
	return &World{
		Arena:       ar,
		Restitution: 1,
		wall:        body.NewStatic(ar.Center()),
		grid:        detect.NewGrid(ar, cellSize),
	}
}

// Add appends a body to the world. Index order is the discovery order
// used for contact resolution, so insertion order determines the
// trajectory exactly.
func (w *World) Add(b *body.Body) {
	w.Bodies = append(w.Bodies, b)
}

// Clear removes all bodies.
func (w *World) Clear() {
	w.Bodies = w.Bodies[:0]
}

// Step advances the simulation by dt seconds: integrate velocities and
// positions, then detect and resolve contacts one at a time in stable
// index order. Degenerate contacts are dropped and the step continues;
// only a detector-level bug (non-unit normal) aborts the step.
func (w *World) Step(dt float64) error {
	w.integrate(dt)

	if err := w.resolvePairs(); err != nil {
		return err
	}
	return w.resolveWalls()
}

// integrate applies gravity and advances positions with semi-implicit
// Euler. Static bodies never move; rotation is advanced for rendering
// only and has no effect on resolution.
func (w *World) integrate(dt float64) {
	for _, b := range w.Bodies {
		if b.Static() {
			continue
		}
		if b.InverseMass != 0 {
			b.Velocity = vec.Add(b.Velocity, vec.Scale(w.Gravity, dt))
			b.Position = vec.Add(b.Position, vec.Scale(b.Velocity, dt))
		}
		b.Rotation += b.AngularVelocity * dt
	}
}

// resolvePairs runs the broad-phase grid, then detects and resolves
// body-body contacts. Each unordered pair is visited at most once
// (j > i), in deterministic order.
func (w *World) resolvePairs() error {
	w.grid.Clear()
	for i, b := range w.Bodies {
		w.grid.Insert(b.Position.X, b.Position.Y, i)
	}

	for i, a := range w.Bodies {
		var resolveErr error
		w.grid.QueryAround(a.Position.X, a.Position.Y, func(j int) bool {
			if j <= i {
				return false
			}
			b := w.Bodies[j]
			hit, ok := detect.CircleCircle(a, b, w.Restitution)
			if !ok {
				return false
			}
			if _, err := solver.Resolve(a, b, hit.Contact); err != nil {
				if errors.Is(err, solver.ErrDegenerateContact) {
					return false // nothing to resolve, keep stepping
				}
				resolveErr = err
				return true
			}
			separate(a, b, hit)
			return false
		})
		if resolveErr != nil {
			return resolveErr
		}
	}
	return nil
}

// resolveWalls bounces bodies off the arena walls, treating all four
// walls as one shared static body.
func (w *World) resolveWalls() error {
	for _, b := range w.Bodies {
		if b.Static() {
			continue
		}
		w.wallBuf = w.Arena.WallContacts(b, w.Restitution, w.wallBuf[:0])
		for _, hit := range w.wallBuf {
			if _, err := solver.Resolve(b, w.wall, hit.Contact); err != nil {
				if errors.Is(err, solver.ErrDegenerateContact) {
					continue
				}
				return err
			}
			// Push the body back inside along the inward normal.
			b.Position = vec.Add(b.Position, vec.Scale(hit.Contact.Normal, hit.Depth))
		}
	}
	return nil
}

// separate pushes two overlapping bodies apart along the contact normal,
// split by inverse mass so the heavier body moves less. Pure position
// fix; velocities were already handled by the impulse.
func separate(a, b *body.Body, hit detect.Hit) {
	total := a.InverseMass + b.InverseMass
	if total == 0 {
		return
	}
	// Normal points toward a, so a moves along it and b against it.
	a.Position = vec.Add(a.Position, vec.Scale(hit.Contact.Normal, hit.Depth*a.InverseMass/total))
	b.Position = vec.Sub(b.Position, vec.Scale(hit.Contact.Normal, hit.Depth*b.InverseMass/total))
}

// Stats returns the world's current conserved-quantity totals.
func (w *World) Stats() Stats {
	return Stats{
		Bodies:          len(w.Bodies),
		LinearMomentum:  verify.LinearMomentum(w.Bodies...),
		AngularMomentum: verify.AngularMomentumAbout(w.Arena.Center(), w.Bodies...),
		KineticEnergy:   verify.KineticEnergy(w.Bodies...),
	}
}
