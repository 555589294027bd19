package sim

import (
	"math"
	"testing"

	"github.com/tomz197/rigid2d/internal/body"
	"github.com/tomz197/rigid2d/internal/detect"
	"github.com/tomz197/rigid2d/internal/vec"
)

func testArena() detect.Arena {
	return detect.Arena{Min: vec.Vec2{X: 0, Y: 0}, Max: vec.Vec2{X: 100, Y: 100}}
}

func TestStepIntegrates(t *testing.T) {
	w := NewWorld(testArena(), 10)
	b := body.NewCircle(vec.Vec2{X: 50, Y: 50}, 1, 1)
	b.Velocity = vec.Vec2{X: 10, Y: -4}
	b.AngularVelocity = 2
	w.Add(b)

	if err := w.Step(0.5); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if b.Position != (vec.Vec2{X: 55, Y: 48}) {
		t.Errorf("position = %v, want {55,48}", b.Position)
	}
	if b.Rotation != 1 {
		t.Errorf("rotation = %v, want 1", b.Rotation)
	}
}

func TestStepGravity(t *testing.T) {
	w := NewWorld(testArena(), 10)
	w.Gravity = vec.Vec2{X: 0, Y: 8}
	b := body.NewCircle(vec.Vec2{X: 50, Y: 50}, 1, 1)
	w.Add(b)

	// Semi-implicit Euler: velocity first, then position with the new
	// velocity.
	if err := w.Step(0.25); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if b.Velocity != (vec.Vec2{X: 0, Y: 2}) {
		t.Errorf("velocity = %v, want {0,2}", b.Velocity)
	}
	if b.Position != (vec.Vec2{X: 50, Y: 50.5}) {
		t.Errorf("position = %v, want {50,50.5}", b.Position)
	}
}

func TestStepResolvesCollision(t *testing.T) {
	w := NewWorld(testArena(), 10)
	w.Restitution = 1
	a := body.NewCircle(vec.Vec2{X: 48, Y: 50}, 2, 1)
	a.Velocity = vec.Vec2{X: 10, Y: 0}
	b := body.NewCircle(vec.Vec2{X: 52, Y: 50}, 2, 1)
	w.Add(a)
	w.Add(b)

	// One step moves a into b; the impulse swaps the velocities
	// (equal mass, head-on, elastic).
	if err := w.Step(0.05); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if math.Abs(a.Velocity.X) > 1e-9 {
		t.Errorf("vA.X = %v, want 0", a.Velocity.X)
	}
	if math.Abs(b.Velocity.X-10) > 1e-9 {
		t.Errorf("vB.X = %v, want 10", b.Velocity.X)
	}

	// The overlap from the integration step was corrected.
	if gap := vec.Dist(a.Position, b.Position); gap < 4-1e-9 {
		t.Errorf("bodies still overlapping, center distance %v < 4", gap)
	}
}

func TestStepConservesMomentumWithoutGravity(t *testing.T) {
	w := NewWorld(testArena(), 12)
	w.Restitution = 1
	positions := []vec.Vec2{
		{X: 30, Y: 30}, {X: 36, Y: 31}, {X: 60, Y: 60}, {X: 65, Y: 58}, {X: 50, Y: 45},
	}
	velocities := []vec.Vec2{
		{X: 12, Y: 3}, {X: -8, Y: 1}, {X: 4, Y: -9}, {X: -3, Y: 6}, {X: -5, Y: -1},
	}
	for i := range positions {
		b := body.NewCircle(positions[i], 3, 1+float64(i))
		b.Velocity = velocities[i]
		w.Add(b)
	}

	before := w.Stats().LinearMomentum
	// Run long enough for several body-body collisions, but with walls
	// far away momentum between bodies must hold until a wall is hit.
	for i := 0; i < 20; i++ {
		if err := w.Step(0.01); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	after := w.Stats().LinearMomentum

	if math.Abs(before.X-after.X) > 1e-6 || math.Abs(before.Y-after.Y) > 1e-6 {
		t.Errorf("momentum %v -> %v, want conserved", before, after)
	}
}

func TestStepWallBounce(t *testing.T) {
	w := NewWorld(testArena(), 10)
	w.Restitution = 1
	b := body.NewCircle(vec.Vec2{X: 3, Y: 50}, 2, 1)
	b.Velocity = vec.Vec2{X: -10, Y: 0}
	w.Add(b)

	if err := w.Step(0.15); err != nil {
		t.Fatalf("Step: %v", err)
	}

	// Elastic bounce off an immovable wall reflects the velocity.
	if b.Velocity.X != 10 {
		t.Errorf("vX after wall bounce = %v, want 10", b.Velocity.X)
	}
	// Pushed back inside.
	if b.Position.X < w.Arena.Min.X+b.Radius-1e-9 {
		t.Errorf("body left inside the wall at x=%v", b.Position.X)
	}
	// The wall body itself never moves.
	if !w.wall.Static() || w.wall.Velocity != (vec.Vec2{}) {
		t.Error("wall body mutated by resolution")
	}
}

func TestStepDeterministic(t *testing.T) {
	run := func() []vec.Vec2 {
		w := NewWorld(testArena(), 10)
		w.Restitution = 0.9
		w.Gravity = vec.Vec2{Y: 20}
		for i := 0; i < 8; i++ {
			b := body.NewCircle(vec.Vec2{X: 20 + 8*float64(i), Y: 30 + 3*float64(i%3)}, 3, 2)
			b.Velocity = vec.Vec2{X: float64(5 - i), Y: float64(i)}
			w.Add(b)
		}
		for i := 0; i < 120; i++ {
			if err := w.Step(1.0 / 120); err != nil {
				t.Fatalf("Step: %v", err)
			}
		}
		out := make([]vec.Vec2, len(w.Bodies))
		for i, b := range w.Bodies {
			out[i] = b.Position
		}
		return out
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("body %d diverged: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestStatsCountsBodies(t *testing.T) {
	w := NewWorld(testArena(), 10)
	w.Add(body.NewCircle(vec.Vec2{X: 10, Y: 10}, 1, 1))
	w.Add(body.NewCircle(vec.Vec2{X: 20, Y: 10}, 1, 1))

	s := w.Stats()
	if s.Bodies != 2 {
		t.Errorf("Bodies = %d, want 2", s.Bodies)
	}

	w.Clear()
	if s := w.Stats(); s.Bodies != 0 {
		t.Errorf("Bodies after Clear = %d, want 0", s.Bodies)
	}
}
