package sandbox

import (
	"math"
	"strings"
	"testing"

	"github.com/tomz197/rigid2d/internal/config"
	"github.com/tomz197/rigid2d/internal/draw"
	"github.com/tomz197/rigid2d/internal/input"
)

func testConfig() config.Sandbox {
	cfg := config.DefaultSandbox()
	cfg.Bodies = 5
	return cfg
}

func TestNewSpawnsConfiguredBodies(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)

	if got := len(s.world.Bodies); got != cfg.Bodies {
		t.Fatalf("spawned %d bodies, want %d", got, cfg.Bodies)
	}
	for i, b := range s.world.Bodies {
		if b.Radius < cfg.MinRadius || b.Radius > cfg.MaxRadius {
			t.Errorf("body %d radius %v outside [%v, %v]", i, b.Radius, cfg.MinRadius, cfg.MaxRadius)
		}
		if b.Position.X < b.Radius || b.Position.X > arenaWidth-b.Radius ||
			b.Position.Y < b.Radius || b.Position.Y > arenaHeight-b.Radius {
			t.Errorf("body %d spawned at %v, outside the arena interior", i, b.Position)
		}
		wantInvMass := 1 / (cfg.Density * math.Pi * b.Radius * b.Radius)
		if math.Abs(b.InverseMass-wantInvMass) > 1e-12 {
			t.Errorf("body %d inverse mass = %v, want %v", i, b.InverseMass, wantInvMass)
		}
	}
}

func TestHandleInputControls(t *testing.T) {
	s := New(testConfig())

	s.handleInput(input.Input{Pause: true})
	if !s.paused {
		t.Error("pause key did not pause")
	}
	s.handleInput(input.Input{Pause: true})
	if s.paused {
		t.Error("second pause key did not resume")
	}

	s.handleInput(input.Input{Spawn: true})
	if got := len(s.world.Bodies); got != 6 {
		t.Errorf("after spawn key have %d bodies, want 6", got)
	}

	s.handleInput(input.Input{Gravity: true})
	if !s.gravityOn || s.world.Gravity.Y == 0 {
		t.Error("gravity key did not enable gravity")
	}

	s.handleInput(input.Input{Reset: true})
	if got := len(s.world.Bodies); got != 5 {
		t.Errorf("after reset have %d bodies, want 5", got)
	}
	if s.gravityOn {
		t.Error("reset did not restore gravity setting")
	}
}

func TestHandleInputRestitutionClamps(t *testing.T) {
	s := New(testConfig())

	for i := 0; i < 30; i++ {
		s.handleInput(input.Input{BouncierKey: true})
	}
	if s.world.Restitution != 1 {
		t.Errorf("restitution = %v after raising, want clamp at 1", s.world.Restitution)
	}

	for i := 0; i < 30; i++ {
		s.handleInput(input.Input{SofterKey: true})
	}
	if s.world.Restitution != 0 {
		t.Errorf("restitution = %v after lowering, want clamp at 0", s.world.Restitution)
	}
}

func TestDrawFrameRendersHUD(t *testing.T) {
	s := New(testConfig())
	canvas := draw.NewCanvas(60, 30, arenaWidth, arenaHeight)

	var sb strings.Builder
	cw := draw.NewChunkWriter(&sb, 0, 0)
	if err := s.drawFrame(cw, canvas); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "bodies 5") {
		t.Error("HUD does not report body count")
	}
	if !strings.ContainsRune(out, draw.BlockFull) && !strings.ContainsRune(out, draw.BlockUpperHalf) &&
		!strings.ContainsRune(out, draw.BlockLowerHalf) {
		t.Error("frame contains no rendered pixels")
	}
}
