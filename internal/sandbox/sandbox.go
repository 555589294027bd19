// Package sandbox runs the interactive demo: a fixed logical arena of
// rigid discs stepped at a fixed rate, rendered to the terminal with
// the standard Input → Update → Draw cycle.
package sandbox

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/rigid2d/internal/body"
	"github.com/tomz197/rigid2d/internal/config"
	"github.com/tomz197/rigid2d/internal/detect"
	"github.com/tomz197/rigid2d/internal/draw"
	"github.com/tomz197/rigid2d/internal/input"
	"github.com/tomz197/rigid2d/internal/sim"
	"github.com/tomz197/rigid2d/internal/vec"
)

// Logical arena dimensions. Bodies live in this coordinate space; the
// canvas scales it to whatever terminal size is available.
const (
	arenaWidth  = 120
	arenaHeight = 80
)

const restitutionStep = 0.05

// Sandbox holds the mutable state of one demo session.
type Sandbox struct {
	cfg       config.Sandbox
	world     *sim.World
	paused    bool
	gravityOn bool
}

// New creates a sandbox with cfg.Bodies discs already spawned.
func New(cfg config.Sandbox) *Sandbox {
	ar := detect.Arena{Max: vec.Vec2{X: arenaWidth, Y: arenaHeight}}
	s := &Sandbox{
		cfg:   cfg,
		world: sim.NewWorld(ar, cfg.MaxRadius*2),
	}
	s.reset()
	return s
}

// reset restores the configured body count, restitution and gravity.
func (s *Sandbox) reset() {
	s.world.Clear()
	s.world.Restitution = s.cfg.Restitution
	s.gravityOn = s.cfg.GravityOn
	s.applyGravity()
	for i := 0; i < s.cfg.Bodies; i++ {
		s.spawn()
	}
}

// spawn adds one disc with random radius, position and velocity. Mass
// comes from the configured density so bigger discs hit harder.
func (s *Sandbox) spawn() {
	r := s.cfg.MinRadius + rand.Float64()*(s.cfg.MaxRadius-s.cfg.MinRadius)
	margin := r + 1
	pos := vec.Vec2{
		X: margin + rand.Float64()*(arenaWidth-2*margin),
		Y: margin + rand.Float64()*(arenaHeight-2*margin),
	}
	b := body.NewCircle(pos, r, s.cfg.Density*math.Pi*r*r)

	angle := rand.Float64() * 2 * math.Pi
	speed := rand.Float64() * s.cfg.SpawnSpeed
	b.Velocity = vec.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
	b.AngularVelocity = (rand.Float64() - 0.5) * 4

	s.world.Add(b)
}

func (s *Sandbox) applyGravity() {
	if s.gravityOn {
		s.world.Gravity = vec.Vec2{Y: s.cfg.Gravity}
	} else {
		s.world.Gravity = vec.Vec2{}
	}
}

// Run drives the sandbox until the user quits or the connection drops.
// sizeFn reports the terminal size each frame so resizes take effect
// immediately.
func Run(r *bufio.Reader, w io.Writer, cfg config.Sandbox, sizeFn draw.TermSizeFunc) error {
	s := New(cfg)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFn()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	canvas := draw.NewCanvas(termWidth, termHeight, arenaWidth, arenaHeight)
	cw := draw.NewChunkWriter(w, 0, 0)

	frameTime := time.Second / time.Duration(cfg.TargetFPS)
	dt := 1 / float64(cfg.TargetFPS) // Fixed step keeps runs reproducible

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			break
		}
		s.handleInput(in)

		// ===== UPDATE PHASE =====
		if tw, th, err := sizeFn(); err == nil {
			canvas.Resize(tw, th)
		}
		if !s.paused {
			if err := s.world.Step(dt); err != nil {
				return fmt.Errorf("step: %w", err)
			}
		}

		// ===== DRAW PHASE =====
		if err := s.drawFrame(cw, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// handleInput applies one frame's worth of control presses.
func (s *Sandbox) handleInput(in input.Input) {
	if in.Pause {
		s.paused = !s.paused
	}
	if in.Reset {
		s.reset()
	}
	if in.Gravity {
		s.gravityOn = !s.gravityOn
		s.applyGravity()
	}
	if in.Spawn {
		s.spawn()
	}
	if in.BouncierKey {
		s.world.Restitution = math.Min(1, s.world.Restitution+restitutionStep)
	}
	if in.SofterKey {
		s.world.Restitution = math.Max(0, s.world.Restitution-restitutionStep)
	}
}

// drawFrame renders all bodies and the HUD overlay in one flush.
func (s *Sandbox) drawFrame(cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	cw.WriteString("\033[H\033[2J")
	canvas.Clear()

	for _, b := range s.world.Bodies {
		center := draw.Point{X: b.Position.X, Y: b.Position.Y}
		canvas.StrokeCircle(center, b.Radius)
		// Spoke from the center to the rim makes the spin visible.
		rim := draw.Point{
			X: b.Position.X + b.Radius*math.Cos(b.Rotation),
			Y: b.Position.Y + b.Radius*math.Sin(b.Rotation),
		}
		canvas.DrawLine(center, rim)
	}
	canvas.Render(cw)

	s.drawHUD(cw, canvas)
	return cw.Flush()
}

// drawHUD overlays the conserved-quantity readout and controls on top
// of the rendered canvas.
func (s *Sandbox) drawHUD(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	st := s.world.Stats()

	status := fmt.Sprintf("bodies %d  e %.2f", st.Bodies, s.world.Restitution)
	if s.gravityOn {
		status += "  gravity on"
	}
	if s.paused {
		status += "  [paused]"
	}
	cw.WriteAt(2, 1, status)

	cw.WriteAt(2, 2, fmt.Sprintf("p (%6.1f, %6.1f)  L %8.1f  E %8.1f",
		st.LinearMomentum.X, st.LinearMomentum.Y, st.AngularMomentum, st.KineticEnergy))

	controls := "space add  p pause  r reset  g gravity  +/- bounce  q quit"
	cw.WriteAt(2, canvas.TerminalHeight(), controls)
}
