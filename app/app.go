// Package app is the interactive viewer session: it owns the viewport, the
// iteration budget and the pixel buffer, and turns input events into
// render passes.
package app

import (
	"context"
	"fmt"

	"mandel/fractal"
	"mandel/hal"
	"mandel/render"
)

const (
	// DefaultIterations is the iteration budget at startup.
	DefaultIterations = 40

	budgetStep      = 100
	budgetShiftStep = 1000
)

// Config controls a session. The grid size is taken from the framebuffer.
type Config struct {
	BandHeight int
	Workers    int
	Iterations int
	HUD        bool
}

// Selection is an open drag gesture.
type Selection struct {
	Start fractal.Point
}

// Session holds all mutable viewer state.
type Session struct {
	ctx context.Context
	cfg Config

	log    hal.Logger
	fb     hal.Framebuffer
	kbd    hal.Keyboard
	ptr    hal.Pointer
	driver *render.Driver
	disp   *fbDisplay

	vp      fractal.Viewport
	prev    fractal.Viewport
	hasPrev bool
	budget  int
	sel     *Selection
	hud     bool

	dirty   bool // recompute on the next step
	redraw  bool // re-show the buffer without recomputing
	renders int
}

// New initializes a session on h and returns its step function.
func New(ctx context.Context, h hal.HAL, cfg Config) (func() error, error) {
	s, err := NewSession(ctx, h, cfg)
	if err != nil {
		return nil, err
	}
	return s.Step, nil
}

// NewSession builds a session. The first Step paints the initial frame.
func NewSession(ctx context.Context, h hal.HAL, cfg Config) (*Session, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("app: no framebuffer")
	}
	fb := disp.Framebuffer()
	if cfg.Iterations < 0 {
		return nil, fmt.Errorf("app: negative iteration budget %d", cfg.Iterations)
	}

	driver, err := render.NewDriver(render.Config{
		Width:      fb.Width(),
		Height:     fb.Height(),
		BandHeight: cfg.BandHeight,
		Workers:    cfg.Workers,
	}, fb, h.Logger())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	s := &Session{
		ctx:    ctx,
		cfg:    cfg,
		log:    h.Logger(),
		fb:     fb,
		driver: driver,
		disp:   newFBDisplay(fb),
		vp:     fractal.DefaultViewport,
		budget: cfg.Iterations,
		hud:    cfg.HUD,
		dirty:  true,
	}
	if in := h.Input(); in != nil {
		s.kbd = in.Keyboard()
		s.ptr = in.Pointer()
	}
	driver.Overlay = s.drawHUD
	return s, nil
}

// Viewport returns the current viewport.
func (s *Session) Viewport() fractal.Viewport { return s.vp }

// Budget returns the current iteration budget.
func (s *Session) Budget() int { return s.budget }

// Buffer returns the pixel buffer of the last pass.
func (s *Session) Buffer() *render.Buffer { return s.driver.Buffer() }

// Renders returns the number of completed render passes.
func (s *Session) Renders() int { return s.renders }

// Step drains pending input, then runs at most one render pass. Render
// requests raised by several events in one step are coalesced.
func (s *Session) Step() error {
	if err := s.drainKeys(); err != nil {
		return err
	}
	s.drainPointer()

	switch {
	case s.dirty:
		s.dirty = false
		s.redraw = false
		return s.render()
	case s.redraw:
		s.redraw = false
		if err := s.driver.Show(); err != nil {
			s.logf("show: %v", err)
		}
	}
	return nil
}

func (s *Session) drainKeys() error {
	if s.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-s.kbd.Events():
			if err := s.HandleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *Session) drainPointer() {
	if s.ptr == nil {
		return
	}
	for {
		select {
		case ev := <-s.ptr.Events():
			s.HandlePointer(ev)
		default:
			return
		}
	}
}

// HandleKey applies one key event. It returns hal.ErrQuit on Escape.
func (s *Session) HandleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	step := budgetStep
	if ev.Mods&hal.ModShift != 0 {
		step = budgetShiftStep
	}

	switch ev.Code {
	case hal.KeyEscape:
		return hal.ErrQuit
	case hal.KeyUp:
		s.budget += step
		s.logf("iterations: %d", s.budget)
	case hal.KeyDown:
		s.budget = max(s.budget-step, 0)
		s.logf("iterations: %d", s.budget)
	case hal.KeyF:
		s.dirty = true
	case hal.KeyBackspace:
		if !s.hasPrev {
			s.logf("undo: nothing to restore")
			return nil
		}
		s.vp, s.hasPrev = s.prev, false
		s.dirty = true
	case hal.KeyHome:
		s.vp = fractal.DefaultViewport
		s.budget = s.cfg.Iterations
		s.hasPrev = false
		s.dirty = true
	case hal.KeyH:
		s.hud = !s.hud
		s.redraw = true
	}
	return nil
}

// HandlePointer opens a selection on left-button press and commits the zoom
// on release.
func (s *Session) HandlePointer(ev hal.PointerEvent) {
	if ev.Button != hal.ButtonLeft {
		return
	}
	p := s.vp.Point(ev.X, ev.Y, s.fb.Width(), s.fb.Height())
	if ev.Press {
		s.sel = &Selection{Start: p}
		return
	}
	if s.sel == nil {
		return
	}
	start := s.sel.Start
	s.sel = nil

	next, ok := s.vp.Zoom(start, p)
	if !ok {
		s.logf("zoom: empty selection ignored")
		return
	}
	s.prev, s.hasPrev = s.vp, true
	s.vp = next
	s.dirty = true
}

func (s *Session) render() error {
	err := s.driver.Render(s.ctx, s.vp, s.budget)
	if err == nil {
		s.renders++
		return nil
	}
	if ctxErr := s.ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	s.logf("render failed: %v", err)
	s.showFailure(err)
	return nil
}

func (s *Session) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
