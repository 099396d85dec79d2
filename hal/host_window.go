//go:build cgo

package hal

import (
	"errors"

	"mandel/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	TPS   int
}

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard and mouse input. It blocks until the window closes or the app step
// returns ErrQuit.
func RunWindow(cfg Config, wcfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	if wcfg.Title == "" {
		wcfg.Title = "mandelbrot"
	}
	if wcfg.TPS <= 0 {
		wcfg.TPS = 60
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(wcfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetTPS(wcfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *hostHAL
	pix    []byte
	fbImg  *ebiten.Image
	frames uint64
	step   func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.pix = make([]byte, len(fb.front))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	if frames := fb.snapshot(g.pix, g.frames); frames != g.frames {
		g.frames = frames
		g.fbImg.WritePixels(g.pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
