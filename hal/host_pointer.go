//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch chan PointerEvent
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 16)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

var hostButtons = []struct {
	button ebiten.MouseButton
	b      PointerButton
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonRight, ButtonRight},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
}

func (p *hostPointer) poll() {
	// Cursor coordinates are in Layout space, which is the framebuffer size.
	x, y := ebiten.CursorPosition()
	emit := func(b PointerButton, press bool) {
		select {
		case p.ch <- PointerEvent{X: x, Y: y, Button: b, Press: press}:
		default:
		}
	}
	for _, hb := range hostButtons {
		if inpututil.IsMouseButtonJustPressed(hb.button) {
			emit(hb.b, true)
		}
		if inpututil.IsMouseButtonJustReleased(hb.button) {
			emit(hb.b, false)
		}
	}
}
