//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeys = []struct {
	key  ebiten.Key
	code KeyCode
	r    rune
}{
	{ebiten.KeyArrowUp, KeyUp, 0},
	{ebiten.KeyArrowDown, KeyDown, 0},
	{ebiten.KeyEscape, KeyEscape, 0},
	{ebiten.KeyBackspace, KeyBackspace, 0},
	{ebiten.KeyHome, KeyHome, 0},
	{ebiten.KeyF, KeyF, 'f'},
	{ebiten.KeyH, KeyH, 'h'},
}

func (k *hostKeyboard) poll() {
	var mods Modifier
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}

	emit := func(code KeyCode, r rune, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press, Rune: r, Mods: mods}:
		default:
		}
	}

	// Held keys do not repeat; only transitions are reported.
	for _, hk := range hostKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			emit(hk.code, hk.r, true)
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			emit(hk.code, hk.r, false)
		}
	}
}
