package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"mandel/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorHUDBG  = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	colorHUDFG  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorFailBG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorFailFG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

var hudFont = &proggy.TinySZ8pt7b

const hudPad = 4

// fbDisplay lets tinyfont draw into a hal.Framebuffer.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(min(d.fb.Width(), 1<<15-1)), int16(min(d.fb.Height(), 1<<15-1))
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.SetRGB(int(x), int(y), c.R, c.G, c.B)
}

// Display is a no-op; frames are presented by the render driver.
func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) FillRectangle(x, y, width, height int, c color.RGBA) {
	x0 := clampInt(x, 0, d.fb.Width())
	y0 := clampInt(y, 0, d.fb.Height())
	x1 := clampInt(x+width, 0, d.fb.Width())
	y1 := clampInt(y+height, 0, d.fb.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.fb.SetRGB(px, py, c.R, c.G, c.B)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hudLines describes the current session state.
func (s *Session) hudLines() []string {
	return []string{
		fmt.Sprintf("iter %d", s.budget),
		fmt.Sprintf("re [%.6g, %.6g]", s.vp.MinRe, s.vp.MaxRe),
		fmt.Sprintf("im [%.6g, %.6g]", s.vp.MinIm, s.vp.MaxIm),
	}
}

// drawHUD paints the status box over the frame. It runs between blit and
// present, so the pixel buffer itself is never touched.
func (s *Session) drawHUD() {
	if !s.hud {
		return
	}
	lines := s.hudLines()
	lineH := int(hudFont.GetYAdvance())

	width := 0
	for _, line := range lines {
		_, outbox := tinyfont.LineWidth(hudFont, line)
		width = max(width, int(outbox))
	}
	s.disp.FillRectangle(0, 0, width+2*hudPad, len(lines)*lineH+2*hudPad, colorHUDBG)

	y := hudPad
	for _, line := range lines {
		y += lineH
		tinyfont.WriteLine(s.disp, hudFont, int16(hudPad), int16(y-hudPad/2), line, colorHUDFG)
	}
}

// showFailure replaces the frame with the error text.
func (s *Session) showFailure(err error) {
	s.fb.ClearRGB(colorFailBG.R, colorFailBG.G, colorFailBG.B)

	lineH := int(hudFont.GetYAdvance())
	_, outbox := tinyfont.LineWidth(hudFont, "0")
	cols := (s.fb.Width() - 2*hudPad) / max(int(outbox), 1)
	if cols <= 0 {
		cols = 1
	}

	y := hudPad
	for _, line := range []string{"render failed:", err.Error()} {
		for len(line) > 0 {
			if y+lineH > s.fb.Height() {
				break
			}
			chunk, rest := takeRunes(line, cols)
			y += lineH
			tinyfont.WriteLine(s.disp, hudFont, int16(hudPad), int16(y), chunk, colorFailFG)
			line = strings.TrimLeft(rest, " ")
		}
	}

	if perr := s.fb.Present(); perr != nil {
		s.logf("present: %v", perr)
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
