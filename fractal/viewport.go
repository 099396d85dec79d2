// Package fractal computes escape-time colours for points of the Mandelbrot set.
package fractal

import "fmt"

// Point is a point of the complex plane.
type Point struct {
	Re, Im float64
}

// Viewport is the visible rectangle of the complex plane.
type Viewport struct {
	MinRe, MaxRe float64
	MinIm, MaxIm float64
}

// DefaultViewport shows the whole set.
var DefaultViewport = Viewport{MinRe: -2, MaxRe: 2, MinIm: -2, MaxIm: 2}

// Lerp maps v linearly from [inMin, inMax] to [outMin, outMax].
func Lerp(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Valid reports whether both axes are well ordered.
func (v Viewport) Valid() bool {
	return v.MinRe < v.MaxRe && v.MinIm < v.MaxIm
}

// Point maps pixel (x, y) of a w×h grid onto the viewport.
// Column 0 lands on MinRe and row 0 on MinIm.
func (v Viewport) Point(x, y, w, h int) Point {
	return Point{
		Re: Lerp(float64(x), 0, float64(w), v.MinRe, v.MaxRe),
		Im: Lerp(float64(y), 0, float64(h), v.MinIm, v.MaxIm),
	}
}

// Zoom returns the square viewport anchored at start whose side is the larger
// of the two drag deltas. It reports false when that side is not positive.
func (v Viewport) Zoom(start, end Point) (Viewport, bool) {
	d := max(end.Re-start.Re, end.Im-start.Im)
	if !(d > 0) {
		return v, false
	}
	return Viewport{
		MinRe: start.Re,
		MaxRe: start.Re + d,
		MinIm: start.Im,
		MaxIm: start.Im + d,
	}, true
}

func (v Viewport) String() string {
	return fmt.Sprintf("(%g, %g) (%g, %g)", v.MinRe, v.MinIm, v.MaxRe, v.MaxIm)
}
