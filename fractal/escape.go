package fractal

import "math"

const (
	// Bailout is the threshold of the escape test a+b > Bailout.
	Bailout = 2

	// BlackLevel is the highest brightness forced to black.
	BlackLevel = 20

	maxLevel = 0xff
)

// sqrtMaxLevel is the truncated square root of maxLevel.
var sqrtMaxLevel = int(math.Sqrt(maxLevel))

// RGB is one pixel colour.
type RGB struct {
	R, G, B uint8
}

// Escape iterates z <- z² + c starting from z = c = (a, b) at most budget
// times and returns how many steps completed before the escape test fired.
//
// The escape test is a+b > 2 on the new value, not |z| > 2. It draws a
// different set than the textbook criterion and is kept as is.
func Escape(a, b float64, budget int) int {
	ai, bi := a, b
	n := 0
	for i := 0; i < budget; i++ {
		// The conversions keep the compiler from fusing multiply-adds.
		a1 := float64(a*a) - float64(b*b)
		b1 := float64(2 * a * b)
		a = a1 + ai
		b = b1 + bi
		if a+b > Bailout {
			break
		}
		n++
	}
	return n
}

// Brightness maps n from [0, budget] onto [0, 255], forcing values at or below
// BlackLevel to 0. A budget of zero or less yields 0.
func Brightness(n, budget int) int {
	if budget <= 0 {
		return 0
	}
	bright := n * maxLevel / budget
	if bright <= BlackLevel {
		return 0
	}
	return bright
}

// Shade derives a colour from brightness: green follows it, red is the
// square remapped to [0, 255], blue the truncated square root remapped the
// same way.
func Shade(bright int) RGB {
	bright = min(max(bright, 0), maxLevel)
	root := int(math.Sqrt(float64(bright)))
	return RGB{
		R: uint8(bright * bright * maxLevel / (maxLevel * maxLevel)),
		G: uint8(bright),
		B: uint8(root * maxLevel / sqrtMaxLevel),
	}
}

// Color returns the colour of pixel (x, y) in a w×h grid over vp.
func Color(x, y, w, h int, vp Viewport, budget int) RGB {
	c := vp.Point(x, y, w, h)
	n := Escape(c.Re, c.Im, budget)
	return Shade(Brightness(n, budget))
}
