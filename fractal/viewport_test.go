package fractal

import (
	"math"
	"testing"
)

func TestViewportPoint(t *testing.T) {
	vp := DefaultViewport
	tests := []struct {
		x, y int
		want Point
	}{
		{x: 0, y: 0, want: Point{Re: -2, Im: -2}},
		{x: 600, y: 600, want: Point{Re: 0, Im: 0}},
		{x: 300, y: 900, want: Point{Re: -1, Im: 1}},
		{x: 1200, y: 1200, want: Point{Re: 2, Im: 2}},
	}
	for _, tt := range tests {
		if got := vp.Point(tt.x, tt.y, 1200, 1200); got != tt.want {
			t.Errorf("Point(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestViewportZoomSquare(t *testing.T) {
	vp := DefaultViewport
	start := vp.Point(100, 100, 1200, 1200)
	end := vp.Point(200, 150, 1200, 1200)

	got, ok := vp.Zoom(start, end)
	if !ok {
		t.Fatal("Zoom() ok = false, want true")
	}
	if got.MinRe != start.Re || got.MinIm != start.Im {
		t.Fatalf("Zoom() origin = (%g, %g), want (%g, %g)", got.MinRe, got.MinIm, start.Re, start.Im)
	}
	dw := got.MaxRe - got.MinRe
	dh := got.MaxIm - got.MinIm
	if dw != dh {
		t.Fatalf("Zoom() width %g != height %g", dw, dh)
	}
	if want := end.Re - start.Re; math.Abs(dw-want) > 1e-12 {
		t.Fatalf("Zoom() side = %g, want %g", dw, want)
	}
	if !got.Valid() {
		t.Fatalf("Zoom() = %v, want valid", got)
	}
}

func TestViewportZoomPicksLargerDelta(t *testing.T) {
	vp := DefaultViewport
	got, ok := vp.Zoom(Point{Re: 0, Im: 0}, Point{Re: 0.25, Im: 0.5})
	if !ok {
		t.Fatal("Zoom() ok = false, want true")
	}
	want := Viewport{MinRe: 0, MaxRe: 0.5, MinIm: 0, MaxIm: 0.5}
	if got != want {
		t.Fatalf("Zoom() = %v, want %v", got, want)
	}
}

func TestViewportZoomRejectsDegenerate(t *testing.T) {
	vp := DefaultViewport
	for _, end := range []Point{
		{Re: 0, Im: 0},
		{Re: -1, Im: -0.5},
	} {
		got, ok := vp.Zoom(Point{}, end)
		if ok {
			t.Errorf("Zoom(0, %v) ok = true, want false", end)
		}
		if got != vp {
			t.Errorf("Zoom(0, %v) = %v, want unchanged", end, got)
		}
	}
}

func TestViewportValid(t *testing.T) {
	if !DefaultViewport.Valid() {
		t.Fatal("DefaultViewport.Valid() = false")
	}
	if (Viewport{MinRe: 1, MaxRe: 1, MinIm: 0, MaxIm: 1}).Valid() {
		t.Fatal("empty real axis reported valid")
	}
}
