package render

import (
	"slices"

	"mandel/fractal"
)

// Buffer is a width×height grid of colours stored row-major, so every band
// owns a contiguous slice of it.
type Buffer struct {
	width  int
	height int
	pix    []fractal.RGB
}

// NewBuffer allocates a black buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]fractal.RGB, width*height),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) At(x, y int) fractal.RGB { return b.pix[y*b.width+x] }

func (b *Buffer) Set(x, y int, c fractal.RGB) { b.pix[y*b.width+x] = c }

// Row returns row y; writes through it land in the buffer.
func (b *Buffer) Row(y int) []fractal.RGB {
	off := y * b.width
	return b.pix[off : off+b.width : off+b.width]
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.width == o.width && b.height == o.height && slices.Equal(b.pix, o.pix)
}

// Clone returns an independent copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{width: b.width, height: b.height, pix: slices.Clone(b.pix)}
}
