package render

import "fmt"

// Band is the half-open row range [Y0, Y1) owned by one worker.
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.Y1 - b.Y0 }

func (b Band) String() string { return fmt.Sprintf("[%d,%d)", b.Y0, b.Y1) }

// Bands splits [0, height) into consecutive bands of bandHeight rows.
// The last band is shorter when height is not a multiple of bandHeight.
// A bandHeight of zero or less yields a single band.
func Bands(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 || bandHeight > height {
		bandHeight = height
	}

	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+bandHeight, height)})
	}
	return bands
}
