// Package render recomputes the pixel buffer in parallel bands and blits it
// to a display surface.
package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mandel/fractal"
	"mandel/hal"

	"golang.org/x/sync/errgroup"
)

// DefaultBandHeight is the number of rows per worker.
const DefaultBandHeight = 100

var ErrInvalidConfig = errors.New("invalid render config")

// Surface receives the finished frame.
type Surface interface {
	SetRGB(x, y int, r, g, b uint8)
	Present() error
}

// Config sizes the grid and its partitioning.
type Config struct {
	Width      int
	Height     int
	BandHeight int

	// Workers caps the number of bands computed at once.
	// Zero or less starts one goroutine per band.
	Workers int
}

// Driver owns the pixel buffer and performs full render passes.
type Driver struct {
	cfg     Config
	bands   []Band
	buf     *Buffer
	surface Surface
	log     hal.Logger

	// Overlay, when set, draws over the blitted frame before it is presented.
	Overlay func()

	color func(x, y, w, h int, vp fractal.Viewport, budget int) fractal.RGB
}

// NewDriver allocates the buffer for cfg. log may be nil.
func NewDriver(cfg Config, surface Surface, log hal.Logger) (*Driver, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidConfig)
	}
	if cfg.BandHeight <= 0 {
		cfg.BandHeight = DefaultBandHeight
	}
	return &Driver{
		cfg:     cfg,
		bands:   Bands(cfg.Height, cfg.BandHeight),
		buf:     NewBuffer(cfg.Width, cfg.Height),
		surface: surface,
		log:     log,
		color:   fractal.Color,
	}, nil
}

// Buffer returns the pixel buffer of the last pass.
func (d *Driver) Buffer() *Buffer { return d.buf }

// Bands returns the row partition used for every pass.
func (d *Driver) Bands() []Band { return d.bands }

// Render recomputes every pixel for vp and budget, waits for all bands, then
// blits the buffer to the surface and presents it. On error nothing is
// presented.
func (d *Driver) Render(ctx context.Context, vp fractal.Viewport, budget int) error {
	d.logf("rendering (%d) - %v", budget, vp)
	start := time.Now()

	if err := d.compute(ctx, vp, budget); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := d.Show(); err != nil {
		return err
	}

	d.logf("done! (%d bands, %s)", len(d.bands), time.Since(start).Round(time.Millisecond))
	return nil
}

func (d *Driver) compute(ctx context.Context, vp fractal.Viewport, budget int) error {
	g, ctx := errgroup.WithContext(ctx)
	if d.cfg.Workers > 0 {
		g.SetLimit(d.cfg.Workers)
	}
	for _, band := range d.bands {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("band %v: panic: %v", band, r)
				}
			}()
			return d.fill(ctx, band, vp, budget)
		})
	}
	return g.Wait()
}

// fill writes the rows of one band. Bands never overlap, so no locking.
func (d *Driver) fill(ctx context.Context, band Band, vp fractal.Viewport, budget int) error {
	w, h := d.cfg.Width, d.cfg.Height
	for y := band.Y0; y < band.Y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := d.buf.Row(y)
		for x := range row {
			row[x] = d.color(x, y, w, h, vp, budget)
		}
	}
	return nil
}

// Show blits the current buffer, applies the overlay and presents the frame
// without recomputing anything.
func (d *Driver) Show() error {
	d.blit()
	if d.Overlay != nil {
		d.Overlay()
	}
	if err := d.surface.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// blit draws column-major: outer x, inner y.
func (d *Driver) blit() {
	for x := 0; x < d.cfg.Width; x++ {
		for y := 0; y < d.cfg.Height; y++ {
			c := d.buf.At(x, y)
			d.surface.SetRGB(x, y, c.R, c.G, c.B)
		}
	}
}

func (d *Driver) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}
