package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"mandel/app"
	"mandel/hal"
	"mandel/internal/buildinfo"
	"mandel/render"
)

func main() {
	var (
		hcfg     hal.Config
		headless hal.HeadlessConfig
		cfg      app.Config
	)
	flag.IntVar(&hcfg.Width, "width", 1200, "Grid width in pixels.")
	flag.IntVar(&hcfg.Height, "height", 1200, "Grid height in pixels.")
	flag.IntVar(&cfg.BandHeight, "band", render.DefaultBandHeight, "Rows per render band.")
	flag.IntVar(&cfg.Workers, "workers", 0, "Max bands computed at once (0 = one goroutine per band).")
	flag.IntVar(&cfg.Iterations, "iterations", app.DefaultIterations, "Initial iteration budget.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Show the status overlay.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 1, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	fmt.Println("initializing... (" + buildinfo.String() + ")")

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, hcfg, headless, func(h hal.HAL) (func() error, error) {
			return app.New(ctx, h, cfg)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("goodbye")
		return
	}

	err := hal.RunWindow(hcfg, hal.WindowConfig{Title: "mandelbrot"}, func(h hal.HAL) (func() error, error) {
		return app.New(context.Background(), h, cfg)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("goodbye")
}
