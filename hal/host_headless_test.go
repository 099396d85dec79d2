package hal

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{Width: 8, Height: 4, LogOutput: io.Discard}
}

func TestRunHeadlessTickLimit(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), testConfig(), HeadlessConfig{Hz: 1000, Ticks: 5},
		func(HAL) (func() error, error) {
			return func() error {
				steps++
				return nil
			}, nil
		})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	var got []KeyEvent
	script := func(tick uint64, in Injector) {
		if tick == 2 {
			in.InjectKey(KeyEvent{Code: KeyEscape, Press: true})
		}
	}
	err := RunHeadless(context.Background(), testConfig(), HeadlessConfig{Hz: 1000, Script: script},
		func(h HAL) (func() error, error) {
			kbd := h.Input().Keyboard()
			return func() error {
				for {
					select {
					case ev := <-kbd.Events():
						got = append(got, ev)
						if ev.Code == KeyEscape {
							return ErrQuit
						}
					default:
						return nil
					}
				}
			}, nil
		})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if len(got) != 1 || got[0].Code != KeyEscape {
		t.Fatalf("events = %+v, want one escape", got)
	}
}

func TestRunHeadlessPointerInjection(t *testing.T) {
	want := PointerEvent{X: 3, Y: 2, Button: ButtonLeft, Press: true}
	var got PointerEvent
	script := func(tick uint64, in Injector) {
		if tick == 0 && !in.InjectPointer(want) {
			t.Errorf("InjectPointer() = false, want true")
		}
	}
	err := RunHeadless(context.Background(), testConfig(), HeadlessConfig{Hz: 1000, Ticks: 1, Script: script},
		func(h HAL) (func() error, error) {
			ptr := h.Input().Pointer()
			return func() error {
				select {
				case got = <-ptr.Events():
				default:
				}
				return nil
			}, nil
		})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if got != want {
		t.Fatalf("pointer event = %+v, want %+v", got, want)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), testConfig(), HeadlessConfig{Hz: 1000},
		func(HAL) (func() error, error) {
			return func() error { return boom }, nil
		})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() = %v, want %v", err, boom)
	}
}

func TestRunHeadlessInitError(t *testing.T) {
	boom := errors.New("init")
	err := RunHeadless(context.Background(), testConfig(), HeadlessConfig{},
		func(HAL) (func() error, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() = %v, want %v", err, boom)
	}

	err = RunHeadless(context.Background(), Config{Width: 0, Height: 4}, HeadlessConfig{},
		func(HAL) (func() error, error) { return nil, nil })
	if err == nil {
		t.Fatal("RunHeadless() with zero width = nil, want error")
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, testConfig(), HeadlessConfig{Hz: 100},
		func(HAL) (func() error, error) { return func() error { return nil }, nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless() = %v, want deadline exceeded", err)
	}
}
