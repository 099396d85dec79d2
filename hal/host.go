package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Config sizes the host devices.
type Config struct {
	Width  int
	Height int

	// LogOutput receives log lines; nil means os.Stdout.
	LogOutput io.Writer
}

// Injector feeds synthetic input into a host HAL.
// Sends never block; a full queue drops the event and reports false.
type Injector interface {
	InjectKey(ev KeyEvent) bool
	InjectPointer(ev PointerEvent) bool
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
}

// New returns a host HAL implementation.
func New(cfg Config) (HAL, error) {
	return newHost(cfg)
}

func newHost(cfg Config) (*hostHAL, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", cfg.Width, cfg.Height)
	}
	w := cfg.LogOutput
	if w == nil {
		w = os.Stdout
	}
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

func (h *hostHAL) InjectKey(ev KeyEvent) bool {
	select {
	case h.kbd.ch <- ev:
		return true
	default:
		return false
	}
}

func (h *hostHAL) InjectPointer(ev PointerEvent) bool {
	select {
	case h.ptr.ch <- ev:
		return true
	default:
		return false
	}
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
