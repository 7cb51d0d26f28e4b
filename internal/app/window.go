package app

import (
	"context"
	"errors"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// ErrWindowNotFound is returned when a window operation runs before startup or after shutdown
var ErrWindowNotFound = errors.New("window does not exist")

// Runtime is the part of the Wails runtime the shell depends on
type Runtime interface {
	WindowShow(ctx context.Context)
	EventsOn(ctx context.Context, eventName string, callback func(optionalData ...interface{})) func()
}

type wailsRuntime struct{}

func (wailsRuntime) WindowShow(ctx context.Context) {
	runtime.WindowShow(ctx)
}

func (wailsRuntime) EventsOn(ctx context.Context, eventName string, callback func(optionalData ...interface{})) func() {
	return runtime.EventsOn(ctx, eventName, callback)
}

// Window tracks the native window owned by the host.
// It exists between attach (startup) and detach (shutdown) and starts out hidden.
type Window struct {
	Name     string
	Document string

	mu      sync.Mutex
	ctx     context.Context
	visible bool
	rt      Runtime
}

func newWindow(name, document string, rt Runtime) *Window {
	return &Window{Name: name, Document: document, rt: rt}
}

func (w *Window) attach(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ctx = ctx
	w.visible = false
}

func (w *Window) detach() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ctx = nil
	w.visible = false
}

// Exists reports whether the native window is alive
func (w *Window) Exists() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ctx != nil
}

// Visible reports the last visibility set through the host
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Show makes the window visible. Showing a visible window is a no-op for the platform.
func (w *Window) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ctx == nil {
		return ErrWindowNotFound
	}
	w.rt.WindowShow(w.ctx)
	w.visible = true
	return nil
}
