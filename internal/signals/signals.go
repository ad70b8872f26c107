// Package signals turns OS signals into context cancellation and terminal
// window size updates. It has no internal imports.
package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Interrupts are the signals that cancel a running command.
var Interrupts = []os.Signal{os.Interrupt, syscall.SIGTERM}

// InterruptContext returns a context cancelled on the first of Interrupts.
// stop releases the signal registration; a second Ctrl-C after stop kills
// the process as usual.
func InterruptContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, Interrupts...)
}

// Size is a terminal window size in character cells.
type Size struct {
	Rows uint16
	Cols uint16
}

// WindowWatcher mirrors the local terminal's size onto another terminal,
// typically a pseudo-terminal, whenever the window changes.
type WindowWatcher struct {
	measure func() (Size, error)
	apply   func(Size) error

	mu   sync.Mutex
	last Size

	sigs      chan os.Signal
	done      chan struct{}
	closeOnce sync.Once
}

// WatchWindow applies the current size once and then on every window
// change until Close. Sizes that cannot be measured are skipped; an
// unchanged size is not applied again.
func WatchWindow(measure func() (Size, error), apply func(Size) error) *WindowWatcher {
	w := &WindowWatcher{
		measure: measure,
		apply:   apply,
		sigs:    make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	w.Sync()
	notifyResize(w.sigs)
	go w.loop()
	return w
}

// Sync measures the window and applies the size if it changed.
func (w *WindowWatcher) Sync() {
	size, err := w.measure()
	if err != nil || size == (Size{}) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if size == w.last {
		return
	}
	if w.apply(size) == nil {
		w.last = size
	}
}

// Close stops watching. Safe to call more than once.
func (w *WindowWatcher) Close() {
	w.closeOnce.Do(func() {
		signal.Stop(w.sigs)
		close(w.done)
	})
}

func (w *WindowWatcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case <-w.sigs:
			w.Sync()
		}
	}
}
