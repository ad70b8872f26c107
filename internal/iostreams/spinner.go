package iostreams

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const (
	spinnerInterval = 120 * time.Millisecond
	// showElapsedAfter is how long a command runs before the spinner starts
	// showing its elapsed time.
	showElapsedAfter = 2 * time.Second
)

// renderSpinner renders one frame: "⠋ mason get", then "⠋ mason get (4s)"
// once showElapsedAfter has passed.
func renderSpinner(tick int, label string, elapsed time.Duration, cs *ColorScheme) string {
	frame := cs.Cyan(spinnerFrames[tick%len(spinnerFrames)])
	if label == "" {
		return frame
	}
	line := frame + " " + label
	if elapsed >= showElapsedAfter {
		line += " " + cs.Muted(fmt.Sprintf("(%s)", elapsed.Truncate(time.Second)))
	}
	return line
}

// spinner animates one label on a writer until stopped.
type spinner struct {
	cs      *ColorScheme
	out     io.Writer
	started time.Time

	mu    sync.Mutex
	label string

	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

func startSpinner(label string, cs *ColorScheme, out io.Writer) *spinner {
	sp := &spinner{
		cs:      cs,
		out:     out,
		started: time.Now(),
		label:   label,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go sp.run()
	return sp
}

func (sp *spinner) run() {
	defer close(sp.stopped)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		select {
		case <-sp.done:
			return
		case <-ticker.C:
		}
		sp.mu.Lock()
		line := renderSpinner(tick, sp.label, time.Since(sp.started), sp.cs)
		sp.mu.Unlock()

		// A closed pipe ends the animation.
		if _, err := fmt.Fprintf(sp.out, "\r\033[K%s", line); err != nil {
			return
		}
	}
}

func (sp *spinner) relabel(label string) {
	sp.mu.Lock()
	sp.label = label
	sp.mu.Unlock()
}

// stop ends the animation and clears the line. Safe to call more than once.
func (sp *spinner) stop() {
	sp.stopOnce.Do(func() {
		close(sp.done)
		<-sp.stopped
		fmt.Fprint(sp.out, "\r\033[K")
	})
}

// StartSpinner shows label with an animated spinner on stderr, or prints it
// once as "label..." when animation is disabled. Calling it while a spinner
// runs replaces the label. Nothing is shown when progress is disabled.
func (s *IOStreams) StartSpinner(label string) {
	if !s.progressIndicatorEnabled {
		return
	}
	s.ClearStatus()

	s.spinnerMu.Lock()
	defer s.spinnerMu.Unlock()

	switch {
	case s.spinnerDisabled:
		if label == "" {
			label = "Working"
		}
		label = strings.TrimSuffix(label, "...")
		fmt.Fprintf(s.ErrOut, "%s\n", s.ColorScheme().Cyan(label+"..."))
	case s.activeSpinner != nil:
		s.activeSpinner.relabel(label)
	default:
		s.activeSpinner = startSpinner(label, s.ColorScheme(), s.ErrOut)
	}
}

// StopSpinner stops the active spinner. Safe to call when none is running.
func (s *IOStreams) StopSpinner() {
	s.spinnerMu.Lock()
	defer s.spinnerMu.Unlock()

	if s.activeSpinner != nil {
		s.activeSpinner.stop()
		s.activeSpinner = nil
	}
}

// RunWithSpinner runs fn while showing a spinner.
func (s *IOStreams) RunWithSpinner(label string, fn func() error) error {
	s.StartSpinner(label)
	defer s.StopSpinner()
	return fn()
}
