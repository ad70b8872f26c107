package iostreams

import (
	"fmt"
	"time"
)

type statusLine struct {
	timer *time.Timer
}

// PrintStatus writes a one-line status message to stderr. With transient
// status enabled and stderr on a terminal the line is erased after ttl, or
// as soon as anything else is printed. Otherwise it is a normal line.
func (s *IOStreams) PrintStatus(ttl time.Duration, text string) error {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	s.clearStatusLocked()

	if !s.transientStatus || !s.IsStderrTTY() || ttl <= 0 {
		_, err := fmt.Fprintln(s.ErrOut, text)
		return err
	}

	if _, err := fmt.Fprintf(s.ErrOut, "\r\033[K%s", text); err != nil {
		return err
	}
	st := &statusLine{}
	st.timer = time.AfterFunc(ttl, func() {
		s.statusMu.Lock()
		defer s.statusMu.Unlock()
		if s.status == st {
			fmt.Fprint(s.ErrOut, "\r\033[K")
			s.status = nil
		}
	})
	s.status = st
	return nil
}

// ClearStatus erases a pending transient status line immediately.
func (s *IOStreams) ClearStatus() {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.clearStatusLocked()
}

func (s *IOStreams) clearStatusLocked() {
	if s.status == nil {
		return
	}
	s.status.timer.Stop()
	fmt.Fprint(s.ErrOut, "\r\033[K")
	s.status = nil
}
