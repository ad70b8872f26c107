package iostreams

import "time"

// HasStatus reports whether a transient status line is on screen.
func (s *IOStreams) HasStatus() bool {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.status != nil
}

// RenderSpinner exposes one spinner frame.
func RenderSpinner(tick int, label string, elapsed time.Duration, cs *ColorScheme) string {
	return renderSpinner(tick, label, elapsed, cs)
}
