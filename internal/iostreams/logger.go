package iostreams

import "github.com/rs/zerolog"

// Logger provides diagnostic logging for the command layer.
// *zerolog.Logger satisfies this interface directly; production wires
// logger.Global{} so interactive-mode suppression applies.
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}
