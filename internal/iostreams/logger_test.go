package iostreams

import "github.com/rs/zerolog"

var _ Logger = (*zerolog.Logger)(nil)
