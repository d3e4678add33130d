package asciiframe

import "errors"

// ErrInvalidArgument marks configuration mistakes the caller must fix
// before re-invoking: a target width below one, or a glyph ramp shorter
// than two glyphs. It is never returned for empty input, which is a
// defined degenerate case producing an empty result.
var ErrInvalidArgument = errors.New("invalid argument")
