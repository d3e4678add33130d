package asciiframe

// Glyph ramps ordered darkest to lightest. CharsetSimple is the compact
// ten-glyph ramp; CharsetDense trades contrast for tonal resolution and
// suits larger renders. Selecting a ramp by name is the CLI layer's
// business; the core takes the ramp verbatim.
const (
	CharsetSimple = " .:-=+*#%@"
	CharsetDense  = " .'`^\",:;Il!i~+_-?][}{1)(|\\/*tfjrxnczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"
)
