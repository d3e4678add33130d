package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Options is the TOML options file both tools accept via -config. Every
// field is optional; pointers distinguish "absent" from a zero value.
// Flags given explicitly on the command line always win over the file.
type Options struct {
	Width       *int     `toml:"width"`
	AspectRatio *float64 `toml:"aspect_ratio"`
	Gamma       *float64 `toml:"gamma"`
	Invert      *bool    `toml:"invert"`
	Dither      *bool    `toml:"dither"`
	Charset     *string  `toml:"charset"`
	FPS         *float64 `toml:"fps"`
	Clarity     *bool    `toml:"clarity"`
	Fit         *bool    `toml:"fit"`
}

// LoadOptions decodes an options file, rejecting keys it does not know
// about so typos fail loudly instead of being ignored.
func LoadOptions(path string) (Options, error) {
	var opts Options
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, fmt.Errorf("unknown options in %s: %s",
			path, strings.Join(keys, ", "))
	}
	return opts, nil
}

// ExplicitFlags reports which flags the user set on the command line,
// so options-file values only fill the gaps.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
