// Command asciify converts a still image into ASCII art. PGM (P2)
// files are parsed natively; common raster formats are decoded through
// the imaging library. The art is printed to stdout and can optionally
// be saved as text or rasterized to a PNG with a TTF font.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/termvision/asciiframe"
	"github.com/termvision/asciiframe/imageio"
	"github.com/termvision/asciiframe/internal/cli"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the output text (if not specified, prints only)")
	width := flag.Int("width", asciiframe.DefaultWidth,
		"Target width of the output in glyph columns")
	fit := flag.Bool("fit", true,
		"Fit the width to the terminal (two-column margin)")
	aspect := flag.Float64("aspect", asciiframe.DefaultAspectRatio,
		"Height correction for non-square glyph cells")
	gamma := flag.Float64("gamma", asciiframe.DefaultGamma,
		"Gamma correction, e.g. 0.8 or 1.2 (1.0 = unchanged)")
	invert := flag.Bool("invert", false,
		"Flip dark and light before mapping")
	dither := flag.Bool("dither", false,
		"Enable Floyd-Steinberg dithering for detail at small widths")
	charset := flag.String("charset", "simple",
		"Glyph ramp, darkest first, or a keyword: simple, dense")
	clarity := flag.Bool("clarity", false,
		"Stretch contrast and sharpen before rendering")
	smooth := flag.Bool("smooth", false,
		"Bilinear pre-scale to the target grid before rendering")
	configFile := flag.String("config", "",
		"Path to a TOML options file (explicit flags win)")
	pngFile := flag.String("png", "",
		"Path to save a PNG rendering of the art (requires -font)")
	fontFile := flag.String("font", "",
		"Path to a monospace TTF font for PNG output")
	fontSize := flag.Float64("fontsize", 12,
		"Font size in points for PNG output")
	flag.Parse()

	if *configFile != "" {
		opts, err := cli.LoadOptions(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		set := cli.ExplicitFlags(flag.CommandLine)
		if opts.Width != nil && !set["width"] {
			*width = *opts.Width
		}
		if opts.AspectRatio != nil && !set["aspect"] {
			*aspect = *opts.AspectRatio
		}
		if opts.Gamma != nil && !set["gamma"] {
			*gamma = *opts.Gamma
		}
		if opts.Invert != nil && !set["invert"] {
			*invert = *opts.Invert
		}
		if opts.Dither != nil && !set["dither"] {
			*dither = *opts.Dither
		}
		if opts.Charset != nil && !set["charset"] {
			*charset = *opts.Charset
		}
		if opts.Clarity != nil && !set["clarity"] {
			*clarity = *opts.Clarity
		}
		if opts.Fit != nil && !set["fit"] {
			*fit = *opts.Fit
		}
	}

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := asciiframe.Config{
		Width:       cli.FitWidth(*width, *fit),
		AspectRatio: *aspect,
		Gamma:       *gamma,
		Invert:      *invert,
		Dither:      *dither,
		Charset:     cli.ResolveCharset(*charset),
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := imageio.Load(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *clarity {
		m = imageio.Sharpen(imageio.Autocontrast(m))
	}
	if *smooth {
		// Prescale already applied the aspect correction; rendering
		// must not scale the height a second time.
		m = imageio.Prescale(m, cfg.Width, cfg.AspectRatio)
		cfg.AspectRatio = 1.0
	}

	lines, err := asciiframe.RenderFrame(m, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	art := asciiframe.Text(lines)
	fmt.Println(art)

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(art), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", *outputFile)
	}

	if *pngFile != "" {
		if *fontFile == "" {
			fmt.Fprintln(os.Stderr, "PNG output requires a TTF font via -font")
			os.Exit(1)
		}
		if err := asciiframe.SavePNG(lines, *fontFile, *fontSize, *pngFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "PNG output written to %s\n", *pngFile)
	}
}
