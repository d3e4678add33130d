// Command asciicam streams a video file or webcam as live ASCII art in
// the terminal. Each frame is converted to grayscale, optionally
// enhanced and face-cropped via OpenCV, and rendered through the same
// pipeline as the still-image tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"

	"github.com/termvision/asciiframe"
	"github.com/termvision/asciiframe/capture"
	"github.com/termvision/asciiframe/internal/cli"
)

// clearScreen homes the cursor and clears the terminal so consecutive
// frames overdraw each other instead of scrolling.
const clearScreen = "\x1b[H\x1b[2J"

func main() {
	videoFile := flag.String("video", "",
		"Path to a video file (empty to use the webcam)")
	camera := flag.Int("camera", 0,
		"Webcam device index when no video is given")
	width := flag.Int("width", asciiframe.DefaultWidth,
		"Target width of the output in glyph columns")
	fps := flag.Float64("fps", 24.0,
		"Frame pacing limit (0 to run unthrottled)")
	aspect := flag.Float64("aspect", asciiframe.DefaultAspectRatio,
		"Height correction for non-square glyph cells")
	gamma := flag.Float64("gamma", 0.9,
		"Gamma correction for contrast (streaming default 0.9)")
	invert := flag.Bool("invert", false,
		"Flip dark and light before mapping")
	dither := flag.Bool("dither", false,
		"Enable Floyd-Steinberg dithering")
	charset := flag.String("charset", "simple",
		"Glyph ramp, darkest first, or a keyword: simple, dense")
	clarity := flag.Bool("clarity", false,
		"Enhance frames with CLAHE and sharpening")
	fit := flag.Bool("fit", false,
		"Fit the width to the terminal")
	cascade := flag.String("cascade", "",
		"Haar cascade XML; crops each frame to the largest face")
	configFile := flag.String("config", "",
		"Path to a TOML options file (explicit flags win)")
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
		if opts.FPS != nil && !set["fps"] {
			*fps = *opts.FPS
		}
		if opts.Clarity != nil && !set["clarity"] {
			*clarity = *opts.Clarity
		}
		if opts.Fit != nil && !set["fit"] {
			*fit = *opts.Fit
		}
	}

	cfg := asciiframe.Config{
		Width:       cli.FitWidth(*width, *fit),
		AspectRatio: *aspect,
		Gamma:       *gamma,
		Invert:      *invert,
		Dither:      *dither,
		Charset:     cli.ResolveCharset(*charset),
	}
	// Validate once up front; configuration is fixed for the session
	// and must not fail per-frame inside the loop.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := capture.Options{
		Clarity:     *clarity,
		CascadeFile: *cascade,
	}
	var (
		stream *capture.Stream
		err    error
	)
	if *videoFile != "" {
		stream, err = capture.OpenVideo(*videoFile, opts)
	} else {
		stream, err = capture.OpenCamera(*camera, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer stream.Close()

	var delay time.Duration
	if *fps > 0 {
		delay = time.Duration(float64(time.Second) / *fps)
	}

	out := colorable.NewColorableStdout()
	var sb strings.Builder
	for {
		m, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		lines, err := asciiframe.RenderFrame(m, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		sb.Reset()
		sb.WriteString(clearScreen)
		sb.WriteString(asciiframe.Text(lines))
		sb.WriteByte('\n')
		fmt.Fprint(out, sb.String())

		if delay > 0 {
			time.Sleep(delay)
		}
	}
}
