// Package imageio decodes image files into grayscale sample matrices
// for the rendering pipeline. It handles ASCII PGM (P2) natively and
// everything else through the imaging library.
package imageio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/termvision/asciiframe"
)

// DecodePGM parses an ASCII PGM (P2) stream into a matrix. Blank lines
// and full-line comments are skipped. Sample values are stored as read;
// the format's maxval is validated but not used to rescale.
func DecodePGM(r io.Reader) (*asciiframe.Matrix, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pgm: %w", err)
	}

	if len(tokens) == 0 || tokens[0] != "P2" {
		return nil, fmt.Errorf("pgm must be ASCII P2 format")
	}
	if len(tokens) < 4 {
		return nil, fmt.Errorf("pgm header is truncated")
	}
	width, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("bad pgm width %q", tokens[1])
	}
	height, err := strconv.Atoi(tokens[2])
	if err != nil {
		return nil, fmt.Errorf("bad pgm height %q", tokens[2])
	}
	maxval, err := strconv.Atoi(tokens[3])
	if err != nil || maxval <= 0 {
		return nil, fmt.Errorf("bad pgm maxval %q", tokens[3])
	}

	expected := width * height
	values := tokens[4:]
	if len(values) < expected {
		return nil, fmt.Errorf(
			"pgm has %d samples, dimensions %dx%d need %d",
			len(values), width, height, expected)
	}
	// Trailing tokens beyond the sample count are ignored.
	values = values[:expected]

	m := asciiframe.NewMatrix(width, height)
	for i, tok := range values {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("bad pgm sample %q at index %d", tok, i)
		}
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		m.Set(i%width, i/width, uint8(v))
	}
	return m, nil
}

// ReadPGM reads an ASCII PGM (P2) file from disk.
func ReadPGM(path string) (*asciiframe.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pgm: %w", err)
	}
	defer f.Close()
	return DecodePGM(f)
}
