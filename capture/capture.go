// Package capture feeds video and webcam frames to the rendering
// pipeline. It owns every OpenCV resource it creates and hands the rest
// of the program plain sample matrices, so nothing outside this package
// touches gocv types.
package capture

import (
	"fmt"
	"io"

	"gocv.io/x/gocv"

	"github.com/termvision/asciiframe"
)

// Options selects the optional per-frame stages of a Stream.
type Options struct {
	// Clarity enables the CLAHE plus unsharp enhancement stage.
	Clarity bool
	// CascadeFile, when set, loads a Haar cascade and crops each frame
	// to the largest detected face.
	CascadeFile string
}

// Stream reads frames from a video file or camera, converts them to
// grayscale, runs the configured enhancement stages, and produces one
// matrix per frame. A Stream is single-threaded: render one frame fully
// before asking for the next.
type Stream struct {
	cap    *gocv.VideoCapture
	frame  gocv.Mat
	gray   gocv.Mat
	enh    *Enhancer
	framer *FaceFramer
}

// OpenVideo opens a video file as a frame stream.
func OpenVideo(path string, opts Options) (*Stream, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video %s: %w", path, err)
	}
	return newStream(cap, opts)
}

// OpenCamera opens a capture device by index as a frame stream.
func OpenCamera(device int, opts Options) (*Stream, error) {
	cap, err := gocv.VideoCaptureDevice(device)
	if err != nil {
		return nil, fmt.Errorf("failed to open camera %d: %w", device, err)
	}
	return newStream(cap, opts)
}

func newStream(cap *gocv.VideoCapture, opts Options) (*Stream, error) {
	s := &Stream{
		cap:   cap,
		frame: gocv.NewMat(),
		gray:  gocv.NewMat(),
	}
	if opts.Clarity {
		s.enh = NewEnhancer()
	}
	if opts.CascadeFile != "" {
		framer, err := NewFaceFramer(opts.CascadeFile)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.framer = framer
	}
	return s, nil
}

// Next grabs and converts the next frame. It returns io.EOF when the
// source is exhausted. The returned matrix is freshly allocated and
// safe to keep across frames.
func (s *Stream) Next() (*asciiframe.Matrix, error) {
	for {
		if ok := s.cap.Read(&s.frame); !ok {
			return nil, io.EOF
		}
		if !s.frame.Empty() {
			break
		}
	}
	gocv.CvtColor(s.frame, &s.gray, gocv.ColorBGRToGray)

	work := s.gray
	if s.framer != nil {
		work = s.framer.Crop(work)
	}
	if s.enh != nil {
		work = s.enh.Enhance(work)
	}
	return matToMatrix(work), nil
}

// Close releases the capture device and every owned OpenCV resource.
func (s *Stream) Close() error {
	if s.framer != nil {
		s.framer.Close()
	}
	if s.enh != nil {
		s.enh.Close()
	}
	s.frame.Close()
	s.gray.Close()
	return s.cap.Close()
}

// matToMatrix copies a single-channel mat into a sample matrix. The
// fast path reads the mat's backing buffer in one go; submatrix views
// are not continuous and fall back to per-pixel reads.
func matToMatrix(gray gocv.Mat) *asciiframe.Matrix {
	rows, cols := gray.Rows(), gray.Cols()
	if rows == 0 || cols == 0 {
		return asciiframe.NewMatrix(0, 0)
	}
	m := asciiframe.NewMatrix(cols, rows)
	if gray.IsContinuous() {
		if data, err := gray.DataPtrUint8(); err == nil && len(data) == rows*cols {
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					m.Set(x, y, data[y*cols+x])
				}
			}
			return m
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.Set(x, y, gray.GetUCharAt(y, x))
		}
	}
	return m
}
