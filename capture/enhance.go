package capture

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Enhancer boosts local contrast and edge clarity on grayscale frames:
// CLAHE equalization followed by a mild unsharp mask. It owns its
// intermediate buffers and the CLAHE instance, so construct it once per
// session and Close it when done rather than hiding it in package
// state.
type Enhancer struct {
	clahe gocv.CLAHE
	eq    gocv.Mat
	blur  gocv.Mat
	sharp gocv.Mat
}

// NewEnhancer creates an enhancer with clip limit 2.0 over 8x8 tiles.
func NewEnhancer() *Enhancer {
	return &Enhancer{
		clahe: gocv.NewCLAHEWithParams(2.0, image.Pt(8, 8)),
		eq:    gocv.NewMat(),
		blur:  gocv.NewMat(),
		sharp: gocv.NewMat(),
	}
}

// Enhance equalizes and sharpens a grayscale frame. The returned mat is
// owned by the enhancer and valid until the next Enhance or Close call.
func (e *Enhancer) Enhance(gray gocv.Mat) gocv.Mat {
	e.clahe.Apply(gray, &e.eq)
	gocv.GaussianBlur(e.eq, &e.blur, image.Pt(0, 0), 1.0, 0, gocv.BorderDefault)
	gocv.AddWeighted(e.eq, 1.5, e.blur, -0.5, 0, &e.sharp)
	return e.sharp
}

// Close releases the CLAHE instance and the intermediate buffers.
func (e *Enhancer) Close() error {
	e.eq.Close()
	e.blur.Close()
	e.sharp.Close()
	return e.clahe.Close()
}

// facePadding widens the detected face box on every side so the crop
// keeps some headroom around the subject.
const facePadding = 0.4

// FaceFramer crops frames to the largest face found by a Haar cascade.
// The classifier is loaded from a caller-supplied cascade file and is
// an explicitly owned resource: construct, use, Close.
type FaceFramer struct {
	classifier gocv.CascadeClassifier
	roi        gocv.Mat
	hasROI     bool
}

// NewFaceFramer loads a Haar cascade from the given XML file.
func NewFaceFramer(cascadeFile string) (*FaceFramer, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadeFile) {
		classifier.Close()
		return nil, fmt.Errorf("failed to load cascade %s", cascadeFile)
	}
	return &FaceFramer{classifier: classifier}, nil
}

// Crop returns a view of the frame centered on the largest detected
// face, padded by facePadding on each side. When no face is found the
// frame is returned as-is. The view is owned by the framer and valid
// until the next Crop or Close call.
func (f *FaceFramer) Crop(gray gocv.Mat) gocv.Mat {
	if f.hasROI {
		f.roi.Close()
		f.hasROI = false
	}
	faces := f.classifier.DetectMultiScale(gray)
	if len(faces) == 0 {
		return gray
	}

	best := faces[0]
	for _, r := range faces[1:] {
		if r.Dx()*r.Dy() > best.Dx()*best.Dy() {
			best = r
		}
	}

	padX := int(float64(best.Dx()) * facePadding)
	padY := int(float64(best.Dy()) * facePadding)
	padded := image.Rect(
		best.Min.X-padX, best.Min.Y-padY,
		best.Max.X+padX, best.Max.Y+padY,
	).Intersect(image.Rect(0, 0, gray.Cols(), gray.Rows()))
	if padded.Empty() {
		return gray
	}

	f.roi = gray.Region(padded)
	f.hasROI = true
	return f.roi
}

// Close releases the classifier and any outstanding crop view.
func (f *FaceFramer) Close() error {
	if f.hasROI {
		f.roi.Close()
		f.hasROI = false
	}
	return f.classifier.Close()
}
