package telemetry

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// Recorder appends frames to an MJPEG AVI file.
type Recorder struct {
	w      mjpeg.AviWriter
	buf    bytes.Buffer
	opts   jpeg.Options
	width  int
	height int
	frames int
}

// NewRecorder creates path and prepares it for frames of width*height pixels.
func NewRecorder(path string, width, height, fps int) (*Recorder, error) {
	if fps <= 0 {
		fps = 30
	}
	w, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("creating video %s: %w", path, err)
	}
	return &Recorder{w: w, opts: jpeg.Options{Quality: 90}, width: width, height: height}, nil
}

// AddFrame encodes img as JPEG and appends it. Frames must match the size the
// recorder was created with.
func (r *Recorder) AddFrame(img image.Image) error {
	if b := img.Bounds(); b.Dx() != r.width || b.Dy() != r.height {
		return fmt.Errorf("frame %dx%d does not match video %dx%d", b.Dx(), b.Dy(), r.width, r.height)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &r.opts); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	if err := r.w.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("adding frame: %w", err)
	}
	r.frames++
	return nil
}

// Frames returns how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalises the AVI index.
func (r *Recorder) Close() error {
	return r.w.Close()
}
