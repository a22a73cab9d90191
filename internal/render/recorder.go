package render

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Recorder captures RGBA frames into a gzip-compressed stream. Each frame is
// a big-endian uint32 width and height followed by the raw pixels.
type Recorder struct {
	f      *os.File
	zw     *gzip.Writer
	frames int
}

// NewRecorder creates (or truncates) the recording file at path.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recording: %w", err)
	}
	return &Recorder{f: f, zw: gzip.NewWriter(f)}, nil
}

// WriteFrame appends one frame. rgba must hold w*h*4 bytes.
func (r *Recorder) WriteFrame(w, h int, rgba []byte) error {
	if len(rgba) != w*h*4 {
		return fmt.Errorf("recorder: frame size %d does not match %dx%d", len(rgba), w, h)
	}
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(w))
	binary.BigEndian.PutUint32(header[4:8], uint32(h))
	if _, err := r.zw.Write(header[:]); err != nil {
		return err
	}
	if _, err := r.zw.Write(rgba); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int { return r.frames }

// Close flushes the compressed stream and closes the file.
func (r *Recorder) Close() error {
	if err := r.zw.Close(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}
