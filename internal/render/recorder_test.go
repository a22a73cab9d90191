package render

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestRecorderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.rgba.gz")

	rec, err := NewRecorder(path)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	frame := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := rec.WriteFrame(2, 1, frame); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if rec.Frames() != 1 {
		t.Fatalf("Frames() = %d, expected 1", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open recording: %v", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}

	if len(raw) != 16 {
		t.Fatalf("stream length = %d, expected 8 header + 8 pixel bytes", len(raw))
	}
	if w := binary.BigEndian.Uint32(raw[0:4]); w != 2 {
		t.Fatalf("width header = %d", w)
	}
	if h := binary.BigEndian.Uint32(raw[4:8]); h != 1 {
		t.Fatalf("height header = %d", h)
	}
	for i, b := range raw[8:] {
		if b != frame[i] {
			t.Fatalf("pixel byte %d = %d, expected %d", i, b, frame[i])
		}
	}
}

func TestRecorderRejectsWrongFrameSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.rgba.gz")

	rec, err := NewRecorder(path)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	defer rec.Close()

	if err := rec.WriteFrame(2, 2, []byte{1, 2, 3}); err == nil {
		t.Fatal("short frame must be rejected")
	}
	if rec.Frames() != 0 {
		t.Fatalf("Frames() = %d after rejected write", rec.Frames())
	}
}
