package render

import "testing"

func TestFillFieldGrayscale(t *testing.T) {
	field := []float64{0, 1}
	mask := []float64{1, 1}
	buf := make([]byte, 8)

	fillFieldRGBA(buf, field, mask, ColorGrayscale)

	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 255 {
		t.Fatalf("low pixel = %v, expected opaque black", buf[0:4])
	}
	if buf[4] != 255 || buf[5] != 255 || buf[6] != 255 || buf[7] != 255 {
		t.Fatalf("high pixel = %v, expected opaque white", buf[4:8])
	}
}

func TestFillFieldObstacleDrawsSolidWhite(t *testing.T) {
	// A solid cell carries a tiny negative mask weight and must render white.
	field := []float64{0.2, 0.8}
	mask := []float64{-1e-11, 1}
	buf := make([]byte, 8)

	fillFieldRGBA(buf, field, mask, ColorObstacle)

	if buf[0] != 255 || buf[1] != 255 || buf[2] != 255 {
		t.Fatalf("solid pixel = %v, expected white", buf[0:4])
	}
}

func TestFillFieldUniformDoesNotDivideByZero(t *testing.T) {
	field := []float64{0.5, 0.5}
	mask := []float64{1, 1}
	buf := make([]byte, 8)

	fillFieldRGBA(buf, field, mask, ColorGrayscale)

	for i := 0; i < 8; i += 4 {
		if buf[i+3] != 255 {
			t.Fatalf("pixel %d lost alpha on a flat field", i/4)
		}
	}
}

func TestHSVToRGBPrimaries(t *testing.T) {
	cases := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
	}
	for _, c := range cases {
		r, g, b := hsvToRGB(c.h, 1, 1)
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("hsvToRGB(%v,1,1) = (%d,%d,%d), expected (%d,%d,%d)", c.h, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestColorModeCycle(t *testing.T) {
	if ColorHSV.Next() != ColorGrayscale {
		t.Fatal("Next from ColorHSV")
	}
	if ColorObstacle.Next() != ColorHSV {
		t.Fatal("Next must wrap to ColorHSV")
	}
	if ColorHSV.Prev() != ColorObstacle {
		t.Fatal("Prev must wrap to ColorObstacle")
	}
}
