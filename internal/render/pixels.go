package render

import "math"

// ColorMode selects how normalized field values map to pixels.
type ColorMode int

const (
	// ColorHSV maps the field onto a hue ramp, masked by brightness.
	ColorHSV ColorMode = iota
	// ColorGrayscale maps the field onto masked luminance.
	ColorGrayscale
	// ColorObstacle is the hue ramp with solid cells drawn white.
	ColorObstacle
)

// Next cycles forward through the color modes.
func (m ColorMode) Next() ColorMode { return (m + 1) % 3 }

// Prev cycles backward through the color modes.
func (m ColorMode) Prev() ColorMode { return (m + 2) % 3 }

// String returns the mode name for titles and overlays.
func (m ColorMode) String() string {
	switch m {
	case ColorHSV:
		return "color"
	case ColorGrayscale:
		return "grayscale"
	case ColorObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Mask values at or below this threshold mark solid cells. Matches the
// solver's solid sentinel magnitude.
const solidThreshold = 1e-11

// fillFieldRGBA normalizes field to [0,1] by its own min/max and writes RGBA
// pixels into buf. mask scales brightness per cell (the classification or
// smoke field, depending on the view).
func fillFieldRGBA(buf []byte, field, mask []float64, mode ColorMode) {
	lo := math.MaxFloat64
	hi := -math.MaxFloat64
	for _, x := range field {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	span := math.Max(hi-lo, 0.000001)

	for i, x := range field {
		px := (x - lo) / span
		if math.IsNaN(px) {
			px = 1.0
		}
		px = clamp(px, 0, 1)
		m := mask[i]

		var r, g, b uint8
		switch mode {
		case ColorHSV:
			r, g, b = hsvToRGB(px*300.0, clamp(span, 0.5, 1.0), clamp(m, 0, 1))
		case ColorGrayscale:
			l := uint8(px * m * 255.0)
			r, g, b = l, l, l
		case ColorObstacle:
			if m > solidThreshold {
				r, g, b = hsvToRGB(px*300.0, clamp(span, 0.5, 1.0)*m, clamp(m, 0, 1))
			} else {
				r, g, b = 255, 255, 255
			}
		}

		base := i * 4
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 255
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hsvToRGB converts a hue in degrees [0,360) with saturation and value in
// [0,1] to 8-bit RGB.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
