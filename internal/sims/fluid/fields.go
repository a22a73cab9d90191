package fluid

import (
	"fmt"
	"math"
	"strings"
)

// SpeedField computes the per-cell speed magnitude from the face-averaged
// velocity. The slice is freshly built on every call, in row-major order,
// length w*h.
func (s *Sim) SpeedField() []float64 {
	speed := make([]float64, 0, s.w*s.h)
	for j := 0; j < s.h; j++ {
		for i := 0; i < s.w; i++ {
			u := 0.5 * (s.u.At(i, j) + s.u.At(i+1, j))
			v := 0.5 * (s.v.At(i, j) + s.v.At(i, j+1))
			speed = append(speed, math.Sqrt(u*u+v*v))
		}
	}
	return speed
}

// SmokeField returns a read-only view of the tracer field in row-major
// order. Callers must not mutate it.
func (s *Sim) SmokeField() []float64 { return s.smoke.Data() }

// PressureField returns a read-only view of the pressure field in row-major
// order. Callers must not mutate it.
func (s *Sim) PressureField() []float64 { return s.p.Data() }

// ClassificationField returns the per-cell classification weights (1.0 for
// fluid, the tiny negative sentinel for solid) in row-major order.
func (s *Sim) ClassificationField() []float64 {
	out := make([]float64, len(s.cells))
	for i, c := range s.cells {
		out[i] = c.weight()
	}
	return out
}

// MeanAbsDivergence reports the mean absolute net flux over all fluid
// cells, the residual error the projection drives toward zero.
func (s *Sim) MeanAbsDivergence() float64 {
	var sum float64
	n := 0
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if s.cells[y*s.w+x] != Fluid {
				continue
			}
			d := s.u.At(x+1, y) - s.u.At(x, y) + s.v.At(x, y+1) - s.v.At(x, y)
			sum += math.Abs(d)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// DescribeCell returns a diagnostic dump of the cell at (x, y): averaged
// face velocities, classification weight, pressure and smoke. Debug aid
// only, not part of the correctness contract.
func (s *Sim) DescribeCell(x, y int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(x,y) = (%d,%d):\n", x, y)
	fmt.Fprintf(&b, "u-flow: %.5f\n", 0.5*(s.u.At(x, y)+s.u.At(x+1, y)))
	fmt.Fprintf(&b, "v-flow: %.5f\n", 0.5*(s.v.At(x, y)+s.v.At(x, y+1)))
	fmt.Fprintf(&b, "s: %.5f\n", s.cells[y*s.w+x].weight())
	fmt.Fprintf(&b, "p: %.5f\n", s.p.At(x, y))
	fmt.Fprintf(&b, "smoke: %.5f", s.smoke.At(x, y))
	return b.String()
}
