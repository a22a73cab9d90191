package fluid

import (
	"math"

	"eulerflow/internal/core"
)

// sample bilinearly interpolates g at the physical position (xin, yin).
// The (dx, dy) offset places the field on the MAC grid: zero for a
// coordinate stored on grid lines, half a cell for one stored at centers.
// Each axis is clamped into [cellSize, dim*cellSize]; the lower bound is a
// full cell because no sample exists before the first stored location.
func (s *Sim) sample(g *core.Grid, dx, dy, xin, yin float64) float64 {
	hs := s.par.CellSize

	x := math.Max(hs, math.Min(xin, float64(s.w)*hs))
	y := math.Max(hs, math.Min(yin, float64(s.h)*hs))

	x0 := min(int(math.Floor((x-dx)/hs)), s.w-1)
	tx := ((x - dx) - float64(x0)*hs) / hs
	x1 := min(x0+1, s.w-1)

	y0 := min(int(math.Floor((y-dy)/hs)), s.h-1)
	ty := ((y - dy) - float64(y0)*hs) / hs
	y1 := min(y0+1, s.h-1)

	sx := 1.0 - tx
	sy := 1.0 - ty

	return sx*sy*g.At(x0, y0) +
		tx*sy*g.At(x1, y0) +
		tx*ty*g.At(x1, y1) +
		sx*ty*g.At(x0, y1)
}

func (s *Sim) sampleU(x, y float64) float64 {
	return s.sample(s.u, 0, s.par.CellSize/2, x, y)
}

func (s *Sim) sampleV(x, y float64) float64 {
	return s.sample(s.v, s.par.CellSize/2, 0, x, y)
}

func (s *Sim) sampleSmoke(x, y float64) float64 {
	return s.sample(s.smoke, s.par.CellSize/2, s.par.CellSize/2, x, y)
}

// avgU averages the four u-faces nearest the v-face at (x, y).
func (s *Sim) avgU(x, y int) float64 {
	return (s.u.At(x, y-1) + s.u.At(x, y) + s.u.At(x+1, y-1) + s.u.At(x+1, y)) * 0.25
}

// avgV averages the four v-faces nearest the u-face at (x, y).
func (s *Sim) avgV(x, y int) float64 {
	return (s.v.At(x-1, y) + s.v.At(x, y) + s.v.At(x-1, y+1) + s.v.At(x, y+1)) * 0.25
}
