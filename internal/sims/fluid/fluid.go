// Package fluid implements a real-time 2D incompressible flow solver on a
// staggered (MAC) grid: iterative pressure projection followed by
// semi-Lagrangian advection of velocity and a passive smoke tracer.
package fluid

import (
	"fmt"

	"eulerflow/internal/core"
)

// Sim owns the complete state of one wind-tunnel simulation. All fields are
// mutated in place by Step and by obstacle edits; nothing is shared between
// instances. Step is synchronous and not reentrant: obstacle edits and field
// reads must happen strictly between steps.
type Sim struct {
	cfg  Config
	par  Params
	w, h int

	u     *core.Grid // x-velocity on vertical cell faces, (w+1) x h
	v     *core.Grid // y-velocity on horizontal cell faces, w x (h+1)
	p     *core.Grid // pressure at cell centers, rebuilt every step
	smoke *core.Grid // passive tracer at cell centers
	cells []CellType // w*h classification mask, row-major
}

// New returns a fluid simulation with the provided dimensions using the
// default parameters.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a fluid simulation configured from the provided
// options. Non-positive dimensions are a fatal configuration error.
func NewWithConfig(cfg Config) *Sim {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		panic(fmt.Sprintf("fluid: grid dimensions must be positive, got %dx%d", cfg.Width, cfg.Height))
	}
	s := &Sim{cfg: cfg, par: cfg.Params, w: cfg.Width, h: cfg.Height}
	s.init()
	return s
}

// init builds all five fields from scratch: inflow pinned on the outer u
// columns, an all-fluid mask (plus the optional demo obstacle), and the
// smoke dye bands along the left edge.
func (s *Sim) init() {
	s.u = core.NewGrid(s.w+1, s.h)
	for y := 0; y < s.h; y++ {
		s.u.Set(0, y, s.par.WindSpeed)
		s.u.Set(s.w, y, s.par.WindSpeed)
	}

	s.v = core.NewGrid(s.w, s.h+1)
	s.p = core.NewGrid(s.w, s.h)
	s.smoke = core.NewGrid(s.w, s.h)
	s.cells = make([]CellType, s.w*s.h)

	if s.par.DemoObstacle {
		s.stampCells(s.w/3, s.h/2, float64(s.w)/7.0, Solid)
	}

	if s.par.NumBands > 0 {
		spacing := s.h / s.par.NumBands
		for b := 0; b < s.par.NumBands; b++ {
			center := spacing*b + spacing/2
			for i := 0; i < s.par.BandWidth; i++ {
				s.seedSmokeRow(center + i)
				s.seedSmokeRow(center - i)
			}
		}
	}
}

func (s *Sim) seedSmokeRow(y int) {
	if y < 0 || y >= s.h {
		return
	}
	s.smoke.Set(0, y, 1.0)
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "fluid" }

// Size returns the grid dimensions in cells.
func (s *Sim) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Step advances the simulation by one fixed timestep: optional gravity,
// pressure projection, velocity advection, then smoke advection. Each stage
// completes fully before the next begins.
func (s *Sim) Step() {
	if s.par.WithGravity {
		s.addGravity(s.par.Dt)
	}
	s.project(s.par.Dt)
	s.advectVelocity(s.par.Dt)
	s.advectSmoke(s.par.Dt)
}

func (s *Sim) addGravity(dt float64) {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if s.openV(x, y) {
				s.v.Add(x, y, s.par.Gravity*dt)
			}
		}
	}
}

// project runs a fixed number of Gauss-Seidel sweeps that push the net flux
// of every fluid cell toward zero, accumulating the applied correction into
// the pressure field. Updates land in place within a sweep, so the row-major
// visit order is part of the reproducible result.
func (s *Sim) project(dt float64) {
	s.p.Zero()
	for it := 0; it < s.par.ProjIterations; it++ {
		for y := 0; y < s.h; y++ {
			for x := 0; x < s.w; x++ {
				if s.cells[y*s.w+x] != Fluid {
					continue
				}
				d := s.par.Overrelaxation *
					(s.u.At(x+1, y) - s.u.At(x, y) + s.v.At(x, y+1) - s.v.At(x, y))

				w1 := s.classify(x-1, y).weight()
				w2 := s.classify(x+1, y).weight()
				w3 := s.classify(x, y-1).weight()
				w4 := s.classify(x, y+1).weight()
				ws := w1 + w2 + w3 + w4
				if ws == 0 {
					continue
				}

				s.u.Add(x, y, d*w1/ws)
				s.u.Add(x+1, y, -d*w2/ws)
				s.v.Add(x, y, d*w3/ws)
				s.v.Add(x, y+1, -d*w4/ws)

				s.p.Add(x, y, -d/ws*s.par.Density*s.par.CellSize/dt)
			}
		}
	}
}

// classify returns the cell type at (x, y). Coordinates one step outside the
// domain are implicitly Solid; anything further out is an invariant
// violation and panics.
func (s *Sim) classify(x, y int) CellType {
	if x >= 0 && y >= 0 && x < s.w && y < s.h {
		return s.cells[y*s.w+x]
	}
	if x == -1 || x == s.w || y == -1 || y == s.h {
		return Solid
	}
	panic(fmt.Sprintf("fluid: classify(%d,%d) outside [-1,%d]x[-1,%d]", x, y, s.w, s.h))
}

// openU reports whether the u-face at (x, y) is unobstructed: the cell and
// its left neighbor are both fluid.
func (s *Sim) openU(x, y int) bool {
	return s.classify(x, y) == Fluid && s.classify(x-1, y) == Fluid
}

// openV reports whether the v-face at (x, y) is unobstructed: the cell and
// its lower neighbor are both fluid.
func (s *Sim) openV(x, y int) bool {
	return s.classify(x, y) == Fluid && s.classify(x, y-1) == Fluid
}

// stampCells sets the classification over a disc without touching the other
// fields.
func (s *Sim) stampCells(cx, cy int, r float64, c CellType) {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy <= r*r {
				s.cells[y*s.w+x] = c
			}
		}
	}
}

// StampObstacle marks a disc of radius r around (cx, cy) as solid, clearing
// pressure and smoke inside it and zeroing both velocity fields over a disc
// of r+1 so the faces bounding the new solid region go to zero as well.
// Stamping is cumulative and safe to repeat every frame during a drag.
func (s *Sim) StampObstacle(cx, cy int, r float64) {
	s.stampCells(cx, cy, r, Solid)
	s.p.FillCircle(cx, cy, r, 0)
	s.smoke.FillCircle(cx, cy, r, 0)
	s.u.FillCircle(cx, cy, r+1, 0)
	s.v.FillCircle(cx, cy, r+1, 0)
}

// Reset discards all state, including runtime-drawn obstacles, and
// reinitializes as if newly constructed.
func (s *Sim) Reset() {
	s.init()
}

// ResetExceptWalls reinitializes velocity, pressure and smoke while
// preserving the current classification field.
func (s *Sim) ResetExceptWalls() {
	walls := append([]CellType(nil), s.cells...)
	s.init()
	s.cells = walls
}
