package fluid

// advectVelocity transports both velocity components semi-Lagrangian style:
// every open face is traced one timestep backwards along the flow and
// resampled from the previous field. Writes go to fresh buffers so no face
// observes another face's new value mid-pass; the pinned inflow/outflow
// columns and faces touching solid cells carry their old value forward.
func (s *Sim) advectVelocity(dt float64) {
	newU := s.u.Clone()
	newV := s.v.Clone()

	hs := s.par.CellSize
	for j := 0; j <= s.h; j++ {
		for i := 0; i <= s.w; i++ {
			if i >= 1 && i < s.w && s.openU(i, j) {
				x := float64(i) * hs
				y := float64(j)*hs + 0.5*hs
				u := newU.At(i, j)
				v := s.avgV(i, j)

				x -= dt * u
				y -= dt * v

				newU.Set(i, j, s.sampleU(x, y))
			}

			if j >= 1 && j < s.h && s.openV(i, j) {
				x := float64(i)*hs + 0.5*hs
				y := float64(j) * hs
				v := newV.At(i, j)
				u := s.avgU(i, j)

				x -= dt * u
				y -= dt * v

				newV.Set(i, j, s.sampleV(x, y))
			}
		}
	}

	s.u = newU
	s.v = newV
}

// advectSmoke transports the tracer for every interior fluid cell by
// back-tracing the cell center along the cell-averaged velocity. The border
// ring and solid cells keep their previous value.
func (s *Sim) advectSmoke(dt float64) {
	newSmoke := s.smoke.Clone()

	hs := s.par.CellSize
	for j := 1; j < s.h; j++ {
		for i := 1; i < s.w; i++ {
			if s.cells[j*s.w+i] != Fluid {
				continue
			}

			u := 0.5 * (s.u.At(i, j) + s.u.At(i+1, j))
			v := 0.5 * (s.v.At(i, j) + s.v.At(i, j+1))

			x := float64(i)*hs + 0.5*hs - dt*u
			y := float64(j)*hs + 0.5*hs - dt*v

			newSmoke.Set(i, j, s.sampleSmoke(x, y))
		}
	}

	s.smoke = newSmoke
}
