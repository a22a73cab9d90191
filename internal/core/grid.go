package core

// Grid stores a dense 2D field of float64 samples in row-major order
// (index y*W + x). Staggered velocity fields simply allocate one extra
// column or row.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions. Non-positive
// dimensions are a configuration error and panic.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic("core: grid dimensions must be positive")
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// Data exposes the backing slice in row-major scan order.
func (g *Grid) Data() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

func (g *Grid) check(x, y int) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		panic("core: grid index out of range")
	}
}

// At returns the value stored at (x, y).
func (g *Grid) At(x, y int) float64 {
	g.check(x, y)
	return g.data[y*g.W+x]
}

// Set stores v at (x, y).
func (g *Grid) Set(x, y int, v float64) {
	g.check(x, y)
	g.data[y*g.W+x] = v
}

// Add adds delta to the value stored at (x, y).
func (g *Grid) Add(x, y int, delta float64) {
	g.check(x, y)
	g.data[y*g.W+x] += delta
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Zero fills the grid with zeros.
func (g *Grid) Zero() { g.Fill(0) }

// FillCircle sets every cell whose center lies within radius r of (cx, cy)
// to v. Cells outside the grid are ignored.
func (g *Grid) FillCircle(cx, cy int, r float64, v float64) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy <= r*r {
				g.data[y*g.W+x] = v
			}
		}
	}
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}
