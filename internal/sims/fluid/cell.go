package fluid

// Epsilon is the magnitude of the solid cell sentinel weight. Its nonzero
// value keeps the projection's neighbor-weight sum distinguishable from an
// exact zero while still excluding solid faces from the correction.
const Epsilon = 1e-11

// CellType classifies a grid cell as open fluid or solid obstacle. The
// domain boundary one cell outside the grid is implicitly solid.
type CellType uint8

const (
	Fluid CellType = iota
	Solid
)

const (
	fluidWeight = 1.0
	solidWeight = -Epsilon
)

// weight converts the cell type to the numeric value used by the
// projection arithmetic and exported classification views.
func (c CellType) weight() float64 {
	if c == Fluid {
		return fluidWeight
	}
	return solidWeight
}
