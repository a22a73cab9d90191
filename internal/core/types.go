package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the app layer needs from a simulation.
// Richer capabilities (field views, obstacle editing, diagnostics) are
// discovered through optional interfaces on the concrete type.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
}
