package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the viewers drive. Step advances exactly
// one fixed tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}

// FieldLayer is a named scalar layer a viewer can visualise. Snapshot copies
// the layer into dst in row-major order and returns the filled slice.
type FieldLayer interface {
	LayerNames() []string
	SnapshotLayer(name string, dst []float32) ([]float32, float32)
}
