package core

import "math"

// CenteredGrid maps continuous world coordinates onto an N×N cell lattice
// centred on the world origin. Cells are stored in row-major order.
type CenteredGrid struct {
	n        int
	cellSize float32
	lo, hi   int
}

// NewCenteredGrid builds a grid with n cells per axis, each cellSize world
// units wide. Callers validate n and cellSize; non-positive values are
// coerced so the grid never has zero cells.
func NewCenteredGrid(n int, cellSize float32) CenteredGrid {
	if n <= 0 {
		n = 1
	}
	if !(cellSize > 0) {
		cellSize = 1
	}
	lo := -(n / 2)
	return CenteredGrid{n: n, cellSize: cellSize, lo: lo, hi: lo + n}
}

// N returns the number of cells per axis.
func (g CenteredGrid) N() int { return g.n }

// Len returns the total number of cells.
func (g CenteredGrid) Len() int { return g.n * g.n }

// CellSize returns the world-space width of one cell.
func (g CenteredGrid) CellSize() float32 { return g.cellSize }

// HalfExtent returns half of the grid's world-space width.
func (g CenteredGrid) HalfExtent() float32 { return float32(g.n) * g.cellSize / 2 }

// Bounds returns the inclusive lower and exclusive upper cell coordinate.
func (g CenteredGrid) Bounds() (lo, hi int) { return g.lo, g.hi }

// ToCell floors world coordinates into cell coordinates. The result may lie
// outside the grid.
func (g CenteredGrid) ToCell(worldX, worldZ float32) (int, int) {
	cx := math.Floor(float64(worldX) / float64(g.cellSize))
	cz := math.Floor(float64(worldZ) / float64(g.cellSize))
	return clampToInt(cx), clampToInt(cz)
}

// Contains reports whether the cell lies inside the grid.
func (g CenteredGrid) Contains(cellX, cellZ int) bool {
	return cellX >= g.lo && cellX < g.hi && cellZ >= g.lo && cellZ < g.hi
}

// Index returns the linear storage index for a cell. ok is false when the
// cell is out of range; that is a normal outcome, not an error.
func (g CenteredGrid) Index(cellX, cellZ int) (idx int, ok bool) {
	if !g.Contains(cellX, cellZ) {
		return 0, false
	}
	return (cellZ-g.lo)*g.n + (cellX - g.lo), true
}

// IndexAt resolves a world position straight to a storage index.
func (g CenteredGrid) IndexAt(worldX, worldZ float32) (int, bool) {
	cx, cz := g.ToCell(worldX, worldZ)
	return g.Index(cx, cz)
}

// CellAt is the inverse of Index.
func (g CenteredGrid) CellAt(idx int) (int, int) {
	return idx%g.n + g.lo, idx/g.n + g.lo
}

// CellCenter returns the world position of the centre of a cell.
func (g CenteredGrid) CellCenter(cellX, cellZ int) (float32, float32) {
	return (float32(cellX) + 0.5) * g.cellSize, (float32(cellZ) + 0.5) * g.cellSize
}

// clampToInt keeps NaN and huge coordinates from producing undefined
// conversions; anything non-finite lands far outside every grid.
func clampToInt(v float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(v):
		return limit
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(v)
}
