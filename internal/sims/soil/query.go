package soil

import (
	"fmt"
	"math"
)

// FieldKind selects one of the tracked scalar fields.
type FieldKind uint8

const (
	Moisture FieldKind = iota
	Nitrogen
)

func (k FieldKind) String() string {
	switch k {
	case Moisture:
		return "moisture"
	case Nitrogen:
		return "nitrogen"
	default:
		return fmt.Sprintf("FieldKind(%d)", uint8(k))
	}
}

// Max returns the saturation ceiling of the field.
func (k FieldKind) Max() float32 {
	if k == Nitrogen {
		return MaxNitrogen
	}
	return MaxMoisture
}

// ParseFieldKind maps a layer name back to its kind.
func ParseFieldKind(name string) (FieldKind, bool) {
	switch name {
	case "moisture":
		return Moisture, true
	case "nitrogen":
		return Nitrogen, true
	}
	return 0, false
}

func (s *Sim) fieldFor(kind FieldKind) *field {
	switch kind {
	case Moisture:
		return &s.moisture
	case Nitrogen:
		return &s.nitrogen
	}
	return nil
}

// MoistureAt returns the moisture under a world position, or 0 outside the grid.
func (s *Sim) MoistureAt(worldX, worldZ float32) float32 {
	return s.valueAt(&s.moisture, worldX, worldZ)
}

// NitrogenAt returns the nitrogen under a world position, or 0 outside the grid.
func (s *Sim) NitrogenAt(worldX, worldZ float32) float32 {
	return s.valueAt(&s.nitrogen, worldX, worldZ)
}

// MoistureAtCell returns the moisture of a cell, or 0 outside the grid.
func (s *Sim) MoistureAtCell(cellX, cellZ int) float32 {
	return s.valueAtCell(&s.moisture, cellX, cellZ)
}

// NitrogenAtCell returns the nitrogen of a cell, or 0 outside the grid.
func (s *Sim) NitrogenAtCell(cellX, cellZ int) float32 {
	return s.valueAtCell(&s.nitrogen, cellX, cellZ)
}

func (s *Sim) valueAt(f *field, worldX, worldZ float32) float32 {
	idx, ok := s.grid.IndexAt(worldX, worldZ)
	if !ok {
		return 0
	}
	return f.get(idx)
}

func (s *Sim) valueAtCell(f *field, cellX, cellZ int) float32 {
	idx, ok := s.grid.Index(cellX, cellZ)
	if !ok {
		return 0
	}
	return f.get(idx)
}

// TotalMoisture sums moisture over the whole grid.
func (s *Sim) TotalMoisture() float32 { return float32(s.moisture.sum()) }

// TotalNitrogen sums nitrogen over the whole grid.
func (s *Sim) TotalNitrogen() float32 { return float32(s.nitrogen.sum()) }

// FieldStats summarises one field.
type FieldStats struct {
	Min   float32
	Max   float32
	Mean  float32
	Total float32
}

// Stats computes min, max, mean and total of a field in one pass.
func (s *Sim) Stats(kind FieldKind) FieldStats {
	f := s.fieldFor(kind)
	if f == nil || len(f.curr) == 0 {
		return FieldStats{}
	}
	lo := float32(math.MaxFloat32)
	var hi float32
	var total float64
	for _, v := range f.curr {
		lo = min(lo, v)
		hi = max(hi, v)
		total += float64(v)
	}
	return FieldStats{
		Min:   lo,
		Max:   hi,
		Mean:  float32(total / float64(len(f.curr))),
		Total: float32(total),
	}
}

// SnapshotField copies the settled field into dst in row-major grid order
// and returns it. dst is reused when it has enough capacity; the sim's own
// buffers are never handed out.
func (s *Sim) SnapshotField(kind FieldKind, dst []float32) []float32 {
	f := s.fieldFor(kind)
	if f == nil {
		return dst[:0]
	}
	if cap(dst) < len(f.curr) {
		dst = make([]float32, len(f.curr))
	}
	dst = dst[:len(f.curr)]
	copy(dst, f.curr)
	return dst
}

// LayerNames lists the fields a viewer can display.
func (s *Sim) LayerNames() []string {
	return []string{Moisture.String(), Nitrogen.String()}
}

// SnapshotLayer implements core.FieldLayer.
func (s *Sim) SnapshotLayer(name string, dst []float32) ([]float32, float32) {
	kind, ok := ParseFieldKind(name)
	if !ok {
		return dst[:0], 0
	}
	return s.SnapshotField(kind, dst), kind.Max()
}
