//go:build !ebiten

package ui

import "soilsim/internal/core"

// Overlay keeps only the layer selection when the ebiten build tag is absent.
type Overlay struct {
	sel *LayerSelector
}

// NewOverlay constructs a stub overlay.
func NewOverlay(sim core.FieldLayer, _ core.Size, _ int) *Overlay {
	return &Overlay{sel: NewLayerSelector(sim.LayerNames())}
}

// Selector exposes the view state.
func (o *Overlay) Selector() *LayerSelector { return o.sel }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
