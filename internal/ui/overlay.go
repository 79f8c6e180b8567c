//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"soilsim/internal/core"
	"soilsim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type versioned interface {
	Version() uint64
}

type footprintProvider interface {
	Footprints() []image.Rectangle
}

// Overlay draws a translucent field layer on top of the base view. Key 1
// toggles it and Tab cycles the layer.
type Overlay struct {
	sim   core.FieldLayer
	size  core.Size
	scale int
	sel   *LayerSelector

	painter     *render.GridPainter
	values      []float32
	uploaded    string
	lastVersion uint64
	fresh       bool
	alpha       float32

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the layers exposed by sim.
func NewOverlay(sim core.FieldLayer, size core.Size, scale int) *Overlay {
	return &Overlay{
		sim:     sim,
		size:    size,
		scale:   scale,
		sel:     NewLayerSelector(sim.LayerNames()),
		painter: render.NewGridPainter(size.W, size.H),
		alpha:   0.7,
		pixel:   newPixel(),
	}
}

func newPixel() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

// Selector exposes the view state so the HUD can print it.
func (o *Overlay) Selector() *LayerSelector { return o.sel }

// Update handles the overlay hotkeys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.sel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.sel.Next()
	}
}

// Draw renders the selected layer when the overlay is visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.sel.Visible() || o.size.W <= 0 || o.size.H <= 0 {
		return
	}
	name := o.sel.Current()
	if o.dirty(name) {
		var ceiling float32
		o.values, ceiling = o.sim.SnapshotLayer(name, o.values)
		o.painter.Upload(o.values, ceiling, render.RampFor(name))
		o.uploaded = name
		o.fresh = true
	}

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.ColorScale.ScaleAlpha(o.alpha)
	o.painter.DrawWith(screen, op)

	if provider, ok := o.sim.(footprintProvider); ok {
		for _, r := range provider.Footprints() {
			o.drawRect(screen, r, scale, color.RGBA{R: 40, G: 40, B: 48, A: 220})
		}
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, r image.Rectangle, scale int, col color.RGBA) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()*scale), float64(r.Dy()*scale))
	op.GeoM.Translate(float64(r.Min.X*scale), float64(r.Min.Y*scale))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) dirty(name string) bool {
	v, ok := o.sim.(versioned)
	var version uint64
	if ok {
		version = v.Version()
	}
	if ok && o.fresh && name == o.uploaded && version == o.lastVersion {
		return false
	}
	o.lastVersion = version
	return true
}
