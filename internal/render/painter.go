//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a scalar field into a single RGBA image and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Upload recolours the image from values. Callers skip it when the field
// has not changed since the last upload.
func (gp *GridPainter) Upload(values []float32, max float32, ramp Ramp) {
	if len(values) != gp.w*gp.h {
		return
	}
	FillScalarRGBA(gp.buf, values, max, ramp)
	gp.img.WritePixels(gp.buf)
}

// Draw paints the last uploaded image.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawWith paints the last uploaded image with caller-supplied options.
func (gp *GridPainter) DrawWith(dst *ebiten.Image, op *ebiten.DrawImageOptions) {
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
