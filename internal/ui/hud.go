//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"soilsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var (
	panelBg    = color.RGBA{R: 16, G: 18, B: 16, A: 255}
	titleCol   = color.RGBA{R: 200, G: 210, B: 190, A: 255}
	labelCol   = color.RGBA{R: 220, G: 225, B: 215, A: 255}
	dimCol     = color.RGBA{R: 150, G: 155, B: 145, A: 255}
	readingCol = color.RGBA{R: 170, G: 210, B: 230, A: 255}
)

// HUD renders rate controls and live telemetry to the right of the field.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	height int
	pixel  *ebiten.Image

	snapshot core.ParameterSnapshot
	readings []core.Reading
	status   string

	controls     []controlState
	setter       core.FloatParameterSetter
	panelOffsetX int
}

type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for sim with the given panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, controlState{control: ctrl})
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// SetStatus replaces the free-form line printed under the title.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update refreshes the cached values and handles clicks on +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	if provider, ok := h.sim.(core.TelemetryProvider); ok {
		h.readings = provider.Telemetry()
	}
	for i := range h.controls {
		st := &h.controls[i]
		p, ok := h.snapshot.Lookup(st.control.Key)
		if !ok {
			st.hasValue = false
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		st.value, st.hasValue = v, err == nil
	}
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.sim.Name()+" controls", face, panelPadding, panelPadding+headerBaseline, titleCol)
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, panelPadding+headerBaseline+statusSpacing, dimCol)
	}

	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}

	y := controlsTop + len(h.controls)*lineHeight + readingGap
	for _, r := range h.readings {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, r.Label, face, panelPadding, y, dimCol)
		val := formatReading(r.Value)
		w := text.BoundString(face, val).Dx()
		text.Draw(h.panel, val, face, h.width-panelPadding-w, y, readingCol)
		y += readingHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(st *controlState) {
	face := basicfont.Face7x13
	y := st.top + labelBaseline
	text.Draw(h.panel, st.control.Label, face, panelPadding, y, labelCol)

	value, col := "--", dimCol
	if st.hasValue {
		value, col = formatControl(st.control, st.value), labelCol
	}
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, st.minusRect.Min.X-buttonGap-w, y, col)

	h.drawButton(st.minusRect, "-", h.canAdjust(st, -1))
	h.drawButton(st.plusRect, "+", h.canAdjust(st, 1))
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		st := &h.controls[i]
		switch {
		case px >= 0 && image.Pt(px, my).In(st.minusRect):
			h.adjust(st, -1)
			return
		case px >= 0 && image.Pt(px, my).In(st.plusRect):
			h.adjust(st, 1)
			return
		}
	}
}

func (h *HUD) target(st *controlState, direction int) float64 {
	step := st.control.Step
	if step <= 0 {
		step = 0.05
	}
	return math.Max(st.control.Min, math.Min(st.control.Max, st.value+float64(direction)*step))
}

func (h *HUD) canAdjust(st *controlState, direction int) bool {
	if h.setter == nil || !st.hasValue {
		return false
	}
	return math.Abs(h.target(st, direction)-st.value) > 1e-9
}

func (h *HUD) adjust(st *controlState, direction int) {
	if !h.canAdjust(st, direction) {
		return
	}
	v := h.target(st, direction)
	if h.setter.SetFloatParameter(st.control.Key, v) {
		st.value = v
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 52, G: 60, B: 50, A: 255}
	fg := color.RGBA{R: 230, G: 235, B: 225, A: 255}
	if !enabled {
		bg = color.RGBA{R: 30, G: 34, B: 30, A: 255}
		fg = color.RGBA{R: 110, G: 115, B: 105, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		by := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, by, h.width-panelPadding, by+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, by, plus.Min.X-buttonGap, by+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func formatControl(ctrl core.ParameterControl, v float64) string {
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func formatReading(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e9 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	statusSpacing  = 16
	labelBaseline  = 20
	readingGap     = 18
	readingHeight  = 16
	controlsTop    = panelPadding + headerBaseline + statusSpacing + 14
)
