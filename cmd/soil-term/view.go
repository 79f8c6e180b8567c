package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"soilsim/internal/render"
	"soilsim/internal/sims/soil"
	"soilsim/internal/ui"
	"soilsim/internal/world"
)

type action int

const (
	actNone action = iota
	actQuit
	actPause
	actStep
	actReset
	actToggleOverlay
	actNextLayer
	actWater
	actPlant
	actCursorLeft
	actCursorRight
	actCursorUp
	actCursorDown
)

// pourAmount is the moisture one key press adds under the cursor.
const pourAmount = 40

func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyTab:
		return actNextLayer
	case tcell.KeyLeft:
		return actCursorLeft
	case tcell.KeyRight:
		return actCursorRight
	case tcell.KeyUp:
		return actCursorUp
	case tcell.KeyDown:
		return actCursorDown
	case tcell.KeyRune:
	default:
		return actNone
	}
	switch r {
	case 'q':
		return actQuit
	case ' ':
		return actPause
	case 'n':
		return actStep
	case 'r':
		return actReset
	case 'o', '1':
		return actToggleOverlay
	case 'w':
		return actWater
	case 'p':
		return actPlant
	case 'h':
		return actCursorLeft
	case 'l':
		return actCursorRight
	case 'k':
		return actCursorUp
	case 'j':
		return actCursorDown
	}
	return actNone
}

// view owns the world on the UI goroutine; all calls into it happen here.
type view struct {
	screen tcell.Screen
	world  *world.World
	sel    *ui.LayerSelector
	buf    []float32
	seed   int64

	paused   bool
	cursorX  int
	cursorZ  int
	lastTick int
}

func newView(screen tcell.Screen, w *world.World, seed int64) *view {
	n := w.Size().W
	return &view{
		screen:  screen,
		world:   w,
		sel:     ui.NewLayerSelector(w.LayerNames()),
		seed:    seed,
		cursorX: n / 2,
		cursorZ: n / 2,
	}
}

// apply runs one action and reports whether the viewer should exit.
func (v *view) apply(a action) bool {
	n := v.world.Size().W
	switch a {
	case actQuit:
		return true
	case actPause:
		v.paused = !v.paused
	case actStep:
		v.world.Step()
	case actReset:
		v.world.Reset(v.seed)
	case actToggleOverlay:
		v.sel.Toggle()
	case actNextLayer:
		v.sel.Next()
	case actWater:
		x, z := v.world.CellToWorld(v.cursorX, v.cursorZ)
		v.world.WaterAt(x, z, pourAmount)
	case actPlant:
		x, z := v.world.CellToWorld(v.cursorX, v.cursorZ)
		v.world.PlantAt(x, z)
	case actCursorLeft:
		v.cursorX = max(v.cursorX-1, 0)
	case actCursorRight:
		v.cursorX = min(v.cursorX+1, n-1)
	case actCursorUp:
		v.cursorZ = max(v.cursorZ-1, 0)
	case actCursorDown:
		v.cursorZ = min(v.cursorZ+1, n-1)
	}
	return false
}

// tick advances the world unless paused.
func (v *view) tick() {
	if v.paused {
		return
	}
	v.world.Step()
}

// layer returns the field currently shown: moisture unless the overlay
// selects another layer.
func (v *view) layer() string {
	if v.sel.Visible() {
		return v.sel.Current()
	}
	return soil.Moisture.String()
}

// draw paints two grid rows per terminal row using upper half blocks.
func (v *view) draw() {
	v.screen.Clear()
	name := v.layer()
	var ceiling float32
	v.buf, ceiling = v.world.SnapshotLayer(name, v.buf)
	ramp := render.RampFor(name)
	n := v.world.Size().W
	width, height := v.screen.Size()

	inv := float64(0)
	if ceiling > 0 {
		inv = 1 / float64(ceiling)
	}
	sample := func(col, row int) color.RGBA {
		if row >= n {
			return color.RGBA{A: 255}
		}
		return ramp.At(float64(v.buf[row*n+col]) * inv)
	}

	for ty := 0; ty*2 < n && ty < height-1; ty++ {
		for x := 0; x < n && x < width; x++ {
			top := sample(x, ty*2)
			bottom := sample(x, ty*2+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			ch := '▀'
			if x == v.cursorX && ty == v.cursorZ/2 {
				ch = '+'
				style = style.Foreground(tcell.ColorWhite)
			}
			v.screen.SetContent(x, ty, ch, nil, style)
		}
	}
	v.drawStatus(width, height)
	v.screen.Show()
}

func (v *view) drawStatus(width, height int) {
	m := v.world.Soil.Stats(soil.Moisture)
	nit := v.world.Soil.Stats(soil.Nitrogen)
	line := fmt.Sprintf("tick %d  %s  moisture %.1f  nitrogen %.1f  rain %.2f  plants %d  [%s]",
		v.world.Soil.Ticks(), v.layer(), m.Mean, nit.Mean, v.world.Soil.LastRainIntensity(),
		len(v.world.Garden.Plants()), v.sel.Label())
	if v.paused {
		line += "  paused"
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		v.screen.SetContent(x, height-1, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
