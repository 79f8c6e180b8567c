//go:build ebiten

package app

import (
	"image/color"
	"time"

	"soilsim/internal/core"
	"soilsim/internal/render"
	"soilsim/internal/sims/soil"
	"soilsim/internal/ui"
	"soilsim/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pourAmount is the moisture a single click adds.
const pourAmount = 40

// Game adapts a World to the ebiten.Game interface. Frames run at the ebiten
// TPS; the soil advances at its own fixed rate through clock.
type Game struct {
	world   *world.World
	clock   *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pixel   *ebiten.Image

	base        []float32
	baseVersion uint64
	baseFresh   bool

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(w *world.World, scale, hudWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := w.Size()
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Game{
		world:    w,
		clock:    core.NewFixedStep(w.Soil.Config().TickRate),
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(w, size, scale),
		hud:      ui.NewHUD(w, hudWidth),
		pixel:    pixel,
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	g.baseFresh = false
}

// Update handles per-frame input and runs whatever soil ticks are due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handleMouse()
	g.overlay.Update()

	due := g.clock.Due(time.Now())
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.world.Step()
	}

	status := g.overlay.Selector().Label()
	if g.paused {
		status += " | paused"
	}
	g.hud.SetStatus(status)
	g.hud.Update(g.fieldWidth())
	return nil
}

// handleMouse waters on left click and plants on right click.
func (g *Game) handleMouse() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.world.Size()
	col, row := mx/g.scale, my/g.scale
	if mx < 0 || my < 0 || col >= size.W || row >= size.H {
		return
	}
	x, z := g.world.CellToWorld(col, row)
	if left {
		g.world.WaterAt(x, z, pourAmount)
	} else {
		g.world.PlantAt(x, z)
	}
}

// Draw renders moisture as the base layer, then the overlay, plants and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if v := g.world.Version(); !g.baseFresh || v != g.baseVersion {
		g.base = g.world.Soil.SnapshotField(soil.Moisture, g.base)
		g.painter.Upload(g.base, soil.Moisture.Max(), render.MoistureRamp)
		g.baseVersion = v
		g.baseFresh = true
	}
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.drawPlants(screen)

	size := g.world.Size()
	g.hud.Draw(screen, g.fieldWidth(), size.H*g.scale)
}

func (g *Game) drawPlants(screen *ebiten.Image) {
	grid := g.world.Soil.Grid()
	lo, _ := grid.Bounds()
	dot := float64(g.scale) * 0.6
	for _, p := range g.world.Garden.Plants() {
		cx, cz := grid.ToCell(p.X, p.Z)
		if !grid.Contains(cx, cz) {
			continue
		}
		sx := (float64(cx-lo) + 0.5) * float64(g.scale)
		sy := (float64(cz-lo) + 0.5) * float64(g.scale)
		col := color.RGBA{R: uint8(200 - 140*p.Vigor), G: uint8(120 + 120*p.Vigor), B: 40, A: 255}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(dot, dot)
		op.GeoM.Translate(sx-dot/2, sy-dot/2)
		op.ColorScale.ScaleWithColor(col)
		screen.DrawImage(g.pixel, op)
	}
}

func (g *Game) fieldWidth() int { return g.world.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
