//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"canopy/internal/core"
	"canopy/internal/render"
	"canopy/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type viewProvider interface {
	View() (x, y, zoom float64)
}

type lightProvider interface {
	LightGrid() []float64
}

type reportProvider interface {
	BuildReport() string
}

// Game adapts a core simulation to the ebiten.Game interface: it polls the
// keyboard into an input snapshot, steps the simulation once per ebiten
// tick, and renders the world through the simulation's camera.
type Game struct {
	sim     core.Sim
	painter *render.TilePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	viewW int
	viewH int
	hudW  int
	dt    float64
	seed  int64

	paused    bool
	showGrid  bool
	showDual  bool
	showTrees bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		sim:       sim,
		painter:   render.NewTilePainter(size.W, size.H, render.TilePalette()),
		overlay:   ui.NewOverlay(sim),
		hud:       ui.NewHUD(sim, cfg.HUDWidth),
		viewW:     cfg.View,
		viewH:     cfg.View,
		hudW:      cfg.HUDWidth,
		dt:        1.0 / float64(tps),
		seed:      cfg.Seed,
		showTrees: true,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showDual = !g.showDual
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTrees = !g.showTrees
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if provider, ok := g.sim.(reportProvider); ok {
			if err := clipboard.WriteAll(provider.BuildReport()); err != nil {
				log.Printf("app: clipboard write failed: %v", err)
			}
		}
	}

	in := core.Input{
		DT:        g.dt,
		Up:        ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:      ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ZoomIn:    ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight),
		ZoomOut:   ebiten.IsKeyPressed(ebiten.KeySpace),
		Pause:     g.paused,
		ShowGrid:  g.showGrid,
		ShowDual:  g.showDual,
		ShowTrees: g.showTrees,
	}
	g.sim.Update(in)

	if g.hud != nil {
		g.hud.Update(g.viewW)
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 12, B: 10, A: 255})

	var light []float64
	if provider, ok := g.sim.(lightProvider); ok {
		light = provider.LightGrid()
	}
	g.painter.Fill(g.sim.Cells(), light)

	vp := g.viewport()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vp.PixelsPerTile, vp.PixelsPerTile)
	op.GeoM.Translate(vp.OffsetX, vp.OffsetY)
	screen.DrawImage(g.painter.Image(), op)

	if g.overlay != nil {
		g.overlay.Draw(screen, vp, g.showGrid, g.showDual, g.showTrees)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.viewW, g.viewH)
	}
}

// viewport derives the screen transform from the simulation camera. Sims
// without a camera are shown fully zoomed out.
func (g *Game) viewport() ui.Viewport {
	size := g.sim.Size()
	x := float64(size.W) / 2
	y := float64(size.H) / 2
	zoom := float64(size.H)
	if provider, ok := g.sim.(viewProvider); ok {
		x, y, zoom = provider.View()
	}
	if zoom <= 0 {
		zoom = float64(size.H)
	}
	ppt := float64(g.viewH) / zoom
	return ui.Viewport{
		OffsetX:       float64(g.viewW)/2 - x*ppt,
		OffsetY:       float64(g.viewH)/2 - y*ppt,
		PixelsPerTile: ppt,
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.hudW, g.viewH
}
