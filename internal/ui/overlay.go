//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"canopy/internal/core"
	"canopy/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type treeMarksProvider interface {
	TreeMarks() []core.TreeMark
}

type lightProvider interface {
	LightGrid() []float64
}

// Viewport maps world tile coordinates onto screen pixels.
type Viewport struct {
	OffsetX       float64
	OffsetY       float64
	PixelsPerTile float64
}

// ToScreen converts a world position in tile units to screen pixels.
func (v Viewport) ToScreen(x, y float64) (float32, float32) {
	return float32(v.OffsetX + x*v.PixelsPerTile), float32(v.OffsetY + y*v.PixelsPerTile)
}

// Overlay draws the optional debug layers above the ground view: tile grid
// lines, the light field, and per-tree markers.
type Overlay struct {
	sim core.Sim

	gridW int
	gridH int

	lightImg *ebiten.Image
	lightBuf []byte
}

// NewOverlay constructs an overlay bound to one simulation.
func NewOverlay(sim core.Sim) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, gridW: size.W, gridH: size.H}
}

// Draw renders the enabled layers using the given viewport.
func (o *Overlay) Draw(screen *ebiten.Image, vp Viewport, showGrid, showDual, showTrees bool) {
	if o == nil || vp.PixelsPerTile <= 0 {
		return
	}
	if showDual {
		if provider, ok := o.sim.(lightProvider); ok {
			o.drawLight(screen, vp, provider.LightGrid())
		}
	}
	if showGrid {
		o.drawGrid(screen, vp)
	}
	if showTrees {
		if provider, ok := o.sim.(treeMarksProvider); ok {
			o.drawTrees(screen, vp, provider.TreeMarks())
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, vp Viewport) {
	col := color.RGBA{R: 0, G: 0, B: 0, A: 70}
	width := float32(1)

	x0, y0 := vp.ToScreen(0, 0)
	x1, y1 := vp.ToScreen(float64(o.gridW), float64(o.gridH))
	for i := 0; i <= o.gridW; i++ {
		x, _ := vp.ToScreen(float64(i), 0)
		vector.StrokeLine(screen, x, y0, x, y1, width, col, false)
	}
	for j := 0; j <= o.gridH; j++ {
		_, y := vp.ToScreen(0, float64(j))
		vector.StrokeLine(screen, x0, y, x1, y, width, col, false)
	}
}

func (o *Overlay) drawLight(screen *ebiten.Image, vp Viewport, light []float64) {
	total := o.gridW * o.gridH
	if len(light) != total || total == 0 {
		return
	}
	if o.lightImg == nil {
		o.lightImg = ebiten.NewImage(o.gridW, o.gridH)
		o.lightBuf = make([]byte, 4*total)
	}

	// Darker tint where less light reaches the ground.
	for i := 0; i < total; i++ {
		shade := 1 - light[i]
		if shade < 0 {
			shade = 0
		}
		if shade > 1 {
			shade = 1
		}
		alpha := uint8(math.Round(170 * shade))
		base := i * 4
		o.lightBuf[base+0] = 20
		o.lightBuf[base+1] = 16
		o.lightBuf[base+2] = 48
		o.lightBuf[base+3] = alpha
	}
	o.lightImg.ReplacePixels(o.lightBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vp.PixelsPerTile, vp.PixelsPerTile)
	op.GeoM.Translate(vp.OffsetX, vp.OffsetY)
	screen.DrawImage(o.lightImg, op)
}

func (o *Overlay) drawTrees(screen *ebiten.Image, vp Viewport, marks []core.TreeMark) {
	for _, m := range marks {
		x, y := vp.ToScreen(m.X, m.Y)
		radius := float32(markRadius(m.Stage) * vp.PixelsPerTile)
		if radius < 1 {
			radius = 1
		}
		vector.DrawFilledCircle(screen, x, y, radius, render.SpeciesColor(m.Species, m.Alive), true)
	}
}

// markRadius maps a growth stage to a marker size in tile units.
func markRadius(stage uint8) float64 {
	radii := [...]float64{0.06, 0.09, 0.14, 0.22, 0.22, 0.18, 0.12, 0.08}
	if int(stage) >= len(radii) {
		return radii[len(radii)-1]
	}
	return radii[stage]
}
