//go:build !ebiten

package ui

import "canopy/internal/core"

// Viewport maps world tile coordinates onto screen pixels.
type Viewport struct {
	OffsetX       float64
	OffsetY       float64
	PixelsPerTile float64
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim) *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, Viewport, bool, bool, bool) {}
