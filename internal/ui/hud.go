//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status line along the bottom edge of the window.
type HUD struct {
	panel *ebiten.Image
}

// NewHUD constructs a HUD for a window of the given width.
func NewHUD(width int) *HUD {
	if width <= 0 {
		return &HUD{}
	}
	return &HUD{panel: ebiten.NewImage(width, panelHeight)}
}

// Draw paints the status of s over the bottom of screen.
func (h *HUD) Draw(screen *ebiten.Image, s *session.Session) {
	if h == nil || h.panel == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 160})
	face := basicfont.Face7x13
	text.Draw(h.panel, Status(s), face, panelPadding, panelHeight-panelPadding, color.RGBA{R: 230, G: 230, B: 240, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(screen.Bounds().Dy()-panelHeight))
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding = 4
	panelHeight  = 13 + 2*panelPadding
)
