//go:build ebiten

package render

import (
	"torus-life/internal/core"
	"torus-life/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads rasterised frames into a single screen-sized image.
type Painter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewPainter allocates a painter drawing with the provided palette.
func NewPainter(p Palette) *Painter {
	return &Painter{
		frame: NewFrame(p),
		img:   ebiten.NewImage(ScreenWidth, ScreenHeight),
	}
}

// Draw rasterises the grid and cursor and blits the result onto dst.
func (p *Painter) Draw(dst *ebiten.Image, g *core.Grid, cur session.Cursor) {
	p.frame.Rasterize(g, cur)
	p.img.WritePixels(p.frame.Pix)
	dst.DrawImage(p.img, nil)
}
