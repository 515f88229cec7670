package render

import (
	"image/color"

	"torus-life/internal/core"
	"torus-life/internal/session"
)

// Screen dimensions in pixels.
const (
	CellSize     = session.CellSize
	ScreenWidth  = core.Width * CellSize
	ScreenHeight = core.Height * CellSize
)

// Palette holds the colours used to rasterise a frame.
type Palette struct {
	Background color.RGBA
	Line       color.RGBA
	Alive      color.RGBA
	// CursorAlive marks the edit target when the cell under it is alive.
	CursorAlive color.RGBA
	CursorDead  color.RGBA
}

// DefaultPalette is white paper, faint grey rules and red cells.
var DefaultPalette = Palette{
	Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Line:        color.RGBA{R: 242, G: 242, B: 242, A: 255},
	Alive:       color.RGBA{R: 255, G: 0, B: 0, A: 255},
	CursorAlive: color.RGBA{R: 255, G: 150, B: 150, A: 255},
	CursorDead:  color.RGBA{R: 90, G: 90, B: 255, A: 255},
}

// Highlight picks the cursor colour for a cell in the given state.
func (p Palette) Highlight(alive bool) color.RGBA {
	if alive {
		return p.CursorAlive
	}
	return p.CursorDead
}

// Frame is an RGBA pixel buffer covering the whole window.
type Frame struct {
	Palette Palette
	Pix     []byte
}

// NewFrame allocates a frame using the provided palette.
func NewFrame(p Palette) *Frame {
	return &Frame{Palette: p, Pix: make([]byte, 4*ScreenWidth*ScreenHeight)}
}

// At returns the colour of pixel (x, y).
func (f *Frame) At(x, y int) color.RGBA {
	base := 4 * (y*ScreenWidth + x)
	return color.RGBA{R: f.Pix[base], G: f.Pix[base+1], B: f.Pix[base+2], A: f.Pix[base+3]}
}

// Rasterize draws the reference lines, every alive cell and, in edit mode,
// the cursor square.
func (f *Frame) Rasterize(g *core.Grid, cur session.Cursor) {
	f.fillRect(0, 0, ScreenWidth, ScreenHeight, f.Palette.Background)
	for x := 0; x < core.Width; x++ {
		f.fillRect(x*CellSize, 0, 1, ScreenHeight, f.Palette.Line)
	}
	for y := 0; y < core.Height; y++ {
		f.fillRect(0, y*CellSize, ScreenWidth, 1, f.Palette.Line)
	}
	for _, p := range g.Alive() {
		f.fillCell(p.X, p.Y, f.Palette.Alive)
	}
	if cur.Editing {
		f.fillCell(cur.X, cur.Y, f.Palette.Highlight(g.Get(cur.X, cur.Y)))
	}
}

// fillCell paints the square of a cell, leaving a one pixel gutter on the
// right and bottom.
func (f *Frame) fillCell(x, y int, c color.RGBA) {
	f.fillRect(x*CellSize, y*CellSize, CellSize-1, CellSize-1, c)
}

func (f *Frame) fillRect(x0, y0, w, h int, c color.RGBA) {
	for y := y0; y < y0+h; y++ {
		row := 4 * y * ScreenWidth
		for x := x0; x < x0+w; x++ {
			base := row + 4*x
			f.Pix[base+0] = c.R
			f.Pix[base+1] = c.G
			f.Pix[base+2] = c.B
			f.Pix[base+3] = c.A
		}
	}
}
