package render

import (
	"image/color"
	"testing"

	"torus-life/internal/core"
	"torus-life/internal/session"
)

func TestRasterizeCellsAndLines(t *testing.T) {
	var g core.Grid
	g.Set(2, 3, true)
	g.Set(core.Width-1, core.Height-1, true)

	f := NewFrame(DefaultPalette)
	f.Rasterize(&g, session.Cursor{})
	p := f.Palette

	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"line at cell origin", 0, 0, p.Line},
		{"vertical line", 20, 5, p.Line},
		{"horizontal line", 5, 30, p.Line},
		{"empty cell interior", 5, 5, p.Background},
		{"alive cell interior", 25, 35, p.Alive},
		{"alive cell far corner", 28, 38, p.Alive},
		{"gutter after alive cell", 30, 35, p.Line},
		{"last cell", ScreenWidth - 2, ScreenHeight - 2, p.Alive},
	}
	for _, c := range checks {
		if got := f.At(c.x, c.y); got != c.want {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestRasterizeCursor(t *testing.T) {
	var g core.Grid
	g.Set(4, 4, true)
	f := NewFrame(DefaultPalette)

	f.Rasterize(&g, session.Cursor{X: 4, Y: 4})
	if got := f.At(45, 45); got != f.Palette.Alive {
		t.Fatalf("cursor drawn outside edit mode: %v", got)
	}

	f.Rasterize(&g, session.Cursor{X: 4, Y: 4, Editing: true})
	if got := f.At(45, 45); got != f.Palette.CursorAlive {
		t.Fatalf("alive cursor cell = %v, want %v", got, f.Palette.CursorAlive)
	}

	f.Rasterize(&g, session.Cursor{X: 7, Y: 1, Editing: true})
	if got := f.At(75, 15); got != f.Palette.CursorDead {
		t.Fatalf("dead cursor cell = %v, want %v", got, f.Palette.CursorDead)
	}
	if got := f.At(45, 45); got != f.Palette.Alive {
		t.Fatalf("moving the cursor repainted the old cell: %v", got)
	}
}
