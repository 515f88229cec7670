package life

import (
	"errors"
	"fmt"
	"sort"

	"torus-life/internal/core"
)

// DefaultPattern names the fixture the program starts with.
const DefaultPattern = "default"

// ErrUnknownPattern is returned by Lookup for unregistered names.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern writes a starting configuration onto a cleared grid.
type Pattern interface {
	Apply(g *core.Grid)
}

// Cells is a fixed list of alive coordinates.
type Cells []core.Point

// Apply marks every listed cell alive, wrapping out-of-range coordinates.
func (c Cells) Apply(g *core.Grid) {
	for _, p := range c {
		x, y := core.Wrap(p.X, p.Y)
		g.Set(x, y, true)
	}
}

// Shift returns the same cells translated by (dx, dy).
func (c Cells) Shift(dx, dy int) Cells {
	out := make(Cells, len(c))
	for i, p := range c {
		out[i] = core.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// Random fills the grid with a seeded 1-in-Sparsity density.
type Random struct {
	Seed     int64
	Sparsity int
}

// Apply fills g deterministically from the seed.
func (r Random) Apply(g *core.Grid) {
	core.NewRNG(r.Seed).FillGrid(g, r.Sparsity)
}

// Glider is the five-cell glider heading down and to the right.
var Glider = Cells{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}

// Factory constructs a pattern; seed is only used by randomised patterns.
type Factory func(seed int64) Pattern

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns lists the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named pattern built with seed.
func Lookup(name string, seed int64) (Pattern, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return f(seed), nil
}

func defaultCells() Cells {
	c := append(Cells{}, Glider.Shift(0, 2)...)
	c = append(c, Glider.Shift(0, 8)...)
	// Horizontal bar at flat indices 180..182.
	for i := 180; i <= 182; i++ {
		c = append(c, core.Point{X: i % core.Width, Y: i / core.Width})
	}
	return c
}

func fixed(c Cells) Factory {
	return func(int64) Pattern { return c }
}

func init() {
	Register(DefaultPattern, fixed(defaultCells()))
	Register("glider", fixed(Glider.Shift(1, 1)))
	Register("block", fixed(Cells{{X: 31, Y: 23}, {X: 32, Y: 23}, {X: 31, Y: 24}, {X: 32, Y: 24}}))
	Register("blinker", fixed(Cells{{X: 31, Y: 24}, {X: 32, Y: 24}, {X: 33, Y: 24}}))
	Register("empty", fixed(Cells{}))
	Register("random", func(seed int64) Pattern { return Random{Seed: seed, Sparsity: 4} })
}
