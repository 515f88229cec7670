package life

import "torus-life/internal/core"

// Neighbours lists the eight offsets around a cell.
var Neighbours = [8]core.Point{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: 0, Y: 1},
	{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

// CountNeighbours counts the alive toroidal neighbours of (x, y).
func CountNeighbours(g *core.Grid, x, y int) int {
	n := 0
	for _, d := range Neighbours {
		// Bias by the dimension so the operand never goes negative.
		nx := (x + core.Width + d.X) % core.Width
		ny := (y + core.Height + d.Y) % core.Height
		if g.Get(nx, ny) {
			n++
		}
	}
	return n
}

// Next applies the B3/S23 rule to a single cell.
func Next(alive bool, neighbours int) bool {
	if alive {
		return neighbours == 2 || neighbours == 3
	}
	return neighbours == 3
}

// Life implements Conway's Game of Life on the fixed toroidal grid.
type Life struct {
	cur        core.Grid
	scratch    core.Grid
	generation int
}

// New returns an empty Life board.
func New() *Life { return &Life{} }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return &l.cur }

// Generation returns the number of steps taken since the last seed.
func (l *Life) Generation() int { return l.generation }

// Population counts the alive cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Get reports whether (x, y) is alive.
func (l *Life) Get(x, y int) bool { return l.cur.Get(x, y) }

// Set stores the state of (x, y).
func (l *Life) Set(x, y int, alive bool) { l.cur.Set(x, y, alive) }

// Toggle flips (x, y) and returns the new state.
func (l *Life) Toggle(x, y int) bool { return l.cur.Toggle(x, y) }

// Seed clears the board, applies p and resets the generation counter.
func (l *Life) Seed(p Pattern) {
	l.cur.Clear()
	p.Apply(&l.cur)
	l.generation = 0
}

// Step advances the simulation by one generation. Every neighbour count is
// taken from the scratch snapshot, never from cells already rewritten.
func (l *Life) Step() {
	l.scratch = l.cur
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			n := CountNeighbours(&l.scratch, x, y)
			l.cur.Set(x, y, Next(l.scratch.Get(x, y), n))
		}
	}
	l.generation++
}
