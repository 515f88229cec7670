package core

// Grid dimensions are fixed at compile time.
const (
	Width     = 64
	Height    = 48
	CellCount = Width * Height
)

// Point addresses a single cell.
type Point struct {
	X, Y int
}

// Grid stores the alive state of every cell in row-major order.
type Grid struct {
	data [CellCount]bool
}

// Cells exposes the backing array so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data[:] }

// Index returns the linear index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*Width + x }

// Get reports whether the cell at (x, y) is alive. Coordinates must be in range.
func (g *Grid) Get(x, y int) bool { return g.data[y*Width+x] }

// Set stores the alive state of the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) { g.data[y*Width+x] = alive }

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) bool {
	i := y*Width + x
	g.data[i] = !g.data[i]
	return g.data[i]
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	return Wrap(x, y)
}

// Wrap folds any coordinate pair onto the torus.
func Wrap(x, y int) (int, int) {
	x = (x%Width + Width) % Width
	y = (y%Height + Height) % Height
	return x, y
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.data = [CellCount]bool{}
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Alive lists the coordinates of alive cells in row-major order.
func (g *Grid) Alive() []Point {
	var pts []Point
	for i, alive := range g.data {
		if alive {
			pts = append(pts, Point{X: i % Width, Y: i / Width})
		}
	}
	return pts
}
