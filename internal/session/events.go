package session

import (
	"math"

	"torus-life/internal/core"
)

// CellSize is the edge length of one cell in pixels.
const CellSize = 10

// Button identifies a key or pointer button.
type Button int

const (
	ButtonOther Button = iota
	// PointerPrimary is the button that toggles cells in edit mode.
	PointerPrimary
	KeyEdit
	KeyPause
	KeyStep
	KeyReset
)

// Event is an input event delivered by a frontend.
type Event interface {
	event()
}

// PointerMove reports the absolute pointer position in pixels.
type PointerMove struct {
	X, Y float64
}

// Press reports a key or button going down.
type Press struct {
	Button Button
}

// Release reports a key or button going up.
type Release struct {
	Button Button
}

func (PointerMove) event() {}
func (Press) event()       {}
func (Release) event()     {}

// CellAt converts a pixel position to the grid cell underneath it. Positions
// outside the window fold back onto the grid.
func CellAt(px, py float64) (int, int) {
	x := int(math.Floor(px / CellSize))
	y := int(math.Floor(py / CellSize))
	return core.Wrap(x, y)
}
