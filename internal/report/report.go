package report

import (
	"strings"

	"torus-life/internal/core"

	"github.com/guptarohit/asciigraph"
)

// Grid renders g as text, one row per line, '#' for alive and '.' for dead.
func Grid(g *core.Grid) string {
	var b strings.Builder
	b.Grow((core.Width + 1) * core.Height)
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			if g.Get(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PopulationChart plots the population of each generation.
func PopulationChart(history []float64) string {
	if len(history) == 0 {
		return ""
	}
	return asciigraph.Plot(history,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population per generation"),
	)
}
