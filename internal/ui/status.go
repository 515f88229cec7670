package ui

import (
	"fmt"

	"torus-life/internal/session"
)

// Status summarises the session in one line for the HUD.
func Status(s *session.Session) string {
	l := s.Life()
	cur := s.Cursor()
	mode := "RUN"
	switch {
	case cur.Editing:
		mode = fmt.Sprintf("EDIT (%d,%d)", cur.X, cur.Y)
	case s.Paused():
		mode = "PAUSED"
	}
	return fmt.Sprintf("gen %d  pop %d  %s", l.Generation(), l.Population(), mode)
}
