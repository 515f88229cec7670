package session

import (
	"torus-life/internal/life"
)

// Cursor tracks the cell under the pointer and the interaction mode.
type Cursor struct {
	X, Y    int
	Down    bool
	Editing bool
}

// Session couples the automaton with the edit-mode interaction state. It is
// owned by a single frame loop and is not safe for concurrent use.
type Session struct {
	life    *life.Life
	pattern life.Pattern
	cursor  Cursor

	paused   bool
	tickOnce bool
}

// New seeds a fresh board with p.
func New(p life.Pattern) *Session {
	s := &Session{life: life.New(), pattern: p}
	s.life.Seed(p)
	return s
}

// Life exposes the automaton.
func (s *Session) Life() *life.Life { return s.life }

// Cursor returns a copy of the interaction state.
func (s *Session) Cursor() Cursor { return s.cursor }

// Paused reports whether automatic stepping is suspended outside edit mode.
func (s *Session) Paused() bool { return s.paused }

// SetEditing switches edit mode on or off.
func (s *Session) SetEditing(on bool) {
	s.cursor.Editing = on
	if !on {
		s.cursor.Down = false
	}
}

// Reset reseeds the board with the session's pattern.
func (s *Session) Reset() {
	s.life.Seed(s.pattern)
	s.tickOnce = false
}

// HandleEvent derives the next interaction state from a single input event.
func (s *Session) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case PointerMove:
		s.cursor.X, s.cursor.Y = CellAt(ev.X, ev.Y)
	case Press:
		s.press(ev.Button)
	case Release:
		if ev.Button == PointerPrimary {
			s.cursor.Down = false
		}
	}
}

func (s *Session) press(b Button) {
	switch b {
	case PointerPrimary:
		if s.cursor.Down {
			return
		}
		s.cursor.Down = true
		if s.cursor.Editing {
			s.life.Toggle(s.cursor.X, s.cursor.Y)
		}
	case KeyEdit:
		s.SetEditing(!s.cursor.Editing)
	case KeyPause:
		s.paused = !s.paused
	case KeyStep:
		s.tickOnce = true
	case KeyReset:
		s.Reset()
	}
}

// Advance runs one generation unless the grid is frozen by edit mode or
// paused. It reports whether a step happened.
func (s *Session) Advance() bool {
	if s.cursor.Editing {
		return false
	}
	if s.paused && !s.tickOnce {
		return false
	}
	s.tickOnce = false
	s.life.Step()
	return true
}
