package tui

import (
	"strings"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/session"
	"torus-life/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorAlive = lipgloss.NewStyle().Foreground(lipgloss.Color("217")).Reverse(true)
	cursorDead  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Reverse(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

const (
	aliveGlyph = "█"
	deadGlyph  = "·"
	help       = "arrows/hjkl move · e edit · space toggle · p pause · n step · r reset · q quit"
)

type tickMsg time.Time

type model struct {
	session  *session.Session
	interval time.Duration
	x, y     int
}

// New builds a Bubble Tea model driving s at rate generations per second.
func New(s *session.Session, rate int) tea.Model {
	cur := s.Cursor()
	return model{
		session:  s,
		interval: core.NewFixedStep(rate).Interval(),
		x:        cur.X,
		y:        cur.Y,
	}
}

// Run starts the terminal frontend and blocks until the user quits.
func Run(s *session.Session, rate int) error {
	_, err := tea.NewProgram(New(s, rate), tea.WithAltScreen()).Run()
	return err
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.session.Advance()
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case " ", "enter":
		// Terminals report no key release, so a keystroke is a full click.
		m.click(session.PointerPrimary)
	case "e":
		m.click(session.KeyEdit)
	case "p":
		m.click(session.KeyPause)
	case "n":
		m.click(session.KeyStep)
	case "r":
		m.click(session.KeyReset)
	}
	return m, nil
}

func (m *model) move(dx, dy int) {
	m.x, m.y = core.Wrap(m.x+dx, m.y+dy)
	m.session.HandleEvent(session.PointerMove{
		X: float64(m.x*session.CellSize + session.CellSize/2),
		Y: float64(m.y*session.CellSize + session.CellSize/2),
	})
}

func (m model) click(b session.Button) {
	m.session.HandleEvent(session.Press{Button: b})
	m.session.HandleEvent(session.Release{Button: b})
}

func (m model) View() string {
	g := m.session.Life().Grid()
	cur := m.session.Cursor()

	var b strings.Builder
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			alive := g.Get(x, y)
			glyph, style := deadGlyph, deadStyle
			if alive {
				glyph, style = aliveGlyph, aliveStyle
			}
			if cur.Editing && x == cur.X && y == cur.Y {
				style = cursorDead
				if alive {
					style = cursorAlive
				}
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render(ui.Status(m.session)))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
