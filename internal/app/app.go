//go:build ebiten

package app

import (
	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/session"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyButtons = map[ebiten.Key]session.Button{
	ebiten.KeyE:     session.KeyEdit,
	ebiten.KeySpace: session.KeyPause,
	ebiten.KeyN:     session.KeyStep,
	ebiten.KeyR:     session.KeyReset,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	painter *render.Painter
	hud     *ui.HUD
	pacer   *core.FixedStep

	lastX, lastY int
}

// New constructs a Game for the provided session advancing rate generations
// per second.
func New(s *session.Session, rate int) *Game {
	return &Game{
		session: s,
		painter: render.NewPainter(render.DefaultPalette),
		hud:     ui.NewHUD(render.ScreenWidth),
		pacer:   core.NewFixedStep(rate),
		lastX:   -1,
		lastY:   -1,
	}
}

// Update translates this frame's input into session events and advances the
// automaton when the pacer allows it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, ev := range g.events() {
		g.session.HandleEvent(ev)
	}
	if g.pacer.ShouldStep() {
		g.session.Advance()
	}
	return nil
}

func (g *Game) events() []session.Event {
	var evs []session.Event
	if x, y := ebiten.CursorPosition(); x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		evs = append(evs, session.PointerMove{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		evs = append(evs, session.Press{Button: session.PointerPrimary})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		evs = append(evs, session.Release{Button: session.PointerPrimary})
	}
	for key, b := range keyButtons {
		if inpututil.IsKeyJustPressed(key) {
			evs = append(evs, session.Press{Button: b})
		}
		if inpututil.IsKeyJustReleased(key) {
			evs = append(evs, session.Release{Button: b})
		}
	}
	return evs
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Life().Grid(), g.session.Cursor())
	g.hud.Draw(screen, g.session)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenWidth, render.ScreenHeight
}
