//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"conway/internal/render"
	"conway/internal/session"
	"conway/internal/ui"
	"conway/pkg/board"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	log     *slog.Logger

	aliveColor color.Color
	deadColor  color.Color

	cellSize int
	now      func() time.Time
}

// New constructs a Game drawing each cell as a cellSize square.
func New(sess *session.Session, cellSize int, alive, dead color.Color, log *slog.Logger) *Game {
	b := sess.Board()
	return &Game{
		sess:       sess,
		painter:    render.NewGridPainter(b.Width(), b.Height()),
		hud:        ui.NewHUD(sess, b.Width()*cellSize),
		log:        log,
		aliveColor: alive,
		deadColor:  dead,
		cellSize:   cellSize,
		now:        time.Now,
	}
}

// Update handles input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sess.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sess.Slower()
	}

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.paint(board.Alive)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.paint(board.Dead)
	}

	g.sess.Tick(g.now())
	return nil
}

func (g *Game) paint(v board.Cell) {
	x, y := ebiten.CursorPosition()
	row, col := render.CellAt(x, y, g.cellSize)
	if err := g.sess.Paint(row, col, v); err != nil {
		// Clicks on the control strip land here.
		g.log.Debug("paint ignored", "x", x, "y", y, "error", err)
	}
}

// Draw renders the board and the control strip.
func (g *Game) Draw(screen *ebiten.Image) {
	b := g.sess.Board()
	g.painter.Blit(screen, b, g.aliveColor, g.deadColor, g.cellSize)
	g.hud.Draw(screen, b.Height()*g.cellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.sess.Board().Width(), g.sess.Board().Height(), g.cellSize)
}
