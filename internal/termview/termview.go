// Package termview plays a session in a terminal, two character columns per
// cell.
package termview

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"conway/internal/core"
	"conway/internal/logging"
	"conway/internal/session"
	"conway/pkg/board"
)

const (
	aliveGlyph = "██"
	deadGlyph  = "  "
)

// FitTerminal returns the largest grid that fits a terminal of cols x rows
// characters, keeping the last row for the status line.
func FitTerminal(cols, rows int) (core.Size, error) {
	s := core.Size{W: cols / 2, H: rows - 1}
	if s.W <= 0 || s.H <= 0 {
		return core.Size{}, fmt.Errorf("terminal %dx%d: %w", cols, rows, core.ErrCellSize)
	}
	return s, nil
}

// TerminalSize reports the size of the terminal on fd, or ok=false when fd is
// not a terminal.
func TerminalSize(fd uintptr) (cols, rows int, ok bool) {
	if !term.IsTerminal(int(fd)) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(int(fd))
	if err != nil {
		return 0, 0, false
	}
	return cols, rows, true
}

// Renderer formats boards as colored text.
type Renderer struct {
	out   *termenv.Output
	alive termenv.Color
	dead  termenv.Color
}

// NewRenderer writes frames to w. Extra options are passed to termenv, e.g.
// termenv.WithProfile to force a color profile.
func NewRenderer(w io.Writer, alive, dead color.Color, opts ...termenv.OutputOption) *Renderer {
	out := termenv.NewOutput(w, opts...)
	return &Renderer{
		out:   out,
		alive: out.FromColor(alive),
		dead:  out.FromColor(dead),
	}
}

// Frame renders b row by row followed by the status line.
func (r *Renderer) Frame(b *board.Board, st session.Status) string {
	var sb strings.Builder
	on, off := aliveGlyph, deadGlyph
	if r.out.Profile != termenv.Ascii {
		on = r.out.String(aliveGlyph).Foreground(r.alive).Background(r.dead).String()
		off = r.out.String(deadGlyph).Background(r.dead).String()
	}
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if b.Get(row, col) == board.Alive {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(st.String())
	sb.WriteByte('\n')
	return sb.String()
}

// Draw clears the screen and writes the current frame of sess.
func (r *Renderer) Draw(sess *session.Session) error {
	r.out.ClearScreen()
	_, err := io.WriteString(r.out, r.Frame(sess.Board(), sess.Status()))
	return err
}

// Player runs a session in real time, redrawing after every generation.
type Player struct {
	Session  *session.Session
	Renderer *Renderer
	Log      *slog.Logger
	// Generations stops playback once reached; zero plays until ctx ends.
	Generations uint64
	// Poll is how often the session clock is consulted.
	Poll time.Duration
}

// Play unpauses the session and draws frames until ctx is cancelled or the
// generation limit is reached.
func (p *Player) Play(ctx context.Context) error {
	poll := p.Poll
	if poll <= 0 {
		poll = 10 * time.Millisecond
	}
	log := p.Log
	if log == nil {
		log = logging.NewNop()
	}

	p.Renderer.out.HideCursor()
	defer p.Renderer.out.ShowCursor()

	if err := p.Renderer.Draw(p.Session); err != nil {
		return err
	}
	p.Session.Resume()
	defer p.Session.Pause()

	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		if p.Generations > 0 && p.Session.Board().Generation() >= p.Generations {
			log.Info("generation limit reached", "generations", p.Generations)
			return nil
		}
		select {
		case <-ctx.Done():
			log.Info("playback stopped", "generation", p.Session.Board().Generation())
			return nil
		case now := <-ticker.C:
			if !p.Session.Tick(now) {
				continue
			}
			if err := p.Renderer.Draw(p.Session); err != nil {
				return fmt.Errorf("draw generation %d: %w", p.Session.Board().Generation(), err)
			}
		}
	}
}
