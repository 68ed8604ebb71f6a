// Package session drives a board on behalf of a presentation layer: it holds
// the pause flag and playback speed, turns user commands into board
// mutations and decides when a timer tick becomes a Step.
//
// A Session is not safe for concurrent use; the window loop or the headless
// runner that owns it serializes every call.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"conway/internal/core"
	"conway/internal/logging"
	"conway/pkg/board"
)

// ErrOutside is returned by Paint for positions off the grid, such as a click
// on the window margin.
var ErrOutside = errors.New("position outside the board")

// Recorder receives board activity. internal/metrics implements it.
type Recorder interface {
	Stepped(population int)
	Edited(kind string, population int)
}

type nopRecorder struct{}

func (nopRecorder) Stepped(int) {}

func (nopRecorder) Edited(string, int) {}

// Config sizes the board and sets the initial cadence.
type Config struct {
	Size     core.Size
	Interval time.Duration
	Speed    core.Speed
	// Rand feeds Randomize. Nil uses a clock-seeded source.
	Rand board.Rand
}

// Option customises a Session.
type Option func(*Session)

// WithLogger sets the logger used for command logs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.rec = r
		}
	}
}

// Session owns a board plus the playback state around it.
type Session struct {
	board  *board.Board
	clock  *core.FixedStep
	paused bool

	log *slog.Logger
	rec Recorder
}

// New builds a paused session with an empty board.
func New(cfg Config, opts ...Option) (*Session, error) {
	var boardOpts []board.Option
	if cfg.Rand != nil {
		boardOpts = append(boardOpts, board.WithRand(cfg.Rand))
	}
	b, err := board.New(cfg.Size.W, cfg.Size.H, boardOpts...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{
		board:  b,
		clock:  core.NewFixedStep(cfg.Interval, cfg.Speed),
		paused: true,
		log:    logging.NewNop(),
		rec:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug("session created", "width", cfg.Size.W, "height", cfg.Size.H, "interval", s.clock.Interval())
	return s, nil
}

// Board exposes the board for rendering. Callers must not mutate it directly.
func (s *Session) Board() *board.Board { return s.board }

// Paused reports whether ticks are suppressed.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips between running and paused.
func (s *Session) TogglePause() {
	s.setPaused(!s.paused)
}

// Pause stops ticks from stepping the board.
func (s *Session) Pause() { s.setPaused(true) }

// Resume lets ticks step the board again.
func (s *Session) Resume() { s.setPaused(false) }

func (s *Session) setPaused(p bool) {
	if s.paused == p {
		return
	}
	s.paused = p
	s.clock.Reset()
	s.log.Info("playback", "paused", p)
}

// Speed returns the playback multiplier.
func (s *Session) Speed() core.Speed { return s.clock.Speed() }

// SetSpeed changes the playback multiplier.
func (s *Session) SetSpeed(v core.Speed) {
	s.clock.SetSpeed(v)
	s.log.Info("speed changed", "speed", s.clock.Speed().String(), "interval", s.clock.Interval())
}

// Faster selects the next higher multiplier.
func (s *Session) Faster() { s.SetSpeed(s.Speed().Faster()) }

// Slower selects the next lower multiplier.
func (s *Session) Slower() { s.SetSpeed(s.Speed().Slower()) }

// Paint sets a single cell. Positions off the grid are rejected with an
// error wrapping ErrOutside.
func (s *Session) Paint(row, col int, v board.Cell) error {
	if !s.board.Contains(row, col) {
		return fmt.Errorf("paint (%d,%d): %w", row, col, ErrOutside)
	}
	s.board.Set(row, col, v)
	s.rec.Edited("paint", s.board.Population())
	s.log.Debug("paint", "row", row, "col", col, "cell", v.String())
	return nil
}

// Randomize refills the board at random and pauses playback.
func (s *Session) Randomize() {
	s.board.Randomize()
	s.Pause()
	pop := s.board.Population()
	s.rec.Edited("randomize", pop)
	s.log.Info("board randomized", "population", pop)
}

// Clear kills every cell and pauses playback.
func (s *Session) Clear() {
	s.board.Clear()
	s.Pause()
	s.rec.Edited("clear", 0)
	s.log.Info("board cleared")
}

// StepOnce advances one generation whether or not playback is paused.
func (s *Session) StepOnce() {
	s.board.Step()
	s.rec.Stepped(s.board.Population())
}

// Tick steps the board if playback is running and a tick is due at now. It
// reports whether the board changed.
func (s *Session) Tick(now time.Time) bool {
	if s.paused {
		return false
	}
	if !s.clock.ShouldStep(now) {
		return false
	}
	s.StepOnce()
	return true
}

// Status summarises the session for status lines.
type Status struct {
	Size       core.Size
	Generation uint64
	Population int
	Paused     bool
	Speed      core.Speed
}

// Status returns the current summary.
func (s *Session) Status() Status {
	return Status{
		Size:       core.Size{W: s.board.Width(), H: s.board.Height()},
		Generation: s.board.Generation(),
		Population: s.board.Population(),
		Paused:     s.paused,
		Speed:      s.clock.Speed(),
	}
}

// Action is the label of the play/pause control: "Play" while paused.
func (st Status) Action() string {
	if st.Paused {
		return "Play"
	}
	return "Pause"
}

func (st Status) String() string {
	state := "running"
	if st.Paused {
		state = "paused"
	}
	return fmt.Sprintf("%s | %s | gen %d | pop %d | %dx%d",
		state, st.Speed, st.Generation, st.Population, st.Size.W, st.Size.H)
}
