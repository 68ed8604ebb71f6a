package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conway/internal/core"
	"conway/pkg/board"
)

type recorder struct {
	steps int
	edits []string
	pop   int
}

func (r *recorder) Stepped(pop int) {
	r.steps++
	r.pop = pop
}

func (r *recorder) Edited(kind string, pop int) {
	r.edits = append(r.edits, kind)
	r.pop = pop
}

func newSession(t *testing.T) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	s, err := New(Config{
		Size:     core.Size{W: 5, H: 5},
		Interval: 100 * time.Millisecond,
		Speed:    1,
		Rand:     rand.New(rand.NewPCG(3, 4)),
	}, WithRecorder(rec))
	require.NoError(t, err)
	return s, rec
}

func paintBlinker(t *testing.T, s *Session) {
	t.Helper()
	for col := 1; col <= 3; col++ {
		require.NoError(t, s.Paint(2, col, board.Alive))
	}
}

func TestNewRejectsEmptyGrid(t *testing.T) {
	_, err := New(Config{Size: core.Size{W: 0, H: 4}})
	assert.ErrorIs(t, err, board.ErrInvalidSize)
}

func TestStartsPaused(t *testing.T) {
	s, _ := newSession(t)
	assert.True(t, s.Paused())
	assert.Equal(t, "Play", s.Status().Action())
}

func TestPausedTicksNeverStep(t *testing.T) {
	s, rec := newSession(t)
	paintBlinker(t, s)

	t0 := time.Unix(0, 0)
	for i := 0; i < 20; i++ {
		assert.False(t, s.Tick(t0.Add(time.Duration(i)*time.Second)))
	}
	assert.Zero(t, rec.steps)
	assert.Zero(t, s.Board().Generation())
}

func TestRunningTicksStep(t *testing.T) {
	s, rec := newSession(t)
	paintBlinker(t, s)
	s.TogglePause()
	require.False(t, s.Paused())

	t0 := time.Unix(0, 0)
	assert.False(t, s.Tick(t0))
	assert.False(t, s.Tick(t0.Add(50*time.Millisecond)))
	assert.True(t, s.Tick(t0.Add(100*time.Millisecond)))
	assert.Equal(t, 1, rec.steps)
	assert.Equal(t, 3, rec.pop)
	assert.Equal(t, board.Alive, s.Board().Get(1, 2))
	assert.Equal(t, board.Alive, s.Board().Get(3, 2))
}

func TestSpeedChangesCadence(t *testing.T) {
	s, _ := newSession(t)
	s.Resume()
	s.Faster()
	s.Faster()
	assert.Equal(t, core.Speed(2), s.Speed())

	t0 := time.Unix(0, 0)
	s.Tick(t0)
	assert.True(t, s.Tick(t0.Add(50*time.Millisecond)))

	for i := 0; i < 10; i++ {
		s.Slower()
	}
	assert.Equal(t, core.Speed(0.5), s.Speed())
}

func TestPaintOutside(t *testing.T) {
	s, rec := newSession(t)
	err := s.Paint(5, 0, board.Alive)
	assert.ErrorIs(t, err, ErrOutside)
	err = s.Paint(0, -1, board.Dead)
	assert.ErrorIs(t, err, ErrOutside)
	assert.Empty(t, rec.edits)
}

func TestPaintDead(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Paint(1, 1, board.Alive))
	require.NoError(t, s.Paint(1, 1, board.Dead))
	assert.Equal(t, board.Dead, s.Board().Get(1, 1))
}

func TestRandomizeAndClearForcePause(t *testing.T) {
	s, rec := newSession(t)
	s.Resume()
	s.Randomize()
	assert.True(t, s.Paused())

	s.Resume()
	s.Clear()
	assert.True(t, s.Paused())
	assert.Zero(t, s.Board().Population())
	assert.Equal(t, []string{"randomize", "clear"}, rec.edits)
	assert.Zero(t, rec.pop)
}

func TestStepOnceIgnoresPause(t *testing.T) {
	s, rec := newSession(t)
	paintBlinker(t, s)
	s.StepOnce()
	assert.True(t, s.Paused())
	assert.Equal(t, uint64(1), s.Board().Generation())
	assert.Equal(t, 1, rec.steps)
}

func TestStatus(t *testing.T) {
	s, _ := newSession(t)
	paintBlinker(t, s)
	s.StepOnce()
	st := s.Status()
	assert.Equal(t, Status{
		Size:       core.Size{W: 5, H: 5},
		Generation: 1,
		Population: 3,
		Paused:     true,
		Speed:      1,
	}, st)
	assert.Equal(t, "paused | 1x | gen 1 | pop 3 | 5x5", st.String())

	s.Resume()
	assert.Equal(t, "Pause", s.Status().Action())
}
