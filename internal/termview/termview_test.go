package termview

import (
	"bytes"
	"context"
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conway/internal/core"
	"conway/internal/session"
	"conway/pkg/board"
)

func blinkerSession(t *testing.T, interval time.Duration) *session.Session {
	t.Helper()
	s, err := session.New(session.Config{
		Size:     core.Size{W: 5, H: 5},
		Interval: interval,
		Speed:    1,
		Rand:     rand.New(rand.NewPCG(1, 1)),
	})
	require.NoError(t, err)
	for col := 1; col <= 3; col++ {
		require.NoError(t, s.Paint(2, col, board.Alive))
	}
	return s
}

func TestFitTerminal(t *testing.T) {
	s, err := FitTerminal(80, 24)
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 40, H: 23}, s)

	_, err = FitTerminal(1, 24)
	assert.ErrorIs(t, err, core.ErrCellSize)
	_, err = FitTerminal(80, 1)
	assert.ErrorIs(t, err, core.ErrCellSize)
}

func TestFrameASCII(t *testing.T) {
	s := blinkerSession(t, time.Second)
	var buf bytes.Buffer
	r := NewRenderer(&buf, color.White, color.Black, termenv.WithProfile(termenv.Ascii))

	frame := r.Frame(s.Board(), s.Status())
	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "          ", lines[0])
	assert.Equal(t, "  ██████  ", lines[2])
	assert.Equal(t, "paused | 1x | gen 0 | pop 3 | 5x5", lines[5])
}

func TestFrameColored(t *testing.T) {
	s := blinkerSession(t, time.Second)
	var buf bytes.Buffer
	r := NewRenderer(&buf, color.RGBA{R: 255, G: 165, A: 255}, color.Black, termenv.WithProfile(termenv.TrueColor))

	frame := r.Frame(s.Board(), s.Status())
	assert.Contains(t, frame, "\x1b[")
	assert.Contains(t, frame, aliveGlyph)
}

func TestPlayStopsAtGenerationLimit(t *testing.T) {
	s := blinkerSession(t, time.Millisecond)
	var buf bytes.Buffer
	p := &Player{
		Session:     s,
		Renderer:    NewRenderer(&buf, color.White, color.Black, termenv.WithProfile(termenv.Ascii)),
		Generations: 4,
		Poll:        time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, p.Play(ctx))

	assert.Equal(t, uint64(4), s.Board().Generation())
	assert.True(t, s.Paused())
	assert.Contains(t, buf.String(), "gen 4 | pop 3")
	// Period two: back to the horizontal bar.
	assert.Equal(t, board.Alive, s.Board().Get(2, 1))
}

func TestPlayStopsOnCancel(t *testing.T) {
	s := blinkerSession(t, time.Hour)
	var buf bytes.Buffer
	p := &Player{
		Session:  s,
		Renderer: NewRenderer(&buf, color.White, color.Black, termenv.WithProfile(termenv.Ascii)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, p.Play(ctx))
	assert.Zero(t, s.Board().Generation())
}
