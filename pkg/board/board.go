// Package board holds the Game of Life grid and its B3/S23 transition.
//
// The grid is finite with hard edges: positions outside it are never counted
// as neighbours and never wrap to the opposite side.
package board

import (
	"errors"
	"fmt"

	"conway/pkg/core"
)

// Cell is the state of a single grid position.
type Cell bool

const (
	// Dead is the empty state every board starts with.
	Dead Cell = false
	// Alive marks a populated cell.
	Alive Cell = true
)

// String returns "alive" or "dead".
func (c Cell) String() string {
	if c {
		return "alive"
	}
	return "dead"
}

// ErrInvalidSize is returned by New for non-positive dimensions.
var ErrInvalidSize = errors.New("board: width and height must be positive")

// RangeError is the panic value for Get/Set/Toggle calls outside the grid.
type RangeError struct {
	Row, Col      int
	Height, Width int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("board: position (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Height, e.Width)
}

// Rand is the randomness source consumed by Randomize. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Option configures a Board at construction.
type Option func(*Board)

// WithRand sets the source used by Randomize.
func WithRand(r Rand) Option {
	return func(b *Board) {
		if r != nil {
			b.rng = r
		}
	}
}

// Board is a fixed-size grid of cells stored row-major, with a second buffer
// that receives the next generation during Step.
type Board struct {
	w, h int
	cur  []Cell
	nxt  []Cell
	gen  uint64
	rng  Rand
}

// New returns a board of the given dimensions with every cell Dead.
func New(width, height int, opts ...Option) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new board %dx%d: %w", width, height, ErrInvalidSize)
	}
	b := &Board{
		w:   width,
		h:   height,
		cur: make([]Cell, width*height),
		nxt: make([]Cell, width*height),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = core.NewTimeRNG().Source()
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Generation counts the steps taken since the board was created, cleared or
// randomized.
func (b *Board) Generation() uint64 { return b.gen }

// Contains reports whether (row, col) lies on the grid.
func (b *Board) Contains(row, col int) bool {
	return row >= 0 && row < b.h && col >= 0 && col < b.w
}

func (b *Board) index(row, col int) int {
	if !b.Contains(row, col) {
		panic(&RangeError{Row: row, Col: col, Height: b.h, Width: b.w})
	}
	return row*b.w + col
}

// Get returns the cell at (row, col). It panics with *RangeError when the
// position is outside the grid.
func (b *Board) Get(row, col int) Cell {
	return b.cur[b.index(row, col)]
}

// Set overwrites the cell at (row, col). It panics with *RangeError when the
// position is outside the grid.
func (b *Board) Set(row, col int, v Cell) {
	b.cur[b.index(row, col)] = v
}

// Toggle flips the cell at (row, col) and returns its new state.
func (b *Board) Toggle(row, col int) Cell {
	i := b.index(row, col)
	b.cur[i] = !b.cur[i]
	return b.cur[i]
}

// Randomize makes every cell Alive or Dead with equal probability.
func (b *Board) Randomize() {
	for i := range b.cur {
		b.cur[i] = b.rng.IntN(2) == 1
	}
	b.gen = 0
}

// Clear kills every cell.
func (b *Board) Clear() {
	clear(b.cur)
	b.gen = 0
}

// Population returns the number of Alive cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cur {
		if c {
			n++
		}
	}
	return n
}

// Snapshot copies the current generation into dst, growing it if needed, and
// returns the filled slice. Cell (row, col) lands at index row*Width()+col.
func (b *Board) Snapshot(dst []Cell) []Cell {
	if cap(dst) < len(b.cur) {
		dst = make([]Cell, len(b.cur))
	}
	dst = dst[:len(b.cur)]
	copy(dst, b.cur)
	return dst
}

// neighbors counts Alive cells in the Moore neighbourhood of (row, col),
// skipping positions off the grid.
func (b *Board) neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= b.h {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= b.w {
				continue
			}
			if b.cur[r*b.w+c] {
				n++
			}
		}
	}
	return n
}

// Step advances the board by one generation. Every neighbour count reads the
// current buffer only; the result is written to the spare buffer and the two
// are swapped once the whole grid is done.
func (b *Board) Step() {
	w, h := b.w, b.h
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			n := b.neighbors(row, col)
			b.nxt[idx] = n == 3 || (b.cur[idx] && n == 2)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.gen++
}
