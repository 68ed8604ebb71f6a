package core

import (
	"errors"
	"fmt"
)

// ErrCellSize is returned by GridSize for a non-positive cell size or a
// canvas too small to hold a single cell.
var ErrCellSize = errors.New("canvas cannot hold a cell of that size")

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// GridSize returns how many whole cells of cellSize pixels fit in a canvas of
// canvasW x canvasH pixels. Partial cells at the edges are dropped.
func GridSize(canvasW, canvasH, cellSize int) (Size, error) {
	if cellSize <= 0 {
		return Size{}, fmt.Errorf("cell size %d: %w", cellSize, ErrCellSize)
	}
	s := Size{W: canvasW / cellSize, H: canvasH / cellSize}
	if s.W <= 0 || s.H <= 0 {
		return Size{}, fmt.Errorf("canvas %dx%d with cell size %d: %w", canvasW, canvasH, cellSize, ErrCellSize)
	}
	return s, nil
}
