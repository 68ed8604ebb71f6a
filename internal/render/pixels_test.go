package render

import (
	"image/color"
	"testing"

	"conway/pkg/board"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []board.Cell{board.Alive, board.Dead, board.Alive}
	buf := make([]byte, 4*len(cells))
	alive := color.RGBA{R: 255, G: 165, A: 255}
	dead := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	FillCellsRGBA(buf, cells, alive, dead)

	want := []byte{
		255, 165, 0, 255,
		1, 2, 3, 255,
		255, 165, 0, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (buf %v)", i, buf[i], want[i], buf)
		}
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y, size int
		row, col   int
	}{
		{0, 0, 6, 0, 0},
		{5, 5, 6, 0, 0},
		{6, 13, 6, 2, 1},
		{799, 659, 6, 109, 133},
		{-1, 3, 6, 0, -1},
		{4, 4, 0, 4, 4},
	}
	for _, tc := range cases {
		row, col := CellAt(tc.x, tc.y, tc.size)
		if row != tc.row || col != tc.col {
			t.Fatalf("CellAt(%d, %d, %d) = (%d, %d), want (%d, %d)", tc.x, tc.y, tc.size, row, col, tc.row, tc.col)
		}
	}
}
