package render

import (
	"image/color"

	"conway/pkg/board"
)

// FillCellsRGBA converts cells into RGBA pixels in buf, one pixel per cell.
// buf must hold at least 4*len(cells) bytes.
func FillCellsRGBA(buf []byte, cells []board.Cell, alive, dead color.Color) {
	on := rgba(alive)
	off := rgba(dead)
	for i, c := range cells {
		px := off
		if c == board.Alive {
			px = on
		}
		base := i * 4
		buf[base+0] = px[0]
		buf[base+1] = px[1]
		buf[base+2] = px[2]
		buf[base+3] = px[3]
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// CellAt maps a pixel position on a canvas drawn with cellSize-pixel cells to
// the (row, col) beneath it. The result may lie outside the board.
func CellAt(x, y, cellSize int) (row, col int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	return floorDiv(y, cellSize), floorDiv(x, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}
