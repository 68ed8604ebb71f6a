//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"conway/pkg/board"
)

// GridPainter keeps an image with one pixel per cell and draws it scaled up.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	cells []board.Cell
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit pulls the current generation from b, uploads it and draws it at the
// given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *board.Board, alive, dead color.Color, scale int) {
	if b.Width() != gp.w || b.Height() != gp.h {
		return
	}
	gp.cells = b.Snapshot(gp.cells)
	FillCellsRGBA(gp.buf, gp.cells, alive, dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
