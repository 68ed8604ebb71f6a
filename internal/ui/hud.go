//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"conway/internal/session"
)

// HUD renders the status and key help strip below the board.
type HUD struct {
	sess  *session.Session
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the session spanning width pixels.
func NewHUD(sess *session.Session, width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{sess: sess, width: width}
}

// Draw paints the strip with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, PanelHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	for i, line := range PanelLines(h.sess.Status()) {
		text.Draw(h.panel, line, face, 6, 14+i*15, color.RGBA{R: 220, G: 220, B: 220, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
