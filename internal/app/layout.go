package app

import "conway/internal/ui"

// ScreenSize returns the window size for a w x h grid of cellSize-pixel cells
// plus the control strip.
func ScreenSize(w, h, cellSize int) (int, int) {
	return w * cellSize, h*cellSize + ui.PanelHeight
}
