package ui

import (
	"strings"

	"conway/internal/session"
)

// PanelHeight is the height in pixels of the control strip under the grid.
const PanelHeight = 36

// KeyHelp lists the keyboard controls in display order.
var KeyHelp = []string{
	"Space play/pause",
	"R randomize",
	"C clear",
	"N step",
	"+/- speed",
	"Q quit",
}

// PanelLines returns the text shown in the control strip for st.
func PanelLines(st session.Status) []string {
	return []string{
		"[" + st.Action() + "]  " + st.String(),
		strings.Join(KeyHelp, "  "),
	}
}
