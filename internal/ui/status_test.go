package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"conway/internal/core"
	"conway/internal/session"
)

func TestPanelLines(t *testing.T) {
	lines := PanelLines(session.Status{
		Size:       core.Size{W: 133, H: 110},
		Generation: 42,
		Population: 7,
		Paused:     false,
		Speed:      2.5,
	})
	assert.Len(t, lines, 2)
	assert.Equal(t, "[Pause]  running | 2.5x | gen 42 | pop 7 | 133x110", lines[0])
	assert.Contains(t, lines[1], "Space play/pause")
	assert.Contains(t, lines[1], "+/- speed")
}
