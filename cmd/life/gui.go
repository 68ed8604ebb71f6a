//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"conway/internal/app"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the interactive window",
	Long: `Opens a window with the board. Left click paints live cells, right click
kills them. Space plays or pauses, R randomizes, C clears, N steps once and
+/- change the playback speed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveConfig(cmd); err != nil {
			return err
		}
		size, err := cfg.GridSize()
		if err != nil {
			return err
		}
		sess, log, _, err := setup(cmd, size)
		if err != nil {
			return err
		}
		alive, dead, err := cfg.Colors()
		if err != nil {
			return err
		}

		game := app.New(sess, cfg.CellSize, alive, dead, log)
		w, h := app.ScreenSize(size.W, size.H, cfg.CellSize)

		ebiten.SetWindowTitle("Conway's Game of Life")
		ebiten.SetWindowSize(w, h)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
