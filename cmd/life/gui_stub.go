//go:build !ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the interactive window (requires the ebiten build tag)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.ErrOrStderr(), "The GUI build of life requires the ebiten build tag.")
		fmt.Fprintln(cmd.ErrOrStderr(), "Re-run with `go run -tags ebiten ./cmd/life gui` or build with `-tags ebiten`.")
		return errors.New("gui unavailable in this build")
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
