package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"conway/internal/metrics"
	"conway/internal/termview"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a random board in the terminal",
	Long: `Starts from a random board and redraws it in the terminal after every
generation until interrupted or until --generations is reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveConfig(cmd); err != nil {
			return err
		}
		fit, _ := cmd.Flags().GetBool("fit")
		empty, _ := cmd.Flags().GetBool("empty")

		size, err := cfg.GridSize()
		if err != nil {
			return err
		}
		if fit {
			if cols, rows, ok := termview.TerminalSize(os.Stdout.Fd()); ok {
				if size, err = termview.FitTerminal(cols, rows); err != nil {
					return err
				}
			}
		}

		sess, log, reg, err := setup(cmd, size)
		if err != nil {
			return err
		}
		if !empty {
			sess.Randomize()
		}

		alive, dead, err := cfg.Colors()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.MetricsAddr != "" {
			shutdown := serveMetrics(cfg.MetricsAddr, reg)
			defer shutdown()
			log.Info("serving metrics", "addr", cfg.MetricsAddr)
		}

		player := &termview.Player{
			Session:     sess,
			Renderer:    termview.NewRenderer(cmd.OutOrStdout(), alive, dead),
			Log:         log,
			Generations: uint64(cfg.Generations),
		}
		return player.Play(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("fit", true, "size the board to the terminal instead of the canvas settings")
	runCmd.Flags().Bool("empty", false, "start from an empty board instead of a random one")
}

func serveMetrics(addr string, reg *prometheus.Registry) (shutdown func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
