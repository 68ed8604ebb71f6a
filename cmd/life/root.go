package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"conway/internal/config"
	"conway/internal/core"
	"conway/internal/logging"
	"conway/internal/metrics"
	"conway/internal/session"
	pkgcore "conway/pkg/core"
)

var (
	cfg        = config.NewConfig()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life on a finite board",
	Long: `life runs Conway's Game of Life on a fixed-size board with hard edges.
Use "life gui" for the interactive window or "life run" to play in the terminal.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML settings file")
	cfg.Bind(rootCmd.PersistentFlags())
}

// setup resolves the configuration and builds the logger, the metrics
// registry and a session of the given size.
func setup(cmd *cobra.Command, size core.Size) (*session.Session, *slog.Logger, *prometheus.Registry, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logging.New(level)

	speed, err := cfg.PlaybackSpeed()
	if err != nil {
		return nil, nil, nil, err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("register metrics: %w", err)
	}

	rng := pkgcore.NewTimeRNG()
	if cfg.Seed != 0 {
		rng = pkgcore.NewRNG(cfg.Seed)
	}

	sess, err := session.New(session.Config{
		Size:     size,
		Interval: cfg.Interval,
		Speed:    speed,
		Rand:     rng.Source(),
	}, session.WithLogger(log), session.WithRecorder(rec))
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("board ready", "command", cmd.Name(), "width", size.W, "height", size.H, "speed", speed.String())
	return sess, log, reg, nil
}

// resolveConfig layers file, environment and flags into cfg.
func resolveConfig(cmd *cobra.Command) error {
	return cfg.Resolve(cmd.Flags(), configPath)
}
