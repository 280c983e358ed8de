// Package commands implements the tileplan command line.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/tileplan/internal/config"
	"github.com/pdrpinto/tileplan/internal/logging"
	"github.com/pdrpinto/tileplan/internal/metrics"
	"github.com/pdrpinto/tileplan/internal/solver"
)

// app carries what the persistent pre-run builds for the subcommands.
type app struct {
	envFile string
	cfg     config.Config
	logger  zerolog.Logger
	metrics *metrics.Server
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.DefaultConfig()}

	root := &cobra.Command{
		Use:           "tileplan",
		Short:         "Solve sliding-tile puzzles with weighted A*",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file read before the environment")
	flags.Float64("alpha", 1, "heuristic weight (0 = uniform cost, 1 = A*, >1 greedier)")
	flags.Duration("timeout", 30*time.Second, "per-search time limit")
	flags.Int("workers", 0, "concurrent searches in batch mode (0 = one per CPU)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: console, json")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address until interrupted")

	root.AddCommand(newSolveCommand(a), newStepCommand(a), newBatchCommand(a))
	return root
}

// setup loads configuration, lets explicit flags override it and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("alpha") {
		cfg.Alpha, _ = flags.GetFloat64("alpha")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.DefaultConfig()
	logCfg.Format = cfg.LogFormat
	logCfg.Level = cfg.LogLevel
	logCfg.Output = cmd.ErrOrStderr()
	a.logger, err = logging.NewLogger(logCfg)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		server, err := metrics.Listen(cfg.MetricsAddr)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		a.metrics = server
		go func() {
			if err := server.Serve(); err != nil {
				a.logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
		a.logger.Info().Str("address", server.Addr()).Msg("serving metrics")
	}
	return nil
}

// teardown keeps /metrics up until the process is interrupted.
func (a *app) teardown(cmd *cobra.Command) error {
	if a.metrics == nil {
		return nil
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().Str("address", a.metrics.Addr()).Msg("metrics available, interrupt to exit")
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.metrics.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *app) solver() *solver.Solver {
	return solver.New(
		solver.WithLogger(a.logger),
		solver.WithTimeout(a.cfg.Timeout),
		solver.WithWorkers(a.cfg.Workers),
	)
}
