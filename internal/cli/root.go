// Package cli defines the command-line interface for spline.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/spline/internal/config"
	"honnef.co/go/spline/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	EnvFile  string
	LogLevel logging.Level

	// Environ supplies the process environment. Nil means os.Environ.
	Environ func() config.Vars
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		EnvFile:  config.DefaultEnvFile,
		LogLevel: logging.LevelInfo,
		Environ:  config.FromOS,
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spline",
		Short: "spline flattens smooth and Bézier curves into polylines",
		Long: "spline turns a list of knots into a dense polyline approximating a smooth curve, " +
			"either by fitting a parabolic spline through them (fitted) or by treating them as a " +
			"chain of cubic Bézier anchors and control points (raw).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			environ := opts.Environ
			if environ == nil {
				environ = config.FromOS
			}
			cfg, err := config.Load(opts.EnvFile, cmd.Flags().Changed("env-file"), environ())
			if err != nil {
				return err
			}

			levelName := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				levelName = cmd.Flag("log-level").Value.String()
			}
			level := logging.ParseLevel(levelName)
			opts.LogLevel = level
			logger = logging.NewLogger(cmd.ErrOrStderr(), level)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			ctx = context.WithValue(ctx, configKey{}, cfg)
			cmd.SetContext(ctx)
			logger.Debug("logger initialized", "level", level, "env_file", opts.EnvFile)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", opts.EnvFile, "Path to a dotenv file with SPLINE_* defaults")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newFlattenCommand(),
		newSegmentsCommand(),
		newBoundCommand(),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// configKey is a private context key used to store the loaded environment.
type configKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}

// ConfigFromContext extracts the loaded environment from the context or
// falls back to the built-in defaults.
func ConfigFromContext(ctx context.Context) config.Env {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(config.Env); ok {
			return cfg
		}
	}
	cfg, err := config.Parse(config.Vars{})
	if err != nil {
		panic(err)
	}
	return cfg
}
