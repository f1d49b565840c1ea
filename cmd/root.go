package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gatetree/internal/telemetry"
	"github.com/gnoswap-labs/gatetree/solve"
)

var (
	cfgFile          string
	verbose          bool
	telemetryEnabled bool

	logger            *zap.Logger
	config            solve.Config
	shutdownTelemetry func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:              "gatetree [input]",
	Short:            "gatetree - minimum gate changes that make a boolean gate tree reach a value",
	Args:             cobra.MaximumNArgs(1),
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// no input
		if len(args) == 0 {
			cmd.PrintErrln(cmd.UsageString())
			return errMissingInput
		}
		// Format: gatetree <input> => behaves like the solve subcommand
		solveCmd.Run(solveCmd, args)
		return nil
	},
}

var errMissingInput = errors.New("missing input: expected a file or directory to solve")

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file (default "+solve.DefaultConfigPath+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")
	rootCmd.PersistentFlags().BoolVar(&telemetryEnabled, "telemetry", false, "Print OpenTelemetry spans and metrics to stderr")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
}

func setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	config, err = loadConfig(cfgFile)
	if err != nil {
		logger.Error("Failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
		return err
	}
	if config.NoColor {
		color.NoColor = true
	}

	if telemetryEnabled {
		shutdownTelemetry, err = telemetry.Setup(ctx, os.Stderr)
		if err != nil {
			logger.Error("Failed to set up telemetry", zap.Error(err))
			return err
		}
	}
	return nil
}

// loadConfig reads path, or the default configuration file when path is
// empty and that file exists.
func loadConfig(path string) (solve.Config, error) {
	if path == "" {
		if _, err := os.Stat(solve.DefaultConfigPath); err == nil {
			path = solve.DefaultConfigPath
		} else if !errors.Is(err, os.ErrNotExist) {
			return solve.Config{}, err
		}
	}
	return solve.LoadConfig(path)
}

func teardown() {
	if shutdownTelemetry != nil {
		if err := shutdownTelemetry(context.Background()); err != nil && logger != nil {
			logger.Warn("Failed to flush telemetry", zap.Error(err))
		}
		shutdownTelemetry = nil
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

// exit flushes logs and telemetry before terminating with code.
func exit(code int) {
	teardown()
	os.Exit(code)
}
