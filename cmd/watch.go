package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gatetree/formatter"
	"github.com/gnoswap-labs/gatetree/solve"
)

var watchCmd = &cobra.Command{
	Use:   "watch <input>",
	Short: "Solve input files again whenever they change",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := runWatch(ctx, logger, cmd.OutOrStdout(), args[0], config); err != nil {
			logger.Error("Failed to watch", zap.String("path", args[0]), zap.Error(err))
			exit(1)
		}
	},
}

func runWatch(ctx context.Context, logger *zap.Logger, w io.Writer, path string, config solve.Config) error {
	opts := config.Options()
	handle := func(file string) {
		results, err := solve.ProcessFile(ctx, logger, file, opts)
		if err != nil {
			// A half-written file is expected while editing; wait for the next write.
			logger.Warn("Failed to solve changed file", zap.String("file", file), zap.Error(err))
			return
		}
		fmt.Fprintf(w, "==> %s <==\n%s", file, formatter.FormatResults(results))
	}

	return solve.Watch(ctx, logger, path, config.Extensions, handle)
}
