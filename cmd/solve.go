package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gatetree/formatter"
	"github.com/gnoswap-labs/gatetree/solve"
)

var (
	solveJsonOutput bool
	outPath         string
)

var solveCmd = &cobra.Command{
	Use:   "solve <input>",
	Short: "Solve every case of an input file, or of every input file in a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		isJson := solveJsonOutput || config.Output == solve.OutputJSON
		err := runSolve(context.Background(), logger, cmd.OutOrStdout(), args[0], config, isJson, outPath)
		if err != nil {
			logger.Error("Failed to solve input", zap.String("path", args[0]), zap.Error(err))
			exit(1)
		}
	},
}

func init() {
	solveCmd.Flags().BoolVar(&solveJsonOutput, "json", false, "Output results in JSON format")
	solveCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write results to this file instead of stdout")
}

func runSolve(ctx context.Context, logger *zap.Logger, w io.Writer, path string, config solve.Config, isJson bool, outPath string) error {
	files, err := solve.ProcessPath(ctx, logger, path, config, config.Options().Processor())
	if err != nil {
		return err
	}

	var out []byte
	if isJson {
		out, err = formatter.FormatJSON(files)
		if err != nil {
			return err
		}
		out = append(out, '\n')
	} else {
		out = []byte(formatter.FormatFileResults(files))
	}

	if outPath != "" {
		return os.WriteFile(outPath, out, 0o644)
	}
	_, err = w.Write(out)
	return err
}
