package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gatetree/formatter"
	"github.com/gnoswap-labs/gatetree/internal/gatetree"
	"github.com/gnoswap-labs/gatetree/solve"
)

var caseNumber int

var showCmd = &cobra.Command{
	Use:   "show <input>",
	Short: "Print the annotated gate tree of one case",
	Long: `Prints every node of a case with its current value and the number of
changes needed to flip it. Changeable gates are marked with '*'.
Example) gatetree show --case 2 sample.in`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runShow(cmd.OutOrStdout(), args[0], caseNumber, config.Options()); err != nil {
			logger.Error("Failed to show case", zap.String("path", args[0]), zap.Int("case", caseNumber), zap.Error(err))
			exit(1)
		}
	},
}

func init() {
	showCmd.Flags().IntVar(&caseNumber, "case", 1, "Case number to print (1-based)")
}

func runShow(w io.Writer, path string, number int, opts solve.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := gatetree.NewDecoder(f)
	dec.MaxNodes = opts.MaxNodes

	n, err := dec.Count()
	if err != nil {
		return err
	}
	if number < 1 || number > n {
		return fmt.Errorf("case %d out of range: %s has %d cases", number, path, n)
	}

	for {
		c, err := dec.Next()
		if err != nil {
			return err
		}
		if c.Number == number {
			_, err = io.WriteString(w, formatter.FormatTree(c))
			return err
		}
	}
}
