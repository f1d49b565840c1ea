// Package solve runs gate tree cases from readers, files and directories.
package solve

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gatetree/internal/gatetree"
	"github.com/gnoswap-labs/gatetree/scanner"
)

// Options tune how cases are decoded.
type Options struct {
	// MaxNodes rejects larger cases. Zero means no limit.
	MaxNodes int
}

// FileResult holds the answers for one input file.
type FileResult struct {
	Path    string            `json:"path"`
	Results []gatetree.Result `json:"results"`
}

// Processor solves every case in one input file.
type Processor func(ctx context.Context, logger *zap.Logger, path string) ([]gatetree.Result, error)

// Processor returns a Processor that calls ProcessFile with o.
func (o Options) Processor() Processor {
	return func(ctx context.Context, logger *zap.Logger, path string) ([]gatetree.Result, error) {
		return ProcessFile(ctx, logger, path, o)
	}
}

// ProcessReader decodes the case count and then solves each case in order.
// A malformed case aborts the whole run and no results are returned.
func ProcessReader(ctx context.Context, logger *zap.Logger, r io.Reader, opts Options) ([]gatetree.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, span := tracer.Start(ctx, "gatetree.solve")
	defer span.End()

	dec := gatetree.NewDecoder(r)
	dec.MaxNodes = opts.MaxNodes

	n, err := dec.Count()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var (
		results    []gatetree.Result
		impossible int
	)
	for i := 0; i < n; i++ {
		c, err := dec.Next()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		res := c.Solve()
		if !res.Changes.Possible() {
			impossible++
		}
		if ce := logger.Check(zap.DebugLevel, "solved case"); ce != nil {
			stats := gatetree.Describe(c.Root)
			ce.Write(
				zap.Int("case", res.Case),
				zap.Bool("desired", c.Desired),
				zap.Stringer("changes", res.Changes),
				zap.Int("nodes", stats.Nodes),
				zap.Int("changeable", stats.Changeable),
			)
		}
		results = append(results, res)
	}

	span.SetAttributes(
		attribute.Int("gatetree.cases", n),
		attribute.Int("gatetree.impossible", impossible),
	)
	recordRun(ctx, logger, n, impossible)

	return results, nil
}

// ProcessFile solves every case of the file at path.
func ProcessFile(ctx context.Context, logger *zap.Logger, path string, opts Options) ([]gatetree.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	results, err := ProcessReader(ctx, logger, f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return results, nil
}

// ProcessPath runs processor on path, or on every input file below it when
// path is a directory. Files are processed one after another and the first
// failure stops the run.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	path string,
	config Config,
	processor Processor,
) ([]FileResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		results, err := processor(ctx, logger, path)
		if err != nil {
			return nil, err
		}
		return []FileResult{{Path: path, Results: results}}, nil
	}

	files, err := scanner.New(path, config.Extensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}
	logger.Debug("found input files", zap.String("dir", path), zap.Int("count", len(files)))

	var bar *progressbar.ProgressBar
	if config.Progress && len(files) > 0 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(!config.NoColor),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	out := make([]FileResult, 0, len(files))
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		logger.Debug("solving file", zap.String("file", file.Path), zap.Int64("size", file.Size))
		results, err := processor(ctx, logger, file.Path)
		if err != nil {
			logger.Error("Error processing file", zap.String("file", file.Path), zap.Error(err))
			return nil, err
		}
		out = append(out, FileResult{Path: file.Path, Results: results})

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	return out, nil
}
