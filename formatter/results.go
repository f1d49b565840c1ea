package formatter

import (
	"encoding/json"
	"strings"

	"github.com/gnoswap-labs/gatetree/internal/gatetree"
	"github.com/gnoswap-labs/gatetree/solve"
)

// FormatResults renders one "Case #n: x" line per result.
func FormatResults(results []gatetree.Result) string {
	var builder strings.Builder
	for _, r := range results {
		builder.WriteString(r.String())
		builder.WriteByte('\n')
	}
	return builder.String()
}

// FormatFileResults renders the results of every file. Files are separated
// by "==> path <==" headers only when there is more than one.
func FormatFileResults(files []solve.FileResult) string {
	if len(files) == 1 {
		return FormatResults(files[0].Results)
	}

	var builder strings.Builder
	for i, f := range files {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString("==> " + f.Path + " <==\n")
		builder.WriteString(FormatResults(f.Results))
	}
	return builder.String()
}

// FormatJSON encodes the results of every file.
func FormatJSON(files []solve.FileResult) ([]byte, error) {
	return json.Marshal(files)
}
