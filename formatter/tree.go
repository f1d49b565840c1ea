package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnoswap-labs/gatetree/internal/gatetree"
)

var (
	headerStyle     = color.New(color.FgCyan, color.Bold)
	gateStyle       = color.New(color.FgYellow, color.Bold)
	changeableStyle = color.New(color.FgGreen, color.Bold)
	trueStyle       = color.New(color.FgGreen)
	falseStyle      = color.New(color.FgRed)
	costStyle       = color.New(color.FgHiBlue)
	branchStyle     = color.New(color.FgWhite)
)

// FormatTree renders a case as an indented tree. Every node shows its
// current value and the number of changes needed to flip it; changeable
// gates are marked with '*'.
func FormatTree(c gatetree.Case) string {
	var builder strings.Builder

	res := c.Solve()
	builder.WriteString(headerStyle.Sprintf("Case #%d", c.Number))
	fmt.Fprintf(&builder, ": want %s, have %s, changes %s\n",
		formatValue(c.Desired), formatValue(c.Root.Value()), costStyle.Sprint(res.Changes))

	writeNode(&builder, c.Root, "", "")
	return builder.String()
}

func writeNode(b *strings.Builder, node gatetree.Node, prefix, childPrefix string) {
	b.WriteString(branchStyle.Sprint(prefix))

	flip := gatetree.MinChanges(node, !node.Value())
	switch n := node.(type) {
	case *gatetree.Interior:
		b.WriteString(gateStyle.Sprint(n.Gate))
		if n.Changeable {
			b.WriteString(changeableStyle.Sprint("*"))
		}
		fmt.Fprintf(b, " %s (flip: %s)\n", formatValue(n.Value()), costStyle.Sprint(flip))
		writeNode(b, n.Left, childPrefix+"├── ", childPrefix+"│   ")
		writeNode(b, n.Right, childPrefix+"└── ", childPrefix+"    ")
	default:
		fmt.Fprintf(b, "%s (flip: %s)\n", formatValue(node.Value()), costStyle.Sprint(flip))
	}
}

func formatValue(v bool) string {
	if v {
		return trueStyle.Sprint("true")
	}
	return falseStyle.Sprint("false")
}
