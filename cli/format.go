package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/fatih/color"

	"github.com/raako71/RClone-Diff/compare"
	"github.com/raako71/RClone-Diff/delta"
)

var (
	newColor      = color.New(color.FgGreen)
	modifiedColor = color.New(color.FgYellow)
	deletedColor  = color.New(color.FgRed)
	dimColor      = color.New(color.FgHiBlack)
	successColor  = color.New(color.FgGreen, color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
)

func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

func PrintWarning(msg string) {
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

func statusColor(status delta.Status) *color.Color {
	switch status {
	case delta.StatusNew:
		return newColor
	case delta.StatusModified:
		return modifiedColor
	case delta.StatusDeleted:
		return deletedColor
	}
	return dimColor
}

// PrintTree renders the aggregated delta with two-space indentation per
// depth level, children in lexicographic order.
func PrintTree(node *delta.Node, depth int) {
	for _, child := range node.SortedChildren() {
		indent := strings.Repeat("  ", depth)

		if child.IsLeaf() {
			_, _ = statusColor(child.Status).Printf("%s%s  [%s, %s]\n",
				indent, child.Name, child.Status, bytefmt.ByteSize(child.Size))
		} else {
			fmt.Printf("%s%s/  [%s]\n", indent, child.Name, bytefmt.ByteSize(child.Size))
		}

		PrintTree(child, depth+1)
	}
}

// PrintSummary prints the per-status counts and byte totals of one
// comparison run.
func PrintSummary(result *compare.Result) {
	fmt.Printf("Compared %s against %s in %s\n",
		result.Source.String(), result.Destination.String(), result.Duration.Round(time.Millisecond))
	fmt.Printf("Listed %d source and %d destination entries\n",
		result.SourceEntries, result.DestinationEntries)

	_, _ = newColor.Printf("  %-10s %6d files  %8s\n", delta.StatusNew, result.New, bytefmt.ByteSize(result.NewBytes))
	_, _ = modifiedColor.Printf("  %-10s %6d files  %8s\n", delta.StatusModified, result.Modified, bytefmt.ByteSize(result.ModifiedBytes))
	_, _ = deletedColor.Printf("  %-10s %6d files  %8s\n", delta.StatusDeleted, result.Deleted, bytefmt.ByteSize(result.DeletedBytes))
	_, _ = dimColor.Printf("  %-10s %6d files\n", delta.StatusUnchanged, result.Unchanged)

	fmt.Printf("Aggregated delta size: %s\n", bytefmt.ByteSize(result.TotalBytes))
}
