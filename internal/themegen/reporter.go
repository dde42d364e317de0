package themegen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// failurePrefix starts every generation failure message.
const failurePrefix = "Theme generation failed:"

// FormatFailure renders a generation error for logs. Multi-line errors start
// on their own line so validation output keeps its layout.
func FormatFailure(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "\n") {
		return failurePrefix + "\n" + msg
	}
	return failurePrefix + " " + msg
}

// ShouldUseColors decides whether terminal output gets colors.
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// FORCE_COLOR is set by GitHub Actions and most CI systems
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Reporter prints generation results for the CLI.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// PrintResult prints a one-line outcome plus per-namespace counts.
func (r *Reporter) PrintResult(result *WriteResult) {
	location := RenderStyle(StyleCyan, result.OutputPath, r.useColors)
	if result.Written {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "✓ Theme file created successfully at:", r.useColors), location)
	} else {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGray, "✓ Theme file already up to date:", r.useColors), location)
	}

	if result.Theme == nil {
		return
	}
	for _, ns := range namespaceOrder {
		fmt.Fprintf(r.w, "  %-12s %d\n", ns+":", result.Theme.Count(ns))
	}
}

// PrintFailure prints a command error. Multi-line errors such as schema
// reports start on the line after the marker.
func (r *Reporter) PrintFailure(err error) {
	marker := RenderStyle(StyleRed, "✗", r.useColors)
	msg := err.Error()
	if strings.Contains(msg, "\n") {
		fmt.Fprintf(r.w, "%s\n%s\n", marker, msg)
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", marker, msg)
}

// PrintDiff prints a line diff between the previous and new theme.
func (r *Reporter) PrintDiff(result *WriteResult) {
	if !result.Written {
		return
	}
	fmt.Fprint(r.w, RenderDiff(result.Previous, result.Content, r.useColors))
}

// RenderDiff returns a unified-style line diff ("+" added, "-" removed).
// Unchanged lines are omitted.
func RenderDiff(previous, current string, useColors bool) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(previous, current)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		var (
			marker string
			style  = StyleGreen
		)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			marker = "+ "
		case diffmatchpatch.DiffDelete:
			marker = "- "
			style = StyleRed
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(RenderStyle(style, marker+strings.TrimSuffix(line, "\n"), useColors))
			out.WriteString("\n")
		}
	}
	return out.String()
}
