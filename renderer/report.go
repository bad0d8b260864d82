// Package renderer produces the markdown reports displayed by the dsp
// command-line tool.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/dumpsplit"
)

// RunMarkdown renders the outcome of a run: files written, rows skipped per
// section, and whether the gains computation ran.
func RunMarkdown(report *dumpsplit.RunReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Dump Split Report\n\n")

	if len(report.Files) == 0 {
		fmt.Fprintln(&b, "No recognized sections found. No files written.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Section | File | Rows | Note |")
	fmt.Fprintln(&b, "|:---|:---|---:|:---|")
	for _, f := range report.Files {
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", f.Kind, f.Path, f.Rows, f.Note)
	}
	fmt.Fprintln(&b)

	if len(report.SkippedRows) > 0 {
		fmt.Fprint(&b, "## Skipped Rows\n\n")
		names := make([]string, 0, len(report.SkippedRows))
		for name := range report.SkippedRows {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "* %s: %d malformed row(s) dropped\n", name, report.SkippedRows[name])
		}
		fmt.Fprintln(&b)
	}

	for _, name := range report.RawFallbacks {
		fmt.Fprintf(&b, "Section %s did not parse and was written as raw text.\n\n", name)
	}

	if report.Gains != nil {
		fmt.Fprint(&b, GainsMarkdown(report.Gains))
	}
	return b.String()
}
