package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/dumpsplit"
)

// GainsMarkdown renders a capital-gains report as a markdown table, one row
// per sale plus a total line.
func GainsMarkdown(report *dumpsplit.GainsReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "## Capital Gains\n\n")
	fmt.Fprintln(&b, "| Asset | Received | Sold | Cost Basis | Proceeds | Gain | Days Held | Term |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|:---|")

	for _, rec := range report.Records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %d | %s |\n",
			rec.Asset,
			rec.Received.String(),
			rec.Sold.String(),
			rec.CostBasis.String(),
			rec.Proceeds.String(),
			rec.Gain.SignedString(),
			rec.DaysHeld,
			rec.Term(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | | **%s** | | |\n\n", report.Total.SignedString())

	if report.Skipped > 0 {
		fmt.Fprintf(&b, "%d row(s) skipped (unparsable date or amount).\n", report.Skipped)
	}
	return b.String()
}
