package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dumpsplit"
	"github.com/etnz/dumpsplit/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	input     string
	outputDir string
}

func (*gainsCmd) Name() string { return "gains" }
func (*gainsCmd) Synopsis() string {
	return "capital gains analysis of an already-split sales file"
}
func (*gainsCmd) Usage() string {
	return `dsp gains -i <sales.csv> [-o <output_dir>]

  Computes gain, holding period and short/long term classification for each
  row of a sales CSV file (as written by 'dsp split'). Rows with unparsable
  dates or amounts are skipped and counted, never fatal.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Sales CSV file to analyse.")
	f.StringVar(&c.outputDir, "o", "", "Also write the summary CSV under this directory.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "-i argument is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open sales file %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read sales file %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	report, err := dumpsplit.ComputeGains(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing gains: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputDir != "" {
		path, err := dumpsplit.WriteGainsSummary(report, c.outputDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Gains summary written to %s\n", path)
	}

	printMarkdown(renderer.GainsMarkdown(report))
	return subcommands.ExitSuccess
}
