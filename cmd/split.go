package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dumpsplit"
	"github.com/etnz/dumpsplit/renderer"
	"github.com/google/subcommands"
)

// splitCmd holds the flags for the 'split' subcommand.
type splitCmd struct {
	outputDir string
}

func (*splitCmd) Name() string { return "split" }
func (*splitCmd) Synopsis() string {
	return "split a dump file into one output file per detected section"
}
func (*splitCmd) Usage() string {
	return `dsp split [-o <output_dir>] <dump_file>

  Scans the dump line by line, writes each recognized section as CSV or JSON
  under the output directory, and derives a capital-gains summary when the
  dump contains a sales section. A dump with no recognized section is valid
  input and produces no files.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "out", "Directory receiving the output files, created if absent.")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "a dump file is required as argument")
		return subcommands.ExitUsageError
	}

	report, err := dumpsplit.Run(f.Arg(0), c.outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error splitting dump: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RunMarkdown(report))
	return subcommands.ExitSuccess
}
