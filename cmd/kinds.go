package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/dumpsplit"
	"github.com/google/subcommands"
)

type kindsCmd struct{}

func (*kindsCmd) Name() string     { return "kinds" }
func (*kindsCmd) Synopsis() string { return "list the recognizable section kinds" }
func (*kindsCmd) Usage() string {
	return `dsp kinds

  Lists every registered section kind, its output rendering and the
  recognizer that detects its header line, in match priority order.
`
}

func (c *kindsCmd) SetFlags(f *flag.FlagSet) {}

func (c *kindsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	fmt.Fprint(&b, "# Section Kinds\n\n")
	fmt.Fprintln(&b, "| Kind | Output | Recognizer |")
	fmt.Fprintln(&b, "|:---|:---|:---|")
	for _, k := range dumpsplit.Kinds() {
		fmt.Fprintf(&b, "| %s | %s | `%s` |\n", k.Name, k.Output, k.Recognizer())
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
