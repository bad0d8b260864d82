// Package cmd implements the CLI application to split heterogeneous dumps.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the dsp subcommands in display order.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&splitCmd{},
	&gainsCmd{},
	&kindsCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown on the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
