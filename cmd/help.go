package cmd

import (
	"fmt"
	"strings"
)

type helpCmd struct{}

func (*helpCmd) Name() string     { return "help" }
func (*helpCmd) Synopsis() string { return "show this command list" }

func (*helpCmd) Execute(s *Session) error {
	var b strings.Builder
	fmt.Fprintln(&b, "# Commands")
	fmt.Fprintln(&b)
	for _, c := range Commands {
		fmt.Fprintf(&b, "- **%s**: %s\n", c.Name(), c.Synopsis())
	}
	fmt.Fprintf(&b, "- **exit**: leave the tracker\n")
	printMarkdown(s.Out, b.String())
	return nil
}
