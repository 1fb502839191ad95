package cmd

import "github.com/jgrall/ptrack/renderer"

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "totals and unrealized gain/loss over held assets" }

func (*summaryCmd) Execute(s *Session) error {
	printMarkdown(s.Out, renderer.Summary(s.Portfolio.Summarize()))
	return nil
}
