package cmd

import "github.com/jgrall/ptrack/renderer"

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list every asset with its performance" }

func (*assetsCmd) Execute(s *Session) error {
	printMarkdown(s.Out, renderer.Assets(s.Portfolio.Assets()))
	return nil
}
