package cmd

import (
	"fmt"
	"os"

	"github.com/jgrall/ptrack"
)

type dumpCmd struct{}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "write the portfolio to a file" }

func (*dumpCmd) Execute(s *Session) error {
	name, err := s.Prompt("file name: ")
	if err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", name, err)
	}
	defer f.Close()

	if err := ptrack.EncodePortfolio(f, s.Portfolio); err != nil {
		return fmt.Errorf("cannot dump portfolio to %q: %w", name, err)
	}

	fmt.Fprintf(s.Out, "dumped %d assets to %s\n", s.Portfolio.Len(), name)
	return nil
}
