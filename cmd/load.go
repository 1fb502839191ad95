package cmd

import (
	"fmt"
	"os"

	"github.com/jgrall/ptrack"
)

type loadCmd struct{}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "replace the portfolio with the content of a file" }

// Execute reads and parses a portfolio file. The in-memory portfolio is
// replaced only after the whole file decoded cleanly; any I/O or parse
// failure leaves it exactly as it was.
func (*loadCmd) Execute(s *Session) error {
	name, err := s.Prompt("file name: ")
	if err != nil {
		return err
	}

	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("cannot open %q for reading: %w", name, err)
	}
	defer f.Close()

	p, err := ptrack.DecodePortfolio(f)
	if err != nil {
		return fmt.Errorf("cannot load portfolio from %q: %w", name, err)
	}

	s.Portfolio = p
	fmt.Fprintf(s.Out, "loaded %d assets from %s\n", p.Len(), name)
	return nil
}
