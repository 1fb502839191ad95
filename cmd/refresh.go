package cmd

import "fmt"

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "re-fetch the current price of every held asset" }

// Execute refreshes prices one asset at a time. A failing ticker keeps its
// previous price and does not abort the batch: whatever could be updated is
// updated, and the failures are reported together afterwards.
func (*refreshCmd) Execute(s *Session) error {
	updated, err := s.Portfolio.Refresh(s.Quoter)
	fmt.Fprintf(s.Out, "refreshed %d assets\n", updated)
	if err != nil {
		s.Log.Warn().Err(err).Msg("refresh incomplete")
	}
	return err
}
