package cmd

import (
	"fmt"
	"strconv"

	"github.com/jgrall/ptrack"
)

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "mark a held asset as sold at a disposal price" }

func (*sellCmd) Execute(s *Session) error {
	raw, err := s.Prompt("asset number (see assets): ")
	if err != nil {
		return err
	}
	n, cerr := strconv.Atoi(raw)
	if cerr != nil || n < 1 {
		return fmt.Errorf("%q is not a valid asset number", raw)
	}

	price, err := s.promptCents("sell price (cents): ")
	if err != nil {
		return err
	}

	if err := s.Portfolio.Sell(n-1, price); err != nil {
		return err
	}

	a, _ := s.Portfolio.At(n - 1)
	fmt.Fprintf(s.Out, "sold %s at %s\n", a.Ticker, ptrack.FormatMoney(price))
	return nil
}
