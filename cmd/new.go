package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jgrall/ptrack"
)

type newCmd struct{}

func (*newCmd) Name() string { return "new" }
func (*newCmd) Synopsis() string {
	return `add an asset: ticker, cost, sell price or "held", quantity`
}

// Execute prompts for the asset fields, fetches the current price and
// appends the asset. Any parse or lookup failure discards the input and
// leaves the portfolio unchanged.
func (*newCmd) Execute(s *Session) error {
	ticker, err := s.Prompt("ticker: ")
	if err != nil {
		return err
	}
	if ticker == "" {
		return errors.New("ticker must not be empty")
	}

	buy, err := s.promptCents("buy price (cents): ")
	if err != nil {
		return err
	}

	// The literal word "held" (exact match) means the asset is not sold;
	// anything else must parse as a sell price in cents.
	rawSell, err := s.Prompt(`sell price (cents), or "held": `)
	if err != nil {
		return err
	}
	var sell *int64
	if rawSell != "held" {
		v, perr := strconv.ParseInt(rawSell, 10, 64)
		if perr != nil || v < 0 {
			return fmt.Errorf(`%q is not a valid sell price: expected an amount in cents or the word "held"`, rawSell)
		}
		sell = &v
	}

	qty, err := s.promptQuantity("quantity: ")
	if err != nil {
		return err
	}

	current, err := s.Quoter.Lookup(ticker)
	if err != nil {
		return fmt.Errorf("could not fetch a price for %q: %w", ticker, err)
	}

	a := ptrack.Asset{Ticker: ticker, BuyPriceCents: buy, Quantity: qty}
	if sell == nil {
		a.Status = ptrack.Held{CurrentPriceCents: current}
	} else {
		a.Status = ptrack.Sold{SellPriceCents: *sell, LastPriceCents: current}
	}
	s.Portfolio.Append(a)

	fmt.Fprintf(s.Out, "added %s, current price %s\n", ticker, ptrack.FormatMoney(current))
	return nil
}
