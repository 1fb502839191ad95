package ptrack

import "fmt"

// Portfolio is an ordered sequence of assets. Insertion order is preserved
// (it drives report row order) and duplicate tickers are allowed: there is
// no per-asset identity beyond the position in the sequence.
//
// A portfolio is owned by a single command loop, so none of its methods are
// safe for concurrent use.
type Portfolio struct {
	assets []Asset
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// Append adds assets at the end of the portfolio.
func (p *Portfolio) Append(assets ...Asset) {
	p.assets = append(p.assets, assets...)
}

// Len returns the number of assets, sold ones included.
func (p *Portfolio) Len() int { return len(p.assets) }

// Assets returns a copy of the assets in insertion order. Mutations go
// through the portfolio methods, never through this slice.
func (p *Portfolio) Assets() []Asset {
	out := make([]Asset, len(p.assets))
	copy(out, p.assets)
	return out
}

// At returns the i-th asset, 0-based.
func (p *Portfolio) At(i int) (Asset, bool) {
	if i < 0 || i >= len(p.assets) {
		return Asset{}, false
	}
	return p.assets[i], true
}

// Sell moves the i-th asset from Held to Sold at the given disposal price.
// Selling an already sold asset is an error; there is no way back to Held.
func (p *Portfolio) Sell(i int, sellPriceCents int64) error {
	if i < 0 || i >= len(p.assets) {
		return fmt.Errorf("no asset number %d", i+1)
	}
	held, ok := p.assets[i].Status.(Held)
	if !ok {
		return fmt.Errorf("asset %d (%s) is already sold", i+1, p.assets[i].Ticker)
	}
	p.assets[i].Status = Sold{
		SellPriceCents: sellPriceCents,
		LastPriceCents: held.CurrentPriceCents,
	}
	return nil
}

// Summary aggregates the held side of a portfolio. Every amount is signed
// so a market value above the cost basis comes out as a positive gain
// instead of wrapping around.
type Summary struct {
	NetBuyCents      int64 // total cost basis of held assets
	MarketValueCents int64 // total market value of held assets
	GainLossCents    int64 // MarketValueCents - NetBuyCents, positive is a gain
	HeldCount        int
	SoldCount        int
}

// Summarize computes the summary over held assets only. Once an asset is
// sold, neither its disposal price nor its stale market price contributes
// to any figure; it is only counted.
func (p *Portfolio) Summarize() Summary {
	var s Summary
	for _, a := range p.assets {
		held, ok := a.Status.(Held)
		if !ok {
			s.SoldCount++
			continue
		}
		s.HeldCount++
		s.NetBuyCents += a.BuyPriceCents * a.Quantity
		s.MarketValueCents += held.CurrentPriceCents * a.Quantity
	}
	s.GainLossCents = s.MarketValueCents - s.NetBuyCents
	return s
}
