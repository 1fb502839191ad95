package ptrack

import "testing"

func TestPortfolio_Summarize(t *testing.T) {
	testCases := []struct {
		name   string
		assets []Asset
		want   Summary
	}{
		{
			name: "empty portfolio",
			want: Summary{},
		},
		{
			name: "loss stays negative",
			assets: []Asset{
				{Ticker: "MSFT", BuyPriceCents: 1000, Quantity: 1, Status: Held{CurrentPriceCents: 400}},
			},
			want: Summary{NetBuyCents: 1000, MarketValueCents: 400, GainLossCents: -600, HeldCount: 1},
		},
		{
			// a market value above the cost basis must come out as a
			// positive gain, never wrap around
			name: "gain is a positive amount",
			assets: []Asset{
				{Ticker: "MSFT", BuyPriceCents: 1000, Quantity: 1, Status: Held{CurrentPriceCents: 25000}},
			},
			want: Summary{NetBuyCents: 1000, MarketValueCents: 25000, GainLossCents: 24000, HeldCount: 1},
		},
		{
			name: "sold assets are excluded",
			assets: []Asset{
				{Ticker: "MSFT", BuyPriceCents: 1000, Quantity: 1, Status: Held{CurrentPriceCents: 2000}},
				{Ticker: "AAPL", BuyPriceCents: 30000, Quantity: 1, Status: Sold{SellPriceCents: 40000, LastPriceCents: 10000000}},
			},
			want: Summary{NetBuyCents: 1000, MarketValueCents: 2000, GainLossCents: 1000, HeldCount: 1, SoldCount: 1},
		},
		{
			name: "quantity multiplies cost and value",
			assets: []Asset{
				{Ticker: "VT", BuyPriceCents: 100, Quantity: 10, Status: Held{CurrentPriceCents: 150}},
				{Ticker: "VT", BuyPriceCents: 100, Quantity: 2, Status: Held{CurrentPriceCents: 150}},
			},
			want: Summary{NetBuyCents: 1200, MarketValueCents: 1800, GainLossCents: 600, HeldCount: 2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPortfolio()
			p.Append(tc.assets...)
			if got := p.Summarize(); got != tc.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPortfolio_Sell(t *testing.T) {
	p := NewPortfolio()
	p.Append(Asset{Ticker: "MSFT", BuyPriceCents: 1000, Quantity: 2, Status: Held{CurrentPriceCents: 1500}})

	if err := p.Sell(0, 1800); err != nil {
		t.Fatalf("Sell() error = %v", err)
	}

	a, ok := p.At(0)
	if !ok {
		t.Fatal("At(0) reported no asset")
	}
	sold, ok := a.Status.(Sold)
	if !ok {
		t.Fatalf("asset status = %T, want Sold", a.Status)
	}
	if sold.SellPriceCents != 1800 {
		t.Errorf("SellPriceCents = %d, want 1800", sold.SellPriceCents)
	}
	if sold.LastPriceCents != 1500 {
		t.Errorf("LastPriceCents = %d, want 1500 (market price before disposal)", sold.LastPriceCents)
	}

	// Once sold, the asset leaves every summary figure.
	if got := p.Summarize(); got.HeldCount != 0 || got.SoldCount != 1 || got.MarketValueCents != 0 {
		t.Errorf("Summarize() after sell = %+v, want no held contribution", got)
	}

	// No Sold -> Held transition, and no double sell.
	if err := p.Sell(0, 2000); err == nil {
		t.Error("Sell() on a sold asset must fail")
	}
	if err := p.Sell(5, 2000); err == nil {
		t.Error("Sell() out of range must fail")
	}
}

func TestPortfolio_Assets_isACopy(t *testing.T) {
	p := NewPortfolio()
	p.Append(Asset{Ticker: "MSFT", BuyPriceCents: 1000, Quantity: 1, Status: Held{CurrentPriceCents: 1500}})

	view := p.Assets()
	view[0].Ticker = "XXXX"

	if a, _ := p.At(0); a.Ticker != "MSFT" {
		t.Errorf("mutating the Assets() view changed the portfolio: ticker = %q", a.Ticker)
	}
}
