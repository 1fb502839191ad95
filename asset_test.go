package ptrack

import (
	"math"
	"testing"
)

func TestPercentChange(t *testing.T) {
	testCases := []struct {
		name string
		old  int64
		new  int64
		want float64
	}{
		{name: "gain", old: 100, new: 150, want: 50.0},
		{name: "loss", old: 100, new: 50, want: -50.0},
		{name: "flat", old: 200, new: 200, want: 0.0},
		{name: "doubling", old: 1000, new: 2000, want: 100.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PercentChange(tc.old, tc.new); got != tc.want {
				t.Errorf("PercentChange(%d, %d) = %v, want %v", tc.old, tc.new, got, tc.want)
			}
		})
	}
}

func TestPercentChange_zeroBuyPrice(t *testing.T) {
	// Division by zero must not panic; the non-finite result is surfaced
	// as-is and the renderer decides how to show it.
	if got := PercentChange(0, 100); !math.IsInf(got, 1) {
		t.Errorf("PercentChange(0, 100) = %v, want +Inf", got)
	}
	if got := PercentChange(0, 0); !math.IsNaN(got) {
		t.Errorf("PercentChange(0, 0) = %v, want NaN", got)
	}
}

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		cents int64
		want  string
	}{
		{cents: 0, want: "$0.00"},
		{cents: 12345, want: "$123.45"},
		{cents: 5, want: "$0.05"},
		{cents: -340, want: "-$3.40"},
	}
	for _, tc := range testCases {
		if got := FormatMoney(tc.cents); got != tc.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestCents(t *testing.T) {
	testCases := []struct {
		major float64
		want  int64
	}{
		{major: 0, want: 0},
		{major: 181.12, want: 18112},
		{major: 123.45, want: 12345},
		{major: 10.999, want: 1100},
		{major: 250, want: 25000},
	}
	for _, tc := range testCases {
		if got := Cents(tc.major); got != tc.want {
			t.Errorf("Cents(%v) = %d, want %d", tc.major, got, tc.want)
		}
	}
}

func TestAsset_statusPredicates(t *testing.T) {
	held := Asset{Ticker: "MSFT", BuyPriceCents: 1000, Quantity: 1, Status: Held{CurrentPriceCents: 25000}}
	sold := Asset{Ticker: "AAPL", BuyPriceCents: 30000, Quantity: 1, Status: Sold{SellPriceCents: 40000}}

	if held.Sold() || !held.Held() {
		t.Error("asset with a Held status must report held, not sold")
	}
	if !sold.Sold() || sold.Held() {
		t.Error("asset with a Sold status must report sold, not held")
	}
}

func TestAsset_PercentChange(t *testing.T) {
	// Held assets measure against the market, sold ones against the
	// disposal price; the stale market price of a sold asset is ignored.
	held := Asset{Ticker: "MSFT", BuyPriceCents: 100, Quantity: 1, Status: Held{CurrentPriceCents: 150}}
	if got := held.PercentChange(); got != 50.0 {
		t.Errorf("held.PercentChange() = %v, want 50.0", got)
	}

	sold := Asset{Ticker: "AAPL", BuyPriceCents: 100, Quantity: 1, Status: Sold{SellPriceCents: 50, LastPriceCents: 900}}
	if got := sold.PercentChange(); got != -50.0 {
		t.Errorf("sold.PercentChange() = %v, want -50.0", got)
	}
}
