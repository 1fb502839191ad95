// Package ptrack implements a small interactive portfolio tracker: an
// in-memory collection of purchased positions, their derived performance
// figures, a JSON persistence round-trip and a pluggable price lookup.
//
// All monetary amounts are integer cents to keep the arithmetic exact;
// floating point only appears in the percent-change calculation and in the
// conversion from a quote source's major-unit price.
package ptrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle of an asset. An asset is either still held, in
// which case its value tracks the market, or sold at a fixed disposal price.
// There is no transition back from Sold.
type Status interface {
	// MarkPriceCents is the price performance is measured against: the
	// latest market price while held, the disposal price once sold.
	MarkPriceCents() int64
}

// Held is the status of an asset that has not been sold.
type Held struct {
	CurrentPriceCents int64 // latest known market price
}

func (h Held) MarkPriceCents() int64 { return h.CurrentPriceCents }

// Sold is the status of an asset disposed at a fixed price.
type Sold struct {
	SellPriceCents int64
	// LastPriceCents is the last market price seen before disposal. It plays
	// no role in any calculation, it is only retained for the books.
	LastPriceCents int64
}

func (s Sold) MarkPriceCents() int64 { return s.SellPriceCents }

// Asset is one purchased position.
type Asset struct {
	Ticker        string // opaque symbol, not validated against any exchange
	BuyPriceCents int64  // total cost basis paid, immutable after creation
	Quantity      int64  // number of units, at least 1
	Status        Status
}

// Sold reports whether the asset has been disposed.
func (a Asset) Sold() bool {
	_, ok := a.Status.(Sold)
	return ok
}

// Held reports whether the asset is still held.
func (a Asset) Held() bool { return !a.Sold() }

// PercentChange is the asset's relative performance: against the current
// market price while held, against the disposal price once sold.
func (a Asset) PercentChange() float64 {
	return PercentChange(a.BuyPriceCents, a.Status.MarkPriceCents())
}

// PercentChange returns the relative change from old to new in percent,
// computed in floating point. When old is zero the result is not finite
// (±Inf, or NaN when both are zero); callers decide how to present that.
func PercentChange(oldCents, newCents int64) float64 {
	return (float64(newCents) - float64(oldCents)) / float64(oldCents) * 100
}

// FormatMoney renders an amount of cents as dollars with exactly two
// fractional digits: FormatMoney(12345) == "$123.45".
func FormatMoney(cents int64) string {
	return money.New(cents, money.USD).Display()
}

// Cents converts a price in major units into integer cents, rounding halves
// away from zero: Cents(181.125) == 18113.
func Cents(major float64) int64 {
	return decimal.NewFromFloat(major).Shift(2).Round(0).IntPart()
}
