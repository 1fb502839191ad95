package ptrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// This file persists a portfolio as a single human-readable JSON document:
// an object with one "assets" list, one object per asset. The sellPriceCents
// field is present exactly when the asset is sold. The quantity field is
// optional on read so files written before it existed still load, and always
// written so dumps are in canonical form.

// jasset is the persisted form of an Asset.
type jasset struct {
	Ticker            string `json:"ticker"`
	BuyPriceCents     int64  `json:"buyPriceCents"`
	CurrentPriceCents int64  `json:"currentPriceCents"`
	SellPriceCents    *int64 `json:"sellPriceCents,omitempty"`
	Quantity          *int64 `json:"quantity,omitempty"`
}

// jportfolio is the persisted form of a Portfolio.
type jportfolio struct {
	Assets []jasset `json:"assets"`
}

// EncodePortfolio writes the portfolio as an indented JSON document.
// The output, decoded again, reproduces the portfolio field for field.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	doc := jportfolio{Assets: make([]jasset, 0, p.Len())}
	for _, a := range p.assets {
		qty := a.Quantity
		ja := jasset{
			Ticker:        a.Ticker,
			BuyPriceCents: a.BuyPriceCents,
			Quantity:      &qty,
		}
		switch st := a.Status.(type) {
		case Held:
			ja.CurrentPriceCents = st.CurrentPriceCents
		case Sold:
			sell := st.SellPriceCents
			ja.SellPriceCents = &sell
			ja.CurrentPriceCents = st.LastPriceCents
		}
		doc.Assets = append(doc.Assets, ja)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal portfolio: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("persist error: cannot write portfolio: %w", err)
	}
	return nil
}

// DecodePortfolio reads a JSON document produced by EncodePortfolio and
// returns a fresh portfolio. On any error the returned portfolio is nil, so
// a failed load never disturbs the portfolio the caller already has.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var doc jportfolio
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse error: not a valid portfolio document: %w", err)
	}

	p := NewPortfolio()
	for i, ja := range doc.Assets {
		a, err := ja.asset()
		if err != nil {
			return nil, fmt.Errorf("parse error: asset %d: %w", i+1, err)
		}
		p.Append(a)
	}
	return p, nil
}

// asset validates the persisted form and converts it into the model.
func (ja jasset) asset() (Asset, error) {
	if ja.Ticker == "" {
		return Asset{}, errors.New("ticker must not be empty")
	}
	if ja.BuyPriceCents < 0 {
		return Asset{}, fmt.Errorf("buyPriceCents must not be negative, got %d", ja.BuyPriceCents)
	}
	if ja.CurrentPriceCents < 0 {
		return Asset{}, fmt.Errorf("currentPriceCents must not be negative, got %d", ja.CurrentPriceCents)
	}

	// Files written before the quantity field existed behave as one unit.
	qty := int64(1)
	if ja.Quantity != nil {
		if *ja.Quantity < 1 {
			return Asset{}, fmt.Errorf("quantity must be positive, got %d", *ja.Quantity)
		}
		qty = *ja.Quantity
	}

	a := Asset{Ticker: ja.Ticker, BuyPriceCents: ja.BuyPriceCents, Quantity: qty}
	if ja.SellPriceCents == nil {
		a.Status = Held{CurrentPriceCents: ja.CurrentPriceCents}
		return a, nil
	}
	if *ja.SellPriceCents < 0 {
		return Asset{}, fmt.Errorf("sellPriceCents must not be negative, got %d", *ja.SellPriceCents)
	}
	a.Status = Sold{SellPriceCents: *ja.SellPriceCents, LastPriceCents: ja.CurrentPriceCents}
	return a, nil
}
