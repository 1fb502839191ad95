// Package renderer turns portfolio values into markdown reports. It only
// formats: every number it shows is computed by the ptrack package.
package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/jgrall/ptrack"
)

// Assets renders the asset table in insertion order. Sold assets show their
// disposal price and no market price; held assets the other way around.
func Assets(assets []ptrack.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")
	if len(assets) == 0 {
		doc.PlainText("The portfolio is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"#", "Ticker", "Quantity", "Buy Price", "Current Price", "Percent Change", "Sell Price"},
	}
	for i, a := range assets {
		current := "N/A (sold)"
		sell := "N/A (currently held)"
		switch st := a.Status.(type) {
		case ptrack.Held:
			current = ptrack.FormatMoney(st.CurrentPriceCents)
		case ptrack.Sold:
			sell = ptrack.FormatMoney(st.SellPriceCents)
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			a.Ticker,
			strconv.FormatInt(a.Quantity, 10),
			ptrack.FormatMoney(a.BuyPriceCents),
			current,
			formatPercent(a.PercentChange()),
			sell,
		})
	}
	doc.Table(table)

	return doc.String()
}

// formatPercent renders a percentage with two digits and an explicit sign.
// A non-finite value (zero buy price) renders as N/A rather than Inf.
func formatPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%+.2f%%", p)
}
