package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jgrall/ptrack"
)

// Summary renders the held-side aggregate of the portfolio.
func Summary(s ptrack.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	table := md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Net Purchase Cost", ptrack.FormatMoney(s.NetBuyCents)},
			{"Market Value", ptrack.FormatMoney(s.MarketValueCents)},
			{"Unrealized Gain/Loss", signedMoney(s.GainLossCents)},
		},
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("%d held, %d sold. Sold assets are excluded from the figures above.", s.HeldCount, s.SoldCount))

	return doc.String()
}

// signedMoney keeps the sign visible on gains: "+$12.00", "-$3.40".
func signedMoney(cents int64) string {
	if cents > 0 {
		return "+" + ptrack.FormatMoney(cents)
	}
	return ptrack.FormatMoney(cents)
}
