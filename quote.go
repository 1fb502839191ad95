package ptrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
	"github.com/rs/zerolog"
)

// Quoter converts a ticker symbol into its latest trade price in cents.
// An implementation performs exactly one blocking round trip per call, with
// no retries and no caching. Any error means "could not fetch a price for
// this ticker"; callers report it and carry on, they never crash.
type Quoter interface {
	Lookup(ticker string) (priceCents int64, err error)
}

// ErrNoQuote is returned when the source answers but has no usable quote
// bar for the ticker.
var ErrNoQuote = errors.New("no quote available")

// DefaultQuoteTimeout bounds a single lookup round trip so a stuck quote
// server cannot freeze the whole loop.
const DefaultQuoteTimeout = 10 * time.Second

// YahooQuoter fetches the latest regular market price from Yahoo Finance.
// It is the default quote source: it needs no API key.
type YahooQuoter struct {
	log zerolog.Logger
}

// NewYahooQuoter builds a Yahoo quote source whose round trips are bounded
// by timeout.
func NewYahooQuoter(timeout time.Duration, log zerolog.Logger) *YahooQuoter {
	finance.SetHTTPClient(&http.Client{Timeout: timeout})
	return &YahooQuoter{log: log}
}

// Lookup implements Quoter.
func (y *YahooQuoter) Lookup(ticker string) (int64, error) {
	q, err := quote.Get(ticker)
	if err != nil {
		return 0, fmt.Errorf("cannot fetch quote for %q: %w", ticker, err)
	}
	if q == nil {
		return 0, fmt.Errorf("cannot fetch quote for %q: %w", ticker, ErrNoQuote)
	}
	cents := Cents(q.RegularMarketPrice)
	y.log.Debug().Str("ticker", ticker).Int64("cents", cents).Msg("yahoo quote")
	return cents, nil
}

// EODHDQuoter fetches the latest close from the eodhd.com real-time API.
// It requires an API key (https://eodhd.com/).
type EODHDQuoter struct {
	APIKey  string
	BaseURL string // defaults to the public API; tests point it elsewhere
	client  *http.Client
	log     zerolog.Logger
}

const eodhdBaseURL = "https://eodhd.com/api"

// NewEODHDQuoter builds an eodhd.com quote source whose round trips are
// bounded by timeout.
func NewEODHDQuoter(apiKey string, timeout time.Duration, log zerolog.Logger) *EODHDQuoter {
	return &EODHDQuoter{
		APIKey:  apiKey,
		BaseURL: eodhdBaseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Lookup implements Quoter.
func (e *EODHDQuoter) Lookup(ticker string) (int64, error) {
	// https://eodhd.com/api/real-time/AAPL.US?fmt=json&api_token=...
	// {
	//   "code": "AAPL.US",
	//   "timestamp": 1693259100,
	//   "close": 181.12,
	//   ...
	// }
	addr := fmt.Sprintf("%s/real-time/%s?fmt=json&api_token=%s", e.BaseURL, url.PathEscape(ticker), e.APIKey)

	var jobj any
	if err := jwget(e.client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("cannot fetch quote for %q: %w", ticker, err)
	}

	jval, err := jsonpath.Get("$.close", jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot fetch quote for %q: %w", ticker, ErrNoQuote)
	}
	// the API answers the string "NA" instead of a number when the ticker
	// has no quote bar.
	price, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("cannot fetch quote for %q: %w", ticker, ErrNoQuote)
	}

	cents := Cents(price)
	e.log.Debug().Str("ticker", ticker).Int64("cents", cents).Msg("eodhd quote")
	return cents, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// Refresh re-fetches the market price of every held asset through q and
// overwrites it on success. Sold assets are skipped, their market price is
// dead. A ticker that fails keeps its previous price and the pass continues;
// all failures come back joined together once the whole pass is done.
func (p *Portfolio) Refresh(q Quoter) (updated int, err error) {
	var errs error
	for i := range p.assets {
		if _, ok := p.assets[i].Status.(Held); !ok {
			continue
		}
		cents, lerr := q.Lookup(p.assets[i].Ticker)
		if lerr != nil {
			errs = errors.Join(errs, fmt.Errorf("could not refresh %q: %w", p.assets[i].Ticker, lerr))
			continue
		}
		p.assets[i].Status = Held{CurrentPriceCents: cents}
		updated++
	}
	return updated, errs
}
