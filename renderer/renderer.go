// Package renderer turns a portfolio report into formatted table rows, bar graphs and a banner.
package renderer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/coinfolio"
	"github.com/shopspring/decimal"
)

// Report is the rendering of a PortfolioReport: every value is a formatted string,
// money values are prefixed with the currency symbol.
type Report struct {
	Currency string
	Header   []string
	Rows     []Row // in report order
	Bars     []Bar // in report order
	Total    string
}

// Row is a table row of a valuated asset.
type Row struct {
	Rank        string
	Coin        string
	Price       string
	Owned       string
	NetWorth    string
	Volume24h   string
	MarketCap   string
	Change1h    string
	Change24h   string
	Change7d    string
	LastUpdated string
}

// Cells returns the row cells in Header order.
func (r Row) Cells() []string {
	return []string{
		r.Rank,
		r.Coin,
		r.Price,
		r.Owned,
		r.NetWorth,
		r.Volume24h,
		r.MarketCap,
		r.Change1h,
		r.Change24h,
		r.Change7d,
		r.LastUpdated,
	}
}

// Bar is a labelled bar graph of an asset weight, Percent is in [0, 100].
type Bar struct {
	Label   string
	Percent int
}

// Header returns the table header for a display currency.
func Header(currency string) []string {
	return []string{
		"Rank",
		"Coin",
		strings.ToUpper(currency) + " Price",
		"Coins Owned",
		"Net Worth",
		"24 Hour Volume",
		"Market Cap",
		"1 Hour",
		"24 Hours",
		"7 Days",
		"Last Updated",
	}
}

// Render formats the report in currency. Relative times are computed from now.
func Render(r *coinfolio.PortfolioReport, currency string, now time.Time) *Report {
	sym := coinfolio.CurrencySymbol(currency)
	out := &Report{
		Currency: strings.ToUpper(currency),
		Header:   Header(currency),
		Rows:     make([]Row, 0, len(r.Assets)),
		Bars:     make([]Bar, 0, len(r.Assets)),
		Total:    amount(sym, r.Total),
	}
	for _, a := range r.Assets {
		out.Rows = append(out.Rows, Row{
			Rank:        strconv.Itoa(a.Rank),
			Coin:        a.Name,
			Price:       amount(sym, a.Price),
			Owned:       coinfolio.InsertThousandsSeparators(a.Quantity.String()),
			NetWorth:    amount(sym, a.NetWorth),
			Volume24h:   largeAmount(sym, a.Volume24h),
			MarketCap:   largeAmount(sym, a.MarketCap),
			Change1h:    a.Change1h.String(),
			Change24h:   a.Change24h.String(),
			Change7d:    a.Change7d.String(),
			LastUpdated: a.LastUpdated.Since(now),
		})
		out.Bars = append(out.Bars, Bar{
			Label:   fmt.Sprintf("%s %s", a.Name, amount(sym, a.NetWorth)),
			Percent: a.Weight,
		})
	}
	return out
}

// amount formats a money value with all its digits.
func amount(sym string, d decimal.Decimal) string {
	return sym + coinfolio.InsertThousandsSeparators(d.String())
}

// largeAmount formats a volume or a market cap, padded to two decimal places.
func largeAmount(sym string, d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return sym + coinfolio.InsertThousandsSeparators(coinfolio.EnsureTwoDecimalPlaces(d.Decimal.String()))
}
