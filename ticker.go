package coinfolio

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawTicker is one entry of a ticker response, kept as raw JSON fields.
//
// Two shapes are supported:
//   - the legacy public ticker: a flat record (id, rank, price, volume_24h, market_cap,
//     percent_change_*, last_updated as epoch seconds). When converted, price fields are
//     suffixed by the currency (price_eur, 24h_volume_eur, market_cap_eur). Numbers are
//     often JSON strings.
//   - the pro listings: a record (slug, cmc_rank, name) with a 'quote' object keyed by
//     currency code, each holding the price fields and a formatted last_updated.
type RawTicker map[string]json.RawMessage

// SettlementCurrency is the currency of the unsuffixed price fields of the legacy ticker.
const SettlementCurrency = "USD"

// MultiCurrency reports whether the entry holds per currency quotes.
func (r RawTicker) MultiCurrency() bool {
	_, ok := r["quote"]
	return ok
}

// field decodes the first present and non null key into v.
// It returns false if none of the keys is set.
func (r RawTicker) field(v any, keys ...string) (bool, error) {
	for _, k := range keys {
		b, ok := r[k]
		if !ok || string(b) == "null" {
			continue
		}
		if err := json.Unmarshal(b, v); err != nil {
			return false, fmt.Errorf("invalid %q: %w", k, err)
		}
		return true, nil
	}
	return false, nil
}

// LastUpdated is the time of the last ticker update. Sources either report an
// instant or an already formatted timestamp.
type LastUpdated struct {
	Time time.Time
	Text string
}

// Since renders the last update relative to now ("5 minutes ago"). Formatted
// timestamps are returned as is, and a missing one as "-".
func (u LastUpdated) Since(now time.Time) string {
	switch {
	case !u.Time.IsZero():
		return RelativeTimeSince(u.Time, now) + " ago"
	case u.Text != "":
		return u.Text
	default:
		return "-"
	}
}

// AssetQuote is the canonical market snapshot of an asset in the display currency.
type AssetQuote struct {
	ID          string // key in the Holdings
	Name        string // display name
	Rank        int    // 1 is the largest market cap
	Price       decimal.Decimal
	Volume24h   decimal.NullDecimal
	MarketCap   decimal.NullDecimal
	Change1h    Percent
	Change24h   Percent
	Change7d    Percent
	LastUpdated LastUpdated
}

// Normalize converts a raw ticker entry into an AssetQuote for the currency.
//
// The entry shape is detected from the presence of a 'quote' field. It fails with
// ErrMissingCurrencyData if the entry has no price for the currency, and with
// ErrDataSource if the entry is invalid.
func Normalize(raw RawTicker, currency string) (AssetQuote, error) {
	currency = strings.ToUpper(currency)
	if raw.MultiCurrency() {
		return normalizeListing(raw, currency)
	}
	return normalizeTicker(raw, currency)
}

// NormalizeAll normalizes each entry in order. It stops on the first error, a report
// cannot be made of a partial list.
func NormalizeAll(raws []RawTicker, currency string) ([]AssetQuote, error) {
	quotes := make([]AssetQuote, 0, len(raws))
	for _, raw := range raws {
		q, err := Normalize(raw, currency)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func normalizeTicker(raw RawTicker, currency string) (q AssetQuote, err error) {
	suffix := "_" + strings.ToLower(currency)

	if ok, err := raw.field(&q.ID, "id"); err != nil || !ok || q.ID == "" {
		return q, invalidTicker("?", err, "missing id")
	}
	q.Name = q.ID
	if q.Rank, err = rank(raw, "rank"); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}

	// Unsuffixed fields are in the settlement currency only.
	keys := func(names ...string) []string {
		if strings.EqualFold(currency, SettlementCurrency) {
			return names
		}
		return names[:len(names)-1]
	}

	var price decimal.Decimal
	ok, err := raw.field(&price, keys("price"+suffix, "price")...)
	if err != nil {
		return q, invalidTicker(q.ID, err, "")
	}
	if !ok {
		return q, fmt.Errorf("%w: %s has no %s price", ErrMissingCurrencyData, q.ID, currency)
	}
	if q.Price, err = checkPrice(price); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}

	if q.Volume24h, err = nullDecimal(raw, keys("24h_volume"+suffix, "volume_24h"+suffix, "volume_24h")...); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}
	if q.MarketCap, err = nullDecimal(raw, keys("market_cap"+suffix, "market_cap")...); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}
	if err = changes(raw, &q); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}

	var epoch decimal.Decimal
	if ok, err := raw.field(&epoch, "last_updated"); err != nil {
		return q, invalidTicker(q.ID, err, "")
	} else if ok {
		q.LastUpdated.Time = time.Unix(epoch.IntPart(), 0).UTC()
	}
	return q, nil
}

// listingQuote is the per currency record of a pro listing.
type listingQuote struct {
	Price            decimal.NullDecimal `json:"price"`
	Volume24h        decimal.NullDecimal `json:"volume_24h"`
	MarketCap        decimal.NullDecimal `json:"market_cap"`
	PercentChange1h  Percent             `json:"percent_change_1h"`
	PercentChange24h Percent             `json:"percent_change_24h"`
	PercentChange7d  Percent             `json:"percent_change_7d"`
	LastUpdated      string              `json:"last_updated"`
}

func normalizeListing(raw RawTicker, currency string) (q AssetQuote, err error) {
	if ok, err := raw.field(&q.ID, "slug"); err != nil || !ok || q.ID == "" {
		return q, invalidTicker("?", err, "missing slug")
	}
	if _, err := raw.field(&q.Name, "name"); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}
	if q.Name == "" {
		q.Name = q.ID
	}
	if q.Rank, err = rank(raw, "cmc_rank"); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}

	var quotes map[string]listingQuote
	if _, err := raw.field(&quotes, "quote"); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}
	lq, ok := quotes[currency]
	if !ok || !lq.Price.Valid {
		return q, fmt.Errorf("%w: %s has no %s quote", ErrMissingCurrencyData, q.ID, currency)
	}
	if q.Price, err = checkPrice(lq.Price.Decimal); err != nil {
		return q, invalidTicker(q.ID, err, "")
	}
	q.Volume24h = lq.Volume24h
	q.MarketCap = lq.MarketCap
	q.Change1h = lq.PercentChange1h
	q.Change24h = lq.PercentChange24h
	q.Change7d = lq.PercentChange7d

	q.LastUpdated.Text = lq.LastUpdated
	if q.LastUpdated.Text == "" {
		if _, err := raw.field(&q.LastUpdated.Text, "last_updated"); err != nil {
			return q, invalidTicker(q.ID, err, "")
		}
	}
	return q, nil
}

// rank decodes a mandatory rank, it must be a positive integer.
func rank(raw RawTicker, key string) (int, error) {
	var d decimal.Decimal
	ok, err := raw.field(&d, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("missing %q", key)
	}
	if !d.IsInteger() || d.LessThan(decimal.NewFromInt(1)) {
		return 0, fmt.Errorf("invalid rank %v", d)
	}
	return int(d.IntPart()), nil
}

func checkPrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return price, fmt.Errorf("negative price %v", price)
	}
	return price, nil
}

func nullDecimal(raw RawTicker, keys ...string) (decimal.NullDecimal, error) {
	var d decimal.Decimal
	ok, err := raw.field(&d, keys...)
	if err != nil || !ok {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func changes(raw RawTicker, q *AssetQuote) error {
	if _, err := raw.field(&q.Change1h, "percent_change_1h"); err != nil {
		return err
	}
	if _, err := raw.field(&q.Change24h, "percent_change_24h"); err != nil {
		return err
	}
	_, err := raw.field(&q.Change7d, "percent_change_7d")
	return err
}

// invalidTicker wraps a decoding error, or a message when err is nil, into an ErrDataSource.
func invalidTicker(id string, err error, msg string) error {
	if err == nil {
		return fmt.Errorf("%w: ticker %s: %s", ErrDataSource, id, msg)
	}
	return fmt.Errorf("%w: ticker %s: %w", ErrDataSource, id, err)
}
