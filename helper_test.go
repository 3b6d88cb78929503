package coinfolio

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

// rawTicker is a helper for test to create a RawTicker from its JSON.
func rawTicker(t *testing.T, js string) RawTicker {
	t.Helper()
	var r RawTicker
	if err := json.Unmarshal([]byte(js), &r); err != nil {
		t.Fatalf("invalid test ticker %s: %v", js, err)
	}
	return r
}

// quote is a helper for test to create a minimal AssetQuote.
func quote(id string, rank int, price float64) AssetQuote {
	return AssetQuote{ID: id, Name: id, Rank: rank, Price: D(price)}
}

// dec is a helper for test to parse a decimal constant.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid test decimal %q: %v", s, err)
	}
	return d
}

// legacyBitcoin is a ticker of the legacy public API, converted to EUR.
const legacyBitcoin = `{
	"id": "bitcoin",
	"name": "Bitcoin",
	"symbol": "BTC",
	"rank": "1",
	"price_usd": "6461.6",
	"price_btc": "1.0",
	"24h_volume_usd": "4210000000.0",
	"market_cap_usd": "111387992107",
	"percent_change_1h": "0.11",
	"percent_change_24h": "-1.73",
	"percent_change_7d": "-8.71",
	"last_updated": "1533851371",
	"price_eur": "5580.0012345678",
	"24h_volume_eur": "3635000000.5",
	"market_cap_eur": "96186429890"
}`

// proBitcoin is a listing of the pro API, quoted in USD.
const proBitcoin = `{
	"id": 1,
	"name": "Bitcoin",
	"symbol": "BTC",
	"slug": "bitcoin",
	"cmc_rank": 1,
	"last_updated": "2018-08-09T21:56:28.000Z",
	"quote": {
		"USD": {
			"price": 6602.60701122,
			"volume_24h": 4314444687.5194,
			"percent_change_1h": 0.988615,
			"percent_change_24h": 4.37185,
			"percent_change_7d": -12.1352,
			"market_cap": 113563929433.21645,
			"last_updated": "2018-08-09T21:57:00.000Z"
		}
	}
}`
