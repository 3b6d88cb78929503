package coinfolio

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestValuate(t *testing.T) {
	quotes := []AssetQuote{
		quote("bitcoin", 1, 20000),
		quote("ethereum", 2, 1500),
		quote("dogecoin", 3, 0.05),
	}
	holdings := Holdings{"bitcoin": D(0.5), "ethereum": D(10), "cardano": D(100)}

	report, err := Valuate(quotes, holdings)
	if err != nil {
		t.Fatalf("Valuate() error = %v", err)
	}

	type row struct {
		ID       string
		NetWorth string
		Weight   int
	}
	var got []row
	for _, a := range report.Assets {
		got = append(got, row{a.ID, a.NetWorth.String(), a.Weight})
	}
	want := []row{
		{"bitcoin", "10000", 40},
		{"ethereum", "15000", 60},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Valuate() assets mismatch (-want +got):\n%s", diff)
	}
	if !report.Total.Equal(D(25000)) {
		t.Errorf("Valuate().Total = %v, want 25000", report.Total)
	}
	if !report.Assets[0].Quantity.Equal(D(0.5)) {
		t.Errorf("Valuate().Assets[0].Quantity = %v, want 0.5", report.Assets[0].Quantity)
	}
}

func TestValuate_order(t *testing.T) {
	// The order of the quotes is kept, even if it is not the rank order.
	quotes := []AssetQuote{
		quote("ethereum", 2, 1500),
		quote("litecoin", 7, 60),
		quote("bitcoin", 1, 20000),
		quote("dogecoin", 3, 0.05),
	}
	holdings := Holdings{"bitcoin": D(1), "dogecoin": D(1000), "ethereum": D(1)}

	report, err := Valuate(quotes, holdings)
	if err != nil {
		t.Fatalf("Valuate() error = %v", err)
	}
	var got []string
	for _, a := range report.Assets {
		got = append(got, a.ID)
	}
	if diff := cmp.Diff([]string{"ethereum", "bitcoin", "dogecoin"}, got); diff != "" {
		t.Errorf("Valuate() order mismatch (-want +got):\n%s", diff)
	}
}

func TestValuate_rounding(t *testing.T) {
	quotes := []AssetQuote{
		quote("a", 1, 0.05),   // * 30 = 1.5
		quote("b", 2, 0.05),   // * 10 = 0.5
		quote("c", 3, 0.049),  // * 10 = 0.49
		quote("d", 4, 1.2345), // * 1000 = 1234.5
		quote("e", 5, 33.333), // * 3 = 99.999
	}
	holdings := Holdings{"a": D(30), "b": D(10), "c": D(10), "d": D(1000), "e": D(3)}

	report, err := Valuate(quotes, holdings)
	if err != nil {
		t.Fatalf("Valuate() error = %v", err)
	}
	want := []string{"2", "1", "0", "1235", "100"}
	sum := decimal.Zero
	for i, a := range report.Assets {
		if a.NetWorth.String() != want[i] {
			t.Errorf("NetWorth(%s) = %v, want %s", a.ID, a.NetWorth, want[i])
		}
		sum = sum.Add(a.NetWorth)
	}
	if !sum.Equal(report.Total) {
		t.Errorf("sum(NetWorth) = %v, want Total %v", sum, report.Total)
	}
}

func TestValuate_weights(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		wantSum  int
		wantEach []int
	}{
		{"thirds", []float64{1, 1, 1}, 99, []int{33, 33, 33}},
		{"single", []float64{42}, 100, []int{100}},
		{"halves", []float64{1, 1}, 100, []int{50, 50}},
		{"sixths", []float64{1, 1, 1, 1, 1, 1}, 102, []int{17, 17, 17, 17, 17, 17}},
		{"dust", []float64{1000, 1}, 100, []int{100, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var quotes []AssetQuote
			holdings := make(Holdings)
			for i, p := range tt.prices {
				id := string(rune('a' + i))
				quotes = append(quotes, quote(id, i+1, p))
				holdings[id] = D(1)
			}
			report, err := Valuate(quotes, holdings)
			if err != nil {
				t.Fatalf("Valuate() error = %v", err)
			}
			sum := 0
			var got []int
			for _, a := range report.Assets {
				if a.Weight < 0 || a.Weight > 100 {
					t.Errorf("Weight(%s) = %d, want in [0, 100]", a.ID, a.Weight)
				}
				sum += a.Weight
				got = append(got, a.Weight)
			}
			if diff := cmp.Diff(tt.wantEach, got); diff != "" {
				t.Errorf("weights mismatch (-want +got):\n%s", diff)
			}
			if sum != tt.wantSum {
				t.Errorf("sum(Weight) = %d, want %d", sum, tt.wantSum)
			}
			if d := sum - 100; d > len(got) || d < -len(got) {
				t.Errorf("sum(Weight) = %d, drifts more than %d from 100", sum, len(got))
			}
		})
	}
}

func TestValuate_empty(t *testing.T) {
	quotes := []AssetQuote{quote("bitcoin", 1, 20000), quote("ethereum", 2, 1500)}
	tests := []struct {
		name     string
		quotes   []AssetQuote
		holdings Holdings
	}{
		{"no match", quotes, Holdings{"BTC": D(1), "cardano": D(1)}},
		{"no holdings", quotes, Holdings{}},
		{"no quotes", nil, Holdings{"bitcoin": D(1)}},
		{"worth nothing", quotes, Holdings{"bitcoin": D(0)}},
		{"dust", []AssetQuote{quote("shib", 9, 0.00001)}, Holdings{"shib": D(10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Valuate(tt.quotes, tt.holdings)
			if !errors.Is(err, ErrEmptyPortfolio) {
				t.Errorf("Valuate() = %v, %v, want %v", report, err, ErrEmptyPortfolio)
			}
		})
	}
}

func TestNewPortfolioReport(t *testing.T) {
	raws := []RawTicker{
		rawTicker(t, `{"id": "bitcoin", "rank": "1", "price_eur": "20000"}`),
		rawTicker(t, `{"id": "ethereum", "rank": "2", "price_eur": "1500"}`),
		rawTicker(t, `{"id": "dogecoin", "rank": "3", "price_eur": "0.05"}`),
	}
	holdings := Holdings{"bitcoin": D(0.5), "ethereum": D(10)}

	report, err := NewPortfolioReport(raws, holdings, "EUR")
	if err != nil {
		t.Fatalf("NewPortfolioReport() error = %v", err)
	}
	if len(report.Assets) != 2 || !report.Total.Equal(D(25000)) {
		t.Errorf("NewPortfolioReport() = %d assets worth %v, want 2 worth 25000", len(report.Assets), report.Total)
	}

	if _, err := NewPortfolioReport(raws, holdings, "USD"); !errors.Is(err, ErrMissingCurrencyData) {
		t.Errorf("NewPortfolioReport(USD) error = %v, want %v", err, ErrMissingCurrencyData)
	}
	if _, err := NewPortfolioReport(raws, Holdings{"BTC": D(1)}, "EUR"); !errors.Is(err, ErrEmptyPortfolio) {
		t.Errorf("NewPortfolioReport(BTC) error = %v, want %v", err, ErrEmptyPortfolio)
	}
}

func TestValuate_sharedDisplayName(t *testing.T) {
	a, b := quote("tether", 1, 1), quote("tether-gold", 2, 3)
	b.Name = a.Name
	report, err := Valuate([]AssetQuote{a, b}, Holdings{"tether": D(25), "tether-gold": D(25)})
	if err != nil {
		t.Fatalf("Valuate() error = %v", err)
	}
	var got []int
	for _, v := range report.Assets {
		got = append(got, v.Weight)
	}
	if diff := cmp.Diff([]int{25, 75}, got); diff != "" {
		t.Errorf("Valuate() weights mismatch (-want +got):\n%s", diff)
	}
}
