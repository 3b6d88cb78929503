package coinfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValuatedAsset is a quote of an asset that is held.
type ValuatedAsset struct {
	AssetQuote
	Quantity decimal.Decimal // quantity owned
	NetWorth decimal.Decimal // Price * Quantity rounded to the unit
	Weight   int             // NetWorth in percent of the portfolio total, rounded
}

// PortfolioReport is the valuation of the Holdings. Each asset carries its own weight,
// two assets sharing a display name keep theirs.
type PortfolioReport struct {
	Assets []ValuatedAsset // in quote order
	Total  decimal.Decimal // sum of Assets' NetWorth
}


// Valuate joins quotes against the holdings.
//
// Quotes are kept in their order, the source ranks them. Quotes not held and holdings
// without a quote are ignored. Each net worth is rounded half away from zero before it is
// added to the total, so that the total is exactly the sum of the displayed values.
//
// It fails with ErrEmptyPortfolio if the total is zero, weights cannot be computed.
func Valuate(quotes []AssetQuote, holdings Holdings) (*PortfolioReport, error) {
	report := &PortfolioReport{Total: decimal.Zero}
	for _, q := range quotes {
		quantity, ok := holdings.Quantity(q.ID)
		if !ok {
			continue
		}
		netWorth := q.Price.Mul(quantity).Round(0)
		report.Assets = append(report.Assets, ValuatedAsset{
			AssetQuote: q,
			Quantity:   quantity,
			NetWorth:   netWorth,
		})
		report.Total = report.Total.Add(netWorth)
	}

	if len(report.Assets) == 0 {
		return nil, fmt.Errorf("%w: none of the %d holdings is quoted", ErrEmptyPortfolio, len(holdings))
	}
	if report.Total.IsZero() {
		return nil, fmt.Errorf("%w: %d assets are worth nothing", ErrEmptyPortfolio, len(report.Assets))
	}

	for i := range report.Assets {
		a := &report.Assets[i]
		a.Weight = int(a.NetWorth.Mul(hundred).Div(report.Total).Round(0).IntPart())
	}
	return report, nil
}

// NewPortfolioReport normalizes raw tickers in the currency and valuates the holdings.
func NewPortfolioReport(raws []RawTicker, holdings Holdings, currency string) (*PortfolioReport, error) {
	quotes, err := NormalizeAll(raws, currency)
	if err != nil {
		return nil, err
	}
	return Valuate(quotes, holdings)
}
