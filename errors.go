package coinfolio

import "errors"

// Error classes of a report run. They are wrapped with context and can be tested
// with errors.Is.
var (
	// ErrConfiguration reports a missing, unreadable or malformed holdings file.
	ErrConfiguration = errors.New("configuration error")
	// ErrDataSource reports a failure to fetch or decode the ticker data.
	ErrDataSource = errors.New("data source error")
	// ErrNetworkTimeout reports a fetch that did not complete in time. It always comes
	// along with ErrDataSource.
	ErrNetworkTimeout = errors.New("network timeout")
	// ErrMissingCurrencyData reports a ticker entry without data for the display currency.
	ErrMissingCurrencyData = errors.New("missing currency data")
	// ErrEmptyPortfolio reports that no holding matched a quote, or that it is worth nothing.
	ErrEmptyPortfolio = errors.New("empty portfolio")
)
