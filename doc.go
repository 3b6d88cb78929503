// Package coinfolio values a crypto-currency portfolio against live market data.
//
// The package is organized as a small pipeline that runs once per invocation:
//   - Ticker Data Source: fetches raw ticker entries from CoinMarketCap (either the
//     legacy public ticker or the pro listings API).
//   - Ticker Normalizer: turns heterogeneous raw entries into canonical AssetQuote
//     values for a display currency.
//   - Valuator: joins quotes against the user's Holdings, computes net worth per
//     asset, the portfolio total and each asset weight.
//   - Formatting Utilities: thousands separators, decimal padding, relative time and
//     currency symbols shared by the renderers.
//
// This package serves as the foundational logic for the `folio` command-line tool.
// Rendering lives in the renderer package and the command in the cmd package.
package coinfolio
