package coinfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// TickerSource fetches the raw ticker entries, ranked, with prices in currency.
type TickerSource interface {
	FetchTickers(ctx context.Context, currency string) ([]RawTicker, error)
}

// API is a generation of the CoinMarketCap API.
type API string

const (
	// Legacy is the public ticker, without authentication.
	Legacy API = "v1"
	// Pro is the listings of the pro API, it requires an API key.
	Pro API = "pro"
)

const (
	LegacyEndpoint = "https://api.coinmarketcap.com"
	ProEndpoint    = "https://pro-api.coinmarketcap.com"
	// DefaultTimeout of a fetch when none is set.
	DefaultTimeout = 10 * time.Second
	// DefaultLimit is the number of ranked tickers fetched when none is set.
	DefaultLimit = 100
)

// CoinMarketCap is the TickerSource for coinmarketcap.com.
//
// A fetch is a single attempt, there is no retry.
type CoinMarketCap struct {
	API      API
	Endpoint string        // base URL, defaults to the API's one
	APIKey   string        // passed as is to the Pro API
	Limit    int           // number of tickers, defaults to DefaultLimit
	Timeout  time.Duration // defaults to DefaultTimeout
	Client   *http.Client  // defaults to a new http.Client
}

// FetchTickers implements TickerSource.
func (c *CoinMarketCap) FetchTickers(ctx context.Context, currency string) ([]RawTicker, error) {
	addr, header, path, err := c.request(strings.ToUpper(currency))
	if err != nil {
		return nil, err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := c.Client
	if client == nil {
		client = new(http.Client)
	}
	body, err := jget(ctx, client, addr, header)
	if err != nil {
		return nil, err
	}
	return decodeTickers(body, path)
}

// request returns the address and headers of the request, and the json path of the
// ticker list in the response.
func (c *CoinMarketCap) request(currency string) (addr string, header http.Header, path string, err error) {
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	query := url.Values{}
	query.Set("convert", currency)
	query.Set("limit", strconv.Itoa(limit))

	header = make(http.Header)
	endpoint := c.Endpoint
	switch c.API {
	case Legacy, "":
		if endpoint == "" {
			endpoint = LegacyEndpoint
		}
		addr = strings.TrimSuffix(endpoint, "/") + "/v1/ticker/?" + query.Encode()
		path = "$"
	case Pro:
		if endpoint == "" {
			endpoint = ProEndpoint
		}
		addr = strings.TrimSuffix(endpoint, "/") + "/v1/cryptocurrency/listings/latest?" + query.Encode()
		header.Set("X-CMC_PRO_API_KEY", c.APIKey)
		path = "$.data"
	default:
		return "", nil, "", fmt.Errorf("%w: unknown ticker API %q", ErrConfiguration, c.API)
	}
	return addr, header, path, nil
}

// decodeTickers extracts the ticker list at path in the body.
//
// Numbers are decoded as json.Number so that they keep their exact digits.
func decodeTickers(body []byte, path string) ([]RawTicker, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: malformed ticker response: %w", ErrDataSource, err)
	}

	node, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: no ticker list at %q: %w", ErrDataSource, path, err)
	}
	list, ok := node.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: ticker response at %q is not a list", ErrDataSource, path)
	}

	tickers := make([]RawTicker, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: ticker #%d is not an object", ErrDataSource, i)
		}
		raw := make(RawTicker, len(entry))
		for k, v := range entry {
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("%w: ticker #%d field %q: %w", ErrDataSource, i, k, err)
			}
			raw[k] = b
		}
		tickers = append(tickers, raw)
	}
	return tickers, nil
}

// apiErrorMessage returns the error message of a CoinMarketCap error body, if any.
// The Pro API reports errors in a status object, the legacy one in a single string.
//
//	{"status": {"error_code": 1002, "error_message": "API key missing."}}
//	{"error": "id not found"}
func apiErrorMessage(body []byte) string {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	for _, path := range []string{"$.status.error_message", "$.error"} {
		jval, err := jsonpath.Get(path, doc)
		if err != nil {
			continue
		}
		if msg, ok := jval.(string); ok && msg != "" {
			return msg
		}
	}
	return ""
}
