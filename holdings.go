package coinfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Holdings maps an asset key to the quantity owned.
//
// Keys are CoinMarketCap slugs ("bitcoin", "ethereum", "bitcoin-cash"). The slug is the
// 'id' of the legacy ticker and the 'slug' of the pro listings, so the same file works
// with both. A key in another key-space (a symbol like "BTC") simply never matches.
type Holdings map[string]decimal.Decimal

// Quantity returns the quantity owned for key, and whether the key is held at all.
func (h Holdings) Quantity(key string) (decimal.Decimal, bool) {
	q, ok := h[key]
	return q, ok
}

// Format of a holdings file.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf returns the holdings format of the file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return JSON, fmt.Errorf("%w: unsupported holdings file extension %q", ErrConfiguration, filepath.Ext(path))
	}
}

// LoadHoldings reads a holdings file. The format is derived from the file extension.
func LoadHoldings(path string) (Holdings, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open holdings file: %w", ErrConfiguration, err)
	}
	defer f.Close()

	h, err := DecodeHoldings(f, format)
	if err != nil {
		return nil, fmt.Errorf("could not decode holdings file %q: %w", path, err)
	}
	return h, nil
}

// DecodeHoldings decodes holdings from r.
//
// In JSON, quantities are numbers or numeric strings:
//
//	{"bitcoin": 0.5, "ethereum": "10"}
//
// In YAML, quantities are scalars:
//
//	bitcoin: 0.5
//	ethereum: 10
func DecodeHoldings(r io.Reader, format Format) (Holdings, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	var raw map[string]string
	switch format {
	case JSON:
		var values map[string]decimal.Decimal
		dec := json.NewDecoder(bytes.NewReader(content))
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON holdings: %w", ErrConfiguration, err)
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return nil, fmt.Errorf("%w: invalid JSON holdings: trailing data after the holdings object", ErrConfiguration)
		}
		if values != nil {
			raw = make(map[string]string, len(values))
		}
		for k, v := range values {
			raw[k] = v.String()
		}
	case YAML:
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("%w: invalid YAML holdings: %w", ErrConfiguration, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown holdings format %d", ErrConfiguration, format)
	}
	// null documents and empty YAML files decode without error into nothing.
	if raw == nil {
		return nil, fmt.Errorf("%w: holdings file is not a mapping of asset to quantity", ErrConfiguration)
	}

	h := make(Holdings, len(raw))
	for key, value := range raw {
		q, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid quantity %q for %q", ErrConfiguration, value, key)
		}
		if q.IsNegative() {
			return nil, fmt.Errorf("%w: negative quantity %v for %q", ErrConfiguration, q, key)
		}
		h[key] = q
	}
	return h, nil
}
