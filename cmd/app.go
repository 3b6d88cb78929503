// Package cmd implements the CLI application reporting a crypto-currency portfolio.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/etnz/coinfolio"
	"github.com/go-playground/validator/v10"
)

// EnvAPIKey is the environment variable holding the CoinMarketCap API key.
const EnvAPIKey = "COINMARKETCAP_API_KEY"

// Options of a report run. Defaults are set from the 'default' tags, then overridden by
// flags, then validated.
type Options struct {
	Currency string        `default:"USD" validate:"required,iso4217"`
	Holdings string        `default:"portfolio.json" validate:"required"`
	API      string        `default:"v1" validate:"oneof=v1 pro"`
	Endpoint string        `validate:"omitempty,url"`
	APIKey   string        `validate:"required_if=API pro"`
	Limit    int           `default:"100" validate:"min=1,max=5000"`
	Timeout  time.Duration `default:"10s" validate:"gt=0"`
	BarWidth int           `default:"50" validate:"min=10,max=200"`
	Width    int           `default:"180" validate:"min=40"`
	Banner   bool          `default:"true"`
	Raw      bool
	Verbose  bool
}

// flagNames maps Options fields to their flag, to report validation errors.
var flagNames = map[string]string{
	"Currency": "c",
	"Holdings": "holdings",
	"API":      "api",
	"Endpoint": "endpoint",
	"APIKey":   "api-key",
	"Limit":    "limit",
	"Timeout":  "timeout",
	"BarWidth": "bar-width",
	"Width":    "width",
}

var validate = validator.New()

// NewOptions returns the default options.
func NewOptions() Options {
	var o Options
	if err := defaults.Set(&o); err != nil {
		// tags are constant, this is a programming error.
		panic(err)
	}
	return o
}

// Resolve completes the options from the environment and validates them.
func (o *Options) Resolve() error {
	o.Currency = strings.ToUpper(strings.TrimSpace(o.Currency))
	// If the flag is not set, we try to read it from the environment variable.
	if o.APIKey == "" {
		o.APIKey = os.Getenv(EnvAPIKey)
	}

	err := validate.Struct(o)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("invalid -%s %q (%s)", flagNames[e.Field()], fmt.Sprint(e.Value()), e.Tag()))
		}
		return errors.New(strings.Join(msgs, ", "))
	}
	return err
}

// Source returns the ticker source configured by the options.
func (o *Options) Source() *coinfolio.CoinMarketCap {
	return &coinfolio.CoinMarketCap{
		API:      coinfolio.API(o.API),
		Endpoint: o.Endpoint,
		APIKey:   o.APIKey,
		Limit:    o.Limit,
		Timeout:  o.Timeout,
	}
}
