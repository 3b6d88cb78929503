package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
)

// ExitEmptyPortfolio is the exit status when there is nothing to report.
const ExitEmptyPortfolio subcommands.ExitStatus = 3

// ReportCmd fetches the tickers and reports the portfolio value.
type ReportCmd struct {
	opts   Options
	now    func() time.Time
	stdout io.Writer
	stderr io.Writer
}

// NewReportCmd returns the report command with default options.
func NewReportCmd() *ReportCmd {
	return &ReportCmd{
		opts:   NewOptions(),
		now:    time.Now,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (*ReportCmd) Name() string     { return "folio" }
func (*ReportCmd) Synopsis() string { return "report the value of a crypto-currency portfolio" }
func (*ReportCmd) Usage() string {
	return `folio [-c <currency>] [-holdings <file>] [-api v1|pro] [-api-key <key>]

  Fetches live prices from CoinMarketCap and reports the value of the holdings
  listed in the holdings file (JSON or YAML, keyed by coin slug):

    {"bitcoin": 0.5, "ethereum": 10}

`
}

func (c *ReportCmd) SetFlags(f *flag.FlagSet) {
	o := &c.opts
	f.StringVar(&o.Currency, "c", o.Currency, "3-letter ISO 4217 display currency (USD, EUR, JPY...). Crypto codes such as BTC are not accepted")
	f.StringVar(&o.Holdings, "holdings", o.Holdings, "Path to the holdings file (.json, .yaml or .yml)")
	f.StringVar(&o.API, "api", o.API, "CoinMarketCap API generation: 'v1' for the public ticker, 'pro' for the listings (requires an API key)")
	f.StringVar(&o.Endpoint, "endpoint", o.Endpoint, "Override the CoinMarketCap API base URL")
	f.StringVar(&o.APIKey, "api-key", o.APIKey, "CoinMarketCap API key. This flag takes precedence over the "+EnvAPIKey+" environment variable")
	f.IntVar(&o.Limit, "limit", o.Limit, "Number of ranked tickers to fetch")
	f.DurationVar(&o.Timeout, "timeout", o.Timeout, "Timeout of the ticker fetch")
	f.IntVar(&o.BarWidth, "bar-width", o.BarWidth, "Width of the bar graphs")
	f.IntVar(&o.Width, "width", o.Width, "Width of the terminal table")
	f.BoolVar(&o.Banner, "banner", o.Banner, "Print the banner before fetching")
	f.BoolVar(&o.Raw, "raw", o.Raw, "Print the table as raw markdown")
	f.BoolVar(&o.Verbose, "v", o.Verbose, "Log the HTTP requests")
}

func (c *ReportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.opts.Resolve(); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	log.SetOutput(io.Discard)
	if c.opts.Verbose {
		log.SetOutput(c.stderr)
	}

	holdings, err := coinfolio.LoadHoldings(c.opts.Holdings)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.opts.Banner {
		fmt.Fprintln(c.stdout, renderer.Banner(renderer.BannerText))
	}

	currency := c.opts.Currency
	raws, err := c.opts.Source().FetchTickers(ctx, currency)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error fetching tickers: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := coinfolio.NewPortfolioReport(raws, holdings, currency)
	if errors.Is(err, coinfolio.ErrEmptyPortfolio) {
		fmt.Fprintf(c.stderr, "Nothing to report: %v\nHoldings in %q must be keyed by coin slug (e.g. \"bitcoin\") and own something.\n", err, c.opts.Holdings)
		return ExitEmptyPortfolio
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error valuating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	r := renderer.Render(report, currency, c.now())
	fmt.Fprintln(c.stdout)
	fmt.Fprint(c.stdout, renderer.DrawBars(r.Bars, c.opts.BarWidth))
	fmt.Fprintln(c.stdout)
	if c.opts.Raw {
		fmt.Fprint(c.stdout, renderer.TableMarkdown(r))
	} else {
		printMarkdown(c.stdout, renderer.TableMarkdown(r), c.opts.Width)
	}
	fmt.Fprintln(c.stdout)
	fmt.Fprintln(c.stdout, renderer.TotalLine(r))
	return subcommands.ExitSuccess
}
