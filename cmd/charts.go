package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/etnz/etfperf"
	"github.com/etnz/etfperf/renderer"
)

type chartsCmd struct {
	outputDir string
	exclude   string
}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "export every portfolio chart as a PNG file" }
func (*chartsCmd) Usage() string {
	return `efp charts [-o <dir>] [-exclude <tickers>]

  Renders the price, positions value, cash and performance charts over
  the full analysis range and writes them as PNG files.
`
}

func (c *chartsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "charts", "Output directory for the PNG files")
	f.StringVar(&c.exclude, "exclude", "", "Comma separated tickers to exclude")
}

func (c *chartsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	exclude := parseExclude(c.exclude)

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	images := map[string]func() ([]byte, error){
		"etf-prices.png": func() ([]byte, error) {
			return renderer.TablePNG(p.PriceTable(exclude), "ETF Prices Over Time", "Date", "USD value")
		},
		"positions-value-per-etf.png": func() ([]byte, error) {
			values, err := p.PositionsValueByInstrument(exclude)
			if err != nil {
				return nil, err
			}
			return renderer.TablePNG(values, "Positions Value for an ETF Over Time", "Date", "USD value")
		},
		"positions-value.png": func() ([]byte, error) {
			values, err := p.PositionsValue(exclude)
			if err != nil {
				return nil, err
			}
			return renderer.SeriesPNG(values, "value", "Positions Value Over Time", "Date", "USD value")
		},
		"cash-flow.png": func() ([]byte, error) {
			cash, err := p.CashFlow(exclude)
			if err != nil {
				return nil, err
			}
			return renderer.SeriesPNG(cash, "value", "Cash on Hand Over Time", "Date", "USD value")
		},
		"combined-cash-flow-positions-value.png": func() ([]byte, error) {
			values, err := p.PositionsValue(exclude)
			if err != nil {
				return nil, err
			}
			cash, err := p.CashFlow(exclude)
			if err != nil {
				return nil, err
			}
			combined, err := values.Add(cash)
			if err != nil {
				return nil, err
			}
			return renderer.SeriesPNG(combined, "value", "Combined Cash Flow and Positions Value Over Time", "Date", "USD value")
		},
		"monthly-performance-usd.png": func() ([]byte, error) {
			report, err := p.Performance(etfperf.Monthly, exclude)
			if err != nil {
				return nil, err
			}
			return renderer.PerformancePNG(report, false)
		},
		"monthly-performance-pct.png": func() ([]byte, error) {
			report, err := p.Performance(etfperf.Monthly, exclude)
			if err != nil {
				return nil, err
			}
			return renderer.PerformancePNG(report, true)
		},
		"annual-performance-usd.png": func() ([]byte, error) {
			report, err := p.Performance(etfperf.Yearly, exclude)
			if err != nil {
				return nil, err
			}
			return renderer.PerformancePNG(report, false)
		},
		"annual-performance-pct.png": func() ([]byte, error) {
			report, err := p.Performance(etfperf.Yearly, exclude)
			if err != nil {
				return nil, err
			}
			return renderer.PerformancePNG(report, true)
		},
	}

	for name, render := range images {
		image, err := render()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
		path := filepath.Join(c.outputDir, name)
		if err := os.WriteFile(path, image, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("wrote %s\n", path)
	}
	return subcommands.ExitSuccess
}
