// Package cmd implements the efp CLI application: terminal performance
// reports, chart export, and the web API server.
package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/etfperf"
)

// Commands lists every subcommand. A main package registers them all
// and executes the user-selected one.
var Commands = []subcommands.Command{
	&serveCmd{},
	&monthlyCmd{},
	&yearlyCmd{},
	&riskCmd{},
	&chartsCmd{},
}

// As a CLI application it is short lived, so global flags are fine.

var (
	configFile       = flag.String("config", "", "Path to a YAML config file; flags override its values")
	pricesFile       = flag.String("prices-file", "px_etf.csv", "Path to the price ledger (CSV)")
	transactionsFile = flag.String("transactions-file", "tx_etf.csv", "Path to the transaction ledger (CSV)")
	investment       = flag.Float64("investment", 1_000_000, "Initially invested cash in USD")
	listen           = flag.String("listen", ":8000", "Listen address for the serve command")
)

// Config resolves the application configuration: the YAML file when
// given, with explicitly set flags taking precedence.
func Config() (etfperf.Config, error) {
	cfg := etfperf.DefaultConfig()
	if *configFile != "" {
		loaded, err := etfperf.LoadConfig(*configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prices-file":
			cfg.PricesFile = *pricesFile
		case "transactions-file":
			cfg.TransactionsFile = *transactionsFile
		case "investment":
			cfg.Investment = *investment
		case "listen":
			cfg.Listen = *listen
		}
	})
	return cfg, nil
}

// LoadPortfolio resolves the configuration and loads the two ledgers
// into a fresh computation context.
func LoadPortfolio() (*etfperf.Portfolio, error) {
	cfg, err := Config()
	if err != nil {
		return nil, err
	}
	return etfperf.Load(cfg)
}

// parseExclude splits a comma separated ticker list.
func parseExclude(raw string) []string {
	if raw == "" {
		return nil
	}
	var exclude []string
	for _, ticker := range strings.Split(raw, ",") {
		if ticker = strings.TrimSpace(ticker); ticker != "" {
			exclude = append(exclude, ticker)
		}
	}
	return exclude
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the terminal renderer fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}
