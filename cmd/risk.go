package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/etfperf/renderer"
)

type riskCmd struct {
	exclude string
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display the standard deviation of daily returns" }
func (*riskCmd) Usage() string {
	return `efp risk [-exclude <tickers>]

  Computes the sample standard deviation of the day-over-day percentage
  returns of total portfolio value over the analysis range.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exclude, "exclude", "", "Comma separated tickers to exclude")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	stddev, err := p.RiskStdDev(parseExclude(c.exclude))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RiskMarkdown(stddev))
	return subcommands.ExitSuccess
}
