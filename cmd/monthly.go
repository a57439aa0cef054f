package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/etfperf"
	"github.com/etnz/etfperf/renderer"
)

type monthlyCmd struct {
	exclude string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly portfolio performance table" }
func (*monthlyCmd) Usage() string {
	return `efp monthly [-exclude <tickers>]

  Displays the portfolio change in USD and percent for each month of
  the analysis range. The first and last months are clipped to the
  range boundaries.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exclude, "exclude", "", "Comma separated tickers to exclude")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return performanceReport(etfperf.Monthly, parseExclude(c.exclude))
}

// performanceReport loads the portfolio, computes one performance
// report, and renders it to the terminal.
func performanceReport(granularity etfperf.Period, exclude []string) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := p.Performance(granularity, exclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PerformanceMarkdown(report, exclude))
	return subcommands.ExitSuccess
}
