package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/etfperf"
)

type yearlyCmd struct {
	exclude string
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the annual portfolio performance table" }
func (*yearlyCmd) Usage() string {
	return `efp yearly [-exclude <tickers>]

  Displays the portfolio change in USD and percent for each year of
  the analysis range. The first and last years are clipped to the
  range boundaries.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exclude, "exclude", "", "Comma separated tickers to exclude")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return performanceReport(etfperf.Yearly, parseExclude(c.exclude))
}
