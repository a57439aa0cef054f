// Package etfperf computes time-series analytics for an ETF portfolio
// from two append-only ledgers: a sparse table of daily closing prices
// and an ordered list of buy/sell transactions.
//
// The pipeline reconstructs daily holdings and cash balance from the
// sparse events, forward-fills them to a dense daily calendar, and
// aggregates the resulting valuation into monthly or yearly performance
// windows and a daily-return risk statistic. Every computation is a
// pure function of the two ledgers: nothing is cached between requests
// and nothing is mutated.
//
// The renderer package turns the dense tables into PNG charts and
// markdown tables, the server package exposes them over HTTP, and the
// cmd package wires both into the efp command line tool.
package etfperf
