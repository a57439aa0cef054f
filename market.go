package etfperf

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// PriceHistory holds the raw, sparse closing-price observations per
// instrument, as loaded from the price ledger. Dates may have gaps
// (weekends, holidays); densification happens in Table.
type PriceHistory struct {
	observations map[string]map[Date]decimal.Decimal
	first, last  Date
}

// NewPriceHistory creates an empty price history.
func NewPriceHistory() *PriceHistory {
	return &PriceHistory{observations: make(map[string]map[Date]decimal.Decimal)}
}

// Record adds one price observation. Prices are non-negative.
func (h *PriceHistory) Record(on Date, ticker string, price decimal.Decimal) error {
	if ticker == "" {
		return InvalidArgumentError{Reason: "price observation without a ticker"}
	}
	if price.IsNegative() {
		return InvalidArgumentError{Reason: fmt.Sprintf("negative price %s for %s on %s", price, ticker, on)}
	}
	prices, ok := h.observations[ticker]
	if !ok {
		prices = make(map[Date]decimal.Decimal)
		h.observations[ticker] = prices
	}
	prices[on] = price
	if h.first.IsZero() || on.Before(h.first) {
		h.first = on
	}
	if h.last.IsZero() || on.After(h.last) {
		h.last = on
	}
	return nil
}

// Tickers returns the sorted set of instruments with at least one observation.
func (h *PriceHistory) Tickers() []string {
	tickers := slices.Collect(maps.Keys(h.observations))
	slices.Sort(tickers)
	return tickers
}

// Bounds returns the range from the first to the last recorded
// observation. The boolean is false for an empty history.
func (h *PriceHistory) Bounds() (Range, bool) {
	if h.first.IsZero() {
		return Range{}, false
	}
	return Range{From: h.first, To: h.last}, true
}

// Table builds the dense daily price table over r: excluded instrument
// columns are dropped before any date processing, then each remaining
// column is reindexed to one row per calendar day and forward-filled.
// Days before an instrument's first in-range observation stay null; no
// interpolation, no back-fill.
func (h *PriceHistory) Table(r Range, exclude []string) *Table {
	columns := make(map[string]map[Date]decimal.Decimal, len(h.observations))
	for ticker, prices := range h.observations {
		if slices.Contains(exclude, ticker) {
			continue
		}
		columns[ticker] = prices
	}
	return NewTable(r, columns, FillForward)
}
