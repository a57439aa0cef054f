package etfperf

import (
	"testing"

	"github.com/shopspring/decimal"
)

// price records one observation, failing the test on invalid input.
func price(t *testing.T, h *PriceHistory, on string, ticker string, value float64) {
	t.Helper()
	if err := h.Record(MustParseDate(on), ticker, decimal.NewFromFloat(value)); err != nil {
		t.Fatalf("could not record price: %v", err)
	}
}

// flatPrices records the same price for a ticker on every day of the range.
func flatPrices(t *testing.T, h *PriceHistory, from, to string, ticker string, value float64) {
	t.Helper()
	r, err := NewRange(MustParseDate(from), MustParseDate(to))
	if err != nil {
		t.Fatalf("invalid range: %v", err)
	}
	for d := range r.Dates() {
		if err := h.Record(d, ticker, decimal.NewFromFloat(value)); err != nil {
			t.Fatalf("could not record price: %v", err)
		}
	}
}

// tx builds one transaction.
func tx(on string, ticker string, qty int64, side Side) Transaction {
	return Transaction{Date: MustParseDate(on), Ticker: ticker, Quantity: qty, Side: side}
}

// mustRange builds a range from ISO dates.
func mustRange(t *testing.T, from, to string) Range {
	t.Helper()
	r, err := NewRange(MustParseDate(from), MustParseDate(to))
	if err != nil {
		t.Fatalf("invalid range: %v", err)
	}
	return r
}

// cell asserts the value of a table cell.
func cell(t *testing.T, table *Table, on string, ticker string, want float64) {
	t.Helper()
	got, ok := table.At(MustParseDate(on), ticker)
	if !ok {
		t.Fatalf("no value for %s on %s", ticker, on)
	}
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("%s on %s = %s, want %v", ticker, on, got, want)
	}
}

// at asserts the value of a series cell.
func at(t *testing.T, s *Series, on string, want float64) {
	t.Helper()
	got, ok := s.At(MustParseDate(on))
	if !ok {
		t.Fatalf("no value on %s", on)
	}
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("value on %s = %s, want %v", on, got, want)
	}
}
