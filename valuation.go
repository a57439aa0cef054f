package etfperf

import (
	"github.com/shopspring/decimal"
)

// PositionsValue derives the total market value of all held positions
// as a dense daily series: the elementwise product of price and
// quantity per instrument, summed across instruments per date.
//
// Prices and quantities must share the exact same date range and
// instrument columns; a mismatch is an AlignmentError. An instrument
// with no price yet (null cell) contributes nothing to the sum for
// that day.
func PositionsValue(prices, quantities *Table) (*Series, error) {
	if err := aligned(prices, quantities); err != nil {
		return nil, err
	}
	values := make(map[Date]decimal.Decimal, prices.Range().Days())
	for d := range prices.Range().Dates() {
		total := decimal.Zero
		for _, ticker := range prices.cols {
			price, ok := prices.At(d, ticker)
			if !ok {
				continue
			}
			qty, ok := quantities.At(d, ticker)
			if !ok {
				continue
			}
			total = total.Add(price.Mul(qty))
		}
		values[d] = total
	}
	return NewSeries(prices.Range(), values, FillNone), nil
}

// PositionsValueByInstrument derives the per-instrument market value
// table: price times quantity for each ticker and date. Cells with no
// price yet stay null.
func PositionsValueByInstrument(prices, quantities *Table) (*Table, error) {
	if err := aligned(prices, quantities); err != nil {
		return nil, err
	}
	columns := make(map[string]map[Date]decimal.Decimal, len(prices.cols))
	for _, ticker := range prices.cols {
		column := make(map[Date]decimal.Decimal)
		for d := range prices.Range().Dates() {
			price, ok := prices.At(d, ticker)
			if !ok {
				continue
			}
			qty, ok := quantities.At(d, ticker)
			if !ok {
				continue
			}
			column[d] = price.Mul(qty)
		}
		columns[ticker] = column
	}
	return NewTable(prices.Range(), columns, FillNone), nil
}

// CashFlow replays the ledger into the daily cash-on-hand series.
//
// The running cash starts at invested. For each transaction whose
// ticker is not excluded, the instrument's price is looked up on the
// exact transaction date in the dense price table; a missing price is a
// MissingPriceError, never a silent skip. The notional (price times
// quantity) is subtracted for a BUY and added for a SELL, and the
// post-trade balance is recorded at that date. The sparse balances are
// then reindexed to the full calendar and forward-filled: days strictly
// before the first transaction stay null.
func (l *Ledger) CashFlow(prices *Table, r Range, invested decimal.Decimal, exclude []string) (*Series, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, ticker := range exclude {
		excluded[ticker] = true
	}

	current := invested
	balances := make(map[Date]decimal.Decimal)
	for tx := range l.Transactions() {
		if excluded[tx.Ticker] {
			continue
		}
		price, ok := prices.At(tx.Date, tx.Ticker)
		if !ok {
			return nil, MissingPriceError{Date: tx.Date, Ticker: tx.Ticker}
		}
		notional := price.Mul(decimal.NewFromInt(tx.Quantity))
		if tx.Side == Buy {
			current = current.Sub(notional)
		} else {
			current = current.Add(notional)
		}
		balances[tx.Date] = current
	}
	return NewSeries(r, balances, FillForward), nil
}
