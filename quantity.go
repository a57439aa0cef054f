package etfperf

import (
	"github.com/shopspring/decimal"
)

// QuantityTable replays the ledger into per-day holdings for the given
// instruments, one integer-valued column per ticker over the dense
// daily calendar of r.
//
// The replay is an explicit fold over the chronologically ordered
// ledger: the state is a map of running per-instrument totals starting
// at zero, the transition applies one transaction's signed delta, and
// the state is snapshotted into the sparse result at each distinct
// transaction date once all of that date's transactions are applied.
// Transactions whose ticker is not in the requested set are skipped and
// leave the state untouched.
//
// The sparse snapshots are then reindexed to the full calendar and
// forward-filled. Days before the first snapshot read zero: an
// instrument never transacted holds zero throughout. Holdings are
// conceptually non-negative but not enforced; a SELL exceeding the held
// quantity produces a negative balance.
func (l *Ledger) QuantityTable(r Range, tickers []string) *Table {
	requested := make(map[string]bool, len(tickers))
	for _, ticker := range tickers {
		requested[ticker] = true
	}

	running := make(map[string]int64, len(tickers))
	snapshots := make(map[string]map[Date]decimal.Decimal, len(tickers))
	for _, ticker := range tickers {
		snapshots[ticker] = make(map[Date]decimal.Decimal)
	}
	snapshot := func(on Date) {
		for _, ticker := range tickers {
			snapshots[ticker][on] = decimal.NewFromInt(running[ticker])
		}
	}

	var current Date
	for tx := range l.Transactions() {
		if !requested[tx.Ticker] {
			continue
		}
		if current != tx.Date {
			if !current.IsZero() {
				snapshot(current)
			}
			current = tx.Date
		}
		running[tx.Ticker] += tx.delta()
	}
	if !current.IsZero() {
		snapshot(current)
	}

	return NewTable(r, snapshots, FillZero)
}
