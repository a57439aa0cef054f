package etfperf

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// Side is the direction of a transaction.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseSide parses a transaction side as recorded in the ledger.
func ParseSide(s string) (Side, error) {
	switch s {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, InvalidArgumentError{Reason: fmt.Sprintf("unknown order side %q, want BUY or SELL", s)}
	}
}

// Transaction is a single buy or sell of an instrument. Quantity is a
// whole number of units, always positive; the side carries the sign.
type Transaction struct {
	Date     Date
	Ticker   string
	Quantity int64
	Side     Side
}

// Validate checks a transaction for basic correctness.
func (t Transaction) Validate() error {
	if t.Ticker == "" {
		return InvalidArgumentError{Reason: "transaction without a ticker"}
	}
	if t.Quantity <= 0 {
		return InvalidArgumentError{Reason: fmt.Sprintf("transaction quantity must be positive, got %d", t.Quantity)}
	}
	return nil
}

// delta returns the signed effect of the transaction on the held quantity.
func (t Transaction) delta() int64 {
	if t.Side == Sell {
		return -t.Quantity
	}
	return t.Quantity
}

// Ledger is an append-only list of transactions, always kept in
// chronological order. Transactions on the same day keep their original
// relative order; same-day deltas are additive so that order does not
// affect any computed balance.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions to the ledger and maintains chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable,
// so transactions on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Tickers returns the sorted set of instruments that appear in the ledger.
func (l *Ledger) Tickers() []string {
	visited := make(map[string]struct{})
	for _, tx := range l.transactions {
		visited[tx.Ticker] = struct{}{}
	}
	tickers := slices.Collect(maps.Keys(visited))
	slices.Sort(tickers)
	return tickers
}

// OldestTransactionDate returns the date of the earliest transaction,
// or the zero date for an empty ledger.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction,
// or the zero date for an empty ledger.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}
