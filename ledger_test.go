package etfperf

import (
	"slices"
	"testing"
)

func TestLedger_AppendKeepsChronologicalOrder(t *testing.T) {
	l := NewLedger()
	l.Append(
		tx("2024-03-01", "EMIM", 5, Sell),
		tx("2024-01-02", "IWDA", 10, Buy),
		tx("2024-01-02", "EMIM", 20, Buy),
	)

	var dates []string
	for transaction := range l.Transactions() {
		dates = append(dates, transaction.Date.String())
	}
	want := []string{"2024-01-02", "2024-01-02", "2024-03-01"}
	if !slices.Equal(dates, want) {
		t.Errorf("dates = %v, want %v", dates, want)
	}

	// Same-day transactions keep their original relative order.
	var sameDay []string
	for transaction := range l.Transactions() {
		if transaction.Date == MustParseDate("2024-01-02") {
			sameDay = append(sameDay, transaction.Ticker)
		}
	}
	if !slices.Equal(sameDay, []string{"IWDA", "EMIM"}) {
		t.Errorf("same-day order = %v, want [IWDA EMIM]", sameDay)
	}
}

func TestLedger_Bounds(t *testing.T) {
	l := NewLedger()
	if !l.OldestTransactionDate().IsZero() || !l.NewestTransactionDate().IsZero() {
		t.Error("empty ledger should have zero bounds")
	}
	l.Append(tx("2024-02-01", "IWDA", 1, Buy), tx("2024-01-15", "IWDA", 1, Buy))
	if got := l.OldestTransactionDate(); got != MustParseDate("2024-01-15") {
		t.Errorf("OldestTransactionDate = %v", got)
	}
	if got := l.NewestTransactionDate(); got != MustParseDate("2024-02-01") {
		t.Errorf("NewestTransactionDate = %v", got)
	}
}

func TestLedger_Tickers(t *testing.T) {
	l := NewLedger()
	l.Append(tx("2024-01-02", "IWDA", 1, Buy), tx("2024-01-03", "EMIM", 1, Buy), tx("2024-01-04", "IWDA", 1, Sell))
	if got := l.Tickers(); !slices.Equal(got, []string{"EMIM", "IWDA"}) {
		t.Errorf("Tickers = %v", got)
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{name: "valid", tx: tx("2024-01-02", "IWDA", 10, Buy)},
		{name: "zero quantity", tx: tx("2024-01-02", "IWDA", 0, Buy), wantErr: true},
		{name: "negative quantity", tx: tx("2024-01-02", "IWDA", -3, Sell), wantErr: true},
		{name: "missing ticker", tx: tx("2024-01-02", "", 10, Buy), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.tx.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSide(t *testing.T) {
	if side, err := ParseSide("BUY"); err != nil || side != Buy {
		t.Errorf("ParseSide(BUY) = %v, %v", side, err)
	}
	if side, err := ParseSide("SELL"); err != nil || side != Sell {
		t.Errorf("ParseSide(SELL) = %v, %v", side, err)
	}
	if _, err := ParseSide("buy"); err == nil {
		t.Error("sides are recorded uppercase, lowercase should fail")
	}
}
