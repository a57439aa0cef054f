package etfperf

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the portfolio's reporting
// currency (USD). Arithmetic stays in decimal; go-money is only used
// to format amounts for display.
type Money struct {
	value decimal.Decimal
}

// USD wraps a decimal amount in the reporting currency.
func USD(value decimal.Decimal) Money { return Money{value: value} }

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }

// String formats the amount with the USD currency formatter.
func (m Money) String() string {
	cur := money.GetCurrency(money.USD)
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString formats the amount with an explicit sign, and renders
// an exact zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON encodes the raw amount as a JSON number, rounded to cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.Round(2).String()), nil
}
