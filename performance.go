package etfperf

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PerformanceRow is the portfolio change over one aggregation window,
// keyed by the window's end date.
type PerformanceRow struct {
	Date Date    `json:"date"`
	USD  Money   `json:"usd_value"`
	Pct  Percent `json:"pct_value"`
}

// PerformanceReport is the portfolio performance bucketed into monthly
// or yearly windows. The first row is a synthetic origin at the range
// start with both values zero; every other row is one window.
type PerformanceReport struct {
	Granularity Period
	Rows        []PerformanceRow
}

// PortfolioPerformance buckets the valuation series into windows of the
// requested granularity over r and computes the absolute and percentage
// change of (positions value + cash) per window.
//
// Windows partition r contiguously: interior boundaries follow the
// calendar, but the first window is forced to start at r.From and the
// last to end at r.To, even mid-period. This makes the windows
// reconcile exactly to the full analysis range, at the cost of a
// possibly short first or last window.
//
// A window whose start value is zero reports a 0% change rather than an
// undefined division.
func PortfolioPerformance(positionsValue, cashFlow *Series, r Range, granularity Period) (*PerformanceReport, error) {
	if !granularity.valid() {
		return nil, InvalidArgumentError{Reason: fmt.Sprintf("unsupported granularity %d, want monthly or yearly", granularity)}
	}
	if r.From.After(r.To) {
		return nil, InvalidArgumentError{Reason: fmt.Sprintf("start date %s is after end date %s", r.From, r.To)}
	}

	var windows []Range
	for period := range r.Periods(granularity) {
		windows = append(windows, period)
	}
	windows[0].From = r.From
	windows[len(windows)-1].To = r.To

	value := func(on Date) (decimal.Decimal, error) {
		pv, ok := positionsValue.At(on)
		if !ok {
			return decimal.Decimal{}, DataError{Reason: fmt.Sprintf("positions value undefined on %s", on)}
		}
		cash, ok := cashFlow.At(on)
		if !ok {
			return decimal.Decimal{}, DataError{Reason: fmt.Sprintf("cash balance undefined on %s", on)}
		}
		return pv.Add(cash), nil
	}

	report := &PerformanceReport{Granularity: granularity}
	report.Rows = append(report.Rows, PerformanceRow{Date: r.From})
	for _, window := range windows {
		startValue, err := value(window.From)
		if err != nil {
			return nil, err
		}
		endValue, err := value(window.To)
		if err != nil {
			return nil, err
		}
		row := PerformanceRow{Date: window.To, USD: USD(endValue.Sub(startValue))}
		if !startValue.IsZero() {
			pct, _ := endValue.Sub(startValue).Div(startValue).Mul(decimal.NewFromInt(100)).Float64()
			row.Pct = Percent(pct)
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// Windows returns the contiguous (start, end) window boundaries the
// report was computed over, reconstructed from its rows.
func (p *PerformanceReport) Windows() []Range {
	windows := make([]Range, 0, len(p.Rows)-1)
	from := p.Rows[0].Date
	for _, row := range p.Rows[1:] {
		windows = append(windows, Range{From: from, To: row.Date})
		from = row.Date.Add(1)
	}
	return windows
}

// Slice returns the rows whose date falls within the given range.
func (p *PerformanceReport) Slice(r Range) *PerformanceReport {
	out := &PerformanceReport{Granularity: p.Granularity}
	for _, row := range p.Rows {
		if r.Contains(row.Date) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
