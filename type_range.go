package etfperf

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. A range whose start is after its
// end is malformed and rejected with an InvalidArgumentError.
func NewRange(from, to Date) (Range, error) {
	if from.After(to) {
		return Range{}, InvalidArgumentError{Reason: fmt.Sprintf("start date %s is after end date %s", from, to)}
	}
	return Range{From: from, To: to}, nil
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of calendar days in the range, inclusive.
func (r Range) Days() int { return r.To.Sub(r.From) + 1 }

// index returns the day offset of d from the range start.
func (r Range) index(d Date) int { return d.Sub(r.From) }

// date returns the i-th day of the range.
func (r Range) date(i int) Date { return r.From.Add(i) }

// Dates returns an iterator that yields each date within the range, inclusive.
func (r Range) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Periods returns an iterator that yields each sequential calendar period
// of granularity p that contains at least one day of r. The yielded ranges
// are full calendar periods and may extend beyond r at both ends.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for current := r.From; !current.After(r.To); {
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			current = periodRange.To.Add(1)
		}
	}
}

// Clamp returns the intersection of r and s. The boolean is false when
// they do not overlap.
func (r Range) Clamp(s Range) (Range, bool) {
	from, to := r.From, r.To
	if s.From.After(from) {
		from = s.From
	}
	if s.To.Before(to) {
		to = s.To
	}
	if from.After(to) {
		return Range{}, false
	}
	return Range{From: from, To: to}, true
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
