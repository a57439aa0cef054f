package etfperf

import "strings"

// Period is the granularity of a performance aggregation window.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "month", "year").
func (p Period) Name() string {
	switch p {
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Range returns the full calendar period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// valid reports whether p is one of the supported granularities.
func (p Period) valid() bool { return p == Monthly || p == Yearly }

// ParsePeriod parses a performance granularity. Only monthly and yearly
// aggregations are supported; anything else is an InvalidArgumentError.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "month", "monthly":
		return Monthly, nil
	case "y", "year", "yearly", "annual", "annually":
		return Yearly, nil
	default:
		return 0, InvalidArgumentError{Reason: "unknown period " + s + ", want monthly or yearly"}
	}
}
