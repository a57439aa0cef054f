package etfperf

import "fmt"

// InvalidArgumentError reports a request parameter that cannot be
// honored: an unsupported aggregation granularity, or a date range
// whose start is after its end.
type InvalidArgumentError struct {
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// AlignmentError reports price and quantity tables whose date ranges or
// instrument columns disagree. This is an integration error, not user
// input: callers must build both tables from the same range and
// exclusion set.
type AlignmentError struct {
	Detail string
}

func (e AlignmentError) Error() string {
	return "misaligned series: " + e.Detail
}

// MissingPriceError reports a transaction that references a date and
// instrument with no recorded price. The cash replay needs the exact
// price on the trade date and never falls back to a nearby one.
type MissingPriceError struct {
	Date   Date
	Ticker string
}

func (e MissingPriceError) Error() string {
	return fmt.Sprintf("no price for %s on %s", e.Ticker, e.Date)
}

// DataError reports a statistic that is undefined on the given dataset,
// e.g. a standard deviation over fewer than two returns or a daily
// return with a zero base value.
type DataError struct {
	Reason string
}

func (e DataError) Error() string {
	return "undefined on this dataset: " + e.Reason
}
