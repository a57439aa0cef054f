package etfperf

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// StdDevOfDailyReturns computes the sample standard deviation of the
// day-over-day percentage returns of total portfolio value (positions
// value plus cash).
//
// The first day has no prior value and is excluded from the sample, as
// is any day whose own or prior value is null. The result uses the
// Bessel-corrected divisor n-1 where n is the count of valid daily
// returns. A prior value of zero, or a sample of fewer than two
// returns, is a DataError.
func StdDevOfDailyReturns(positionsValue, cashFlow *Series) (float64, error) {
	portfolio, err := positionsValue.Add(cashFlow)
	if err != nil {
		return 0, err
	}

	var returns stats.Float64Data
	var prev = struct {
		value float64
		date  Date
		valid bool
	}{}
	for d, cell := range portfolio.Values() {
		if !cell.Valid {
			prev.valid = false
			continue
		}
		value, _ := cell.Decimal.Float64()
		if prev.valid {
			if prev.value == 0 {
				return 0, DataError{Reason: fmt.Sprintf("daily return undefined: portfolio value is zero on %s", prev.date)}
			}
			returns = append(returns, (value-prev.value)/prev.value*100)
		}
		prev.value, prev.date, prev.valid = value, d, true
	}

	if len(returns) <= 1 {
		return 0, DataError{Reason: fmt.Sprintf("standard deviation needs at least two daily returns, got %d", len(returns))}
	}
	return stats.StandardDeviationSample(returns)
}
