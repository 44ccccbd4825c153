// Package billing computes parking fees.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// Hours returns the number of billable hours between start and end: the
// elapsed time rounded up to whole hours, never less than one.
func Hours(start, end time.Time) int64 {
	elapsed := end.Sub(start)
	if elapsed <= 0 {
		return 1
	}
	seconds := decimal.NewFromInt(int64(elapsed / time.Second))
	if rem := elapsed % time.Second; rem > 0 {
		seconds = seconds.Add(decimal.New(int64(rem), -9))
	}
	hours := seconds.Div(secondsPerHour).Ceil().IntPart()
	if hours < 1 {
		return 1
	}
	return hours
}

// Cost returns the fee for a session from start to end at rate per hour.
func Cost(start, end time.Time, rate float64) float64 {
	amount := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(Hours(start, end)))
	return amount.InexactFloat64()
}
