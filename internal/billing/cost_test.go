package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCost(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		rate     float64
		expected float64
	}{
		{name: "Zero duration bills one hour", duration: 0, rate: 10, expected: 10},
		{name: "One second bills one hour", duration: time.Second, rate: 10, expected: 10},
		{name: "Just under an hour", duration: 3599 * time.Second, rate: 10, expected: 10},
		{name: "Exactly one hour", duration: time.Hour, rate: 10, expected: 10},
		{name: "One hour and a nanosecond", duration: time.Hour + time.Nanosecond, rate: 10, expected: 20},
		{name: "Ninety minutes", duration: 90 * time.Minute, rate: 10, expected: 20},
		{name: "Exactly two hours", duration: 7200 * time.Second, rate: 10, expected: 20},
		{name: "Fractional rate", duration: 3 * time.Hour, rate: 12.35, expected: 37.05},
		{name: "Free lot", duration: 5 * time.Hour, rate: 0, expected: 0},
		{name: "Three decimal rate", duration: time.Hour, rate: 12.345, expected: 12.345},
		{name: "Sub-cent rate", duration: 30 * time.Minute, rate: 0.004, expected: 0.004},
		{name: "Three decimal rate over two hours", duration: 2 * time.Hour, rate: 7.125, expected: 14.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Cost(start, start.Add(tt.duration), tt.rate))
		})
	}
}

func TestCost_Monotone(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	prev := Cost(start, start, 7.5)
	for d := time.Duration(0); d <= 10*time.Hour; d += 7 * time.Minute {
		cost := Cost(start, start.Add(d), 7.5)
		assert.GreaterOrEqual(t, cost, prev, "duration %s", d)
		prev = cost
	}
}

func TestHours(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(1), Hours(start, start.Add(-time.Minute)))
	assert.Equal(t, int64(1), Hours(start, start.Add(59*time.Minute)))
	assert.Equal(t, int64(3), Hours(start, start.Add(2*time.Hour+time.Second)))
}
