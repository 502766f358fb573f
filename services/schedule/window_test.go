package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeBufferWindowDefaults(t *testing.T) {
	today := day(2025, time.June, 2)
	w := ComputeBufferWindow(today, nil, nil)

	assert.Equal(t, today, w.Min)
	assert.Equal(t, today.AddDate(0, 0, 365), w.Max)
}

func TestComputeBufferWindowConfigured(t *testing.T) {
	today := day(2025, time.June, 2)
	w := ComputeBufferWindow(today, intPtr(2), intPtr(14))

	assert.Equal(t, day(2025, time.June, 4), w.Min)
	assert.Equal(t, day(2025, time.June, 16), w.Max)
}

func TestComputeBufferWindowNormalizesToday(t *testing.T) {
	// Time-of-day on "today" must not shift the window.
	lateToday := time.Date(2025, time.June, 2, 23, 45, 0, 0, time.UTC)
	w := ComputeBufferWindow(lateToday, intPtr(0), intPtr(7))

	assert.Equal(t, day(2025, time.June, 2), w.Min)
	assert.Equal(t, day(2025, time.June, 9), w.Max)
}

func TestBufferWindowContains(t *testing.T) {
	today := day(2025, time.June, 2)
	w := ComputeBufferWindow(today, intPtr(1), intPtr(3))

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"before min", day(2025, time.June, 2), false},
		{"at min", day(2025, time.June, 3), true},
		{"inside", day(2025, time.June, 4), true},
		{"at max", day(2025, time.June, 5), true},
		{"after max", day(2025, time.June, 6), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, w.Contains(tc.date))
		})
	}
}
