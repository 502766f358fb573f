package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerateSlots(t *testing.T) {
	cases := []struct {
		name     string
		interval Interval
		want     []int
	}{
		{
			name:     "even division",
			interval: Interval{Start: 540, End: 660, SlotDuration: 30},
			want:     []int{540, 570, 600, 630},
		},
		{
			name:     "end is exclusive",
			interval: Interval{Start: 540, End: 600, SlotDuration: 30},
			want:     []int{540, 570},
		},
		{
			name:     "uneven tail is clipped",
			interval: Interval{Start: 540, End: 625, SlotDuration: 30},
			want:     []int{540, 570, 600},
		},
		{
			name:     "zero duration falls back to default",
			interval: Interval{Start: 540, End: 600},
			want:     []int{540, 570},
		},
		{
			name:     "negative duration falls back to default",
			interval: Interval{Start: 540, End: 600, SlotDuration: -15},
			want:     []int{540, 570},
		},
		{
			name:     "reversed interval yields nothing",
			interval: Interval{Start: 660, End: 540, SlotDuration: 30},
			want:     nil,
		},
		{
			name:     "empty interval yields nothing",
			interval: Interval{Start: 540, End: 540, SlotDuration: 30},
			want:     nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EnumerateSlots(tc.interval))
		})
	}
}
