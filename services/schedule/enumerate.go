package schedule

// EnumerateSlots expands a working-hours interval into candidate start
// times, stepping by the interval's slot duration. The end bound is
// exclusive: no candidate starts at or after it. A reversed interval
// yields nothing; upstream filtering should already have dropped it,
// but it must not loop here either.
func EnumerateSlots(iv Interval) []int {
	duration := iv.SlotDuration
	if duration <= 0 {
		duration = DefaultSlotDurationMinutes
	}
	if iv.Start >= iv.End {
		return nil
	}

	var times []int
	for t := iv.Start; t < iv.End; t += duration {
		times = append(times, t)
	}
	return times
}
