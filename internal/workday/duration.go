package workday

// ShiftDuration computes elapsed minutes for one shift.
//
// Rules:
//  1. An unset start (0) yields zero minutes. An end of 0 with the start set
//     is not "unset" but next-day midnight, see rule 3.
//  2. start == end is an invalid pairing; the validator reports it as
//     sameStartStop, the duration is zero rather than a bogus 1440.
//  3. A raw span <= 0 (including end == 0, meaning next-day midnight) wraps
//     by one day.
//  4. The break is subtracted and the result floors at zero.
func ShiftDuration(start, end, breakMinutes int) int {
	if start == 0 {
		return 0
	}
	if start == end {
		return 0
	}

	span := end - start
	if span <= 0 {
		span += MinutesPerDay
	}

	span -= breakMinutes
	if span < 0 {
		span = 0
	}

	return span
}

// SlotDuration computes elapsed minutes for one slot.
func SlotDuration(s ShiftSlot) int {
	return ShiftDuration(s.Start, s.End, s.Break)
}

// PlannedMinutes sums planned slot durations over the shifts active in the
// site's weekly configuration.
func PlannedMinutes(e *Entry, cfg WeeklyConfig) int {
	total := 0
	for i := 0; i < MaxShifts; i++ {
		if !cfg.ShiftActive(i) {
			continue
		}
		total += SlotDuration(e.Planned[i])
	}
	return total
}
