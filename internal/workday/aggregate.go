package workday

import (
	"github.com/username/workday-tracker/pkg/hours"
	"github.com/username/workday-tracker/pkg/timeenc"
)

// ComputePlanHours derives plan hours from the planned slots when any slot
// carries a registration. When all slots are empty, the typed PlanHours field
// stays authoritative and is left untouched; the two sources are mutually
// exclusive.
func ComputePlanHours(e *Entry, cfg WeeklyConfig) {
	if !e.HasPlannedSlots() {
		return
	}
	e.PlanHours = hours.FromMinutes(PlannedMinutes(e, cfg))
}

// ComputeActualHours derives actual hours strictly from the punch-clock
// registrations. The arithmetic runs on the 5-minute punch indices, exactly
// as the backend stores them: a shift contributes only when its stop index is
// set, and each contribution is stopId - pauseCorrection - startId ticks.
func ComputeActualHours(e *Entry, cfg WeeklyConfig) {
	ticks := 0
	for i := 0; i < MaxShifts; i++ {
		if !cfg.ShiftActive(i) {
			continue
		}
		s := e.Actual[i]

		stopID := timeenc.StopIndex(s.End)
		if stopID == 0 {
			continue
		}

		startID := timeenc.PunchIndex(s.Start)
		pause := timeenc.PauseTicks(timeenc.PauseIndex(s.Break))

		ticks += stopID - pause - startID
	}

	e.ActualHours = hours.Round2(float64(ticks*5) / 60.0)
}

// StartEnabled reports whether shift i's start control is editable. A later
// shift only unlocks once the prior shift's stop holds a non-empty,
// non-midnight value. This is a derived predicate over the slot values, kept
// deliberately free of stored UI flags.
func StartEnabled(slots [MaxShifts]ShiftSlot, i int) bool {
	if i <= 0 {
		return i == 0
	}
	if i >= MaxShifts {
		return false
	}
	prior := slots[i-1].End
	return prior != 0 && prior != MinutesPerDay
}

// PlanHoursEditable reports whether the typed plan-hours field is editable:
// only while shift 1 carries no planned start or stop.
func PlanHoursEditable(e *Entry) bool {
	return e.Planned[0].Empty()
}
