package wire

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/username/workday-tracker/internal/workday"
	"github.com/username/workday-tracker/pkg/dateutil"
	"github.com/username/workday-tracker/pkg/timeenc"
)

// Decode converts a backend snapshot into the engine model.
//
// Planned fields are taken as minute-of-day, with an end of 0 on a slot whose
// start is set normalized to 1440 (next-day midnight) so the engine can tell
// it apart from unset. Actual start/stop minutes come from the punch
// timestamps when present; otherwise they are reconstructed from the 5-minute
// indices. Pause minutes always decode through the protocol's -1 offset.
func Decode(r *WorkdayRecord) (*workday.Entry, error) {
	date, err := dateutil.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record date %q: %w", r.Date, err)
	}

	entry := &workday.Entry{
		Date:                     dateutil.StartOfDay(date),
		PlanHours:                r.PlanHours,
		ActualHours:              r.ActualHours,
		NettoHoursOverride:       r.NettoHoursOverride,
		NettoHoursOverrideActive: r.NettoHoursOverrideActive,
		PaidOutFlex:              r.PaidOutFlex,
		SumFlexStart:             r.SumFlexStart,
		SumFlexEnd:               r.SumFlexEnd,
		Comment:                  r.Comment,
	}

	dayType := workday.DayType(r.Message)
	if !dayType.Valid() {
		return nil, fmt.Errorf("unknown day-type message %d", r.Message)
	}
	entry.DayType = dayType

	for i, slot := range r.plannedSlots() {
		start, end, breakMinutes := slot[0], slot[1], slot[2]
		if start != 0 && end == 0 {
			end = timeenc.MinutesPerDay
		}
		entry.Planned[i] = workday.ShiftSlot{Start: start, End: end, Break: breakMinutes}
	}

	ids := r.punchIDs()
	times := r.punchTimes()
	for i := 0; i < workday.MaxShifts; i++ {
		startID, stopID, pauseID := ids[i][0], ids[i][1], ids[i][2]
		startedAt, stoppedAt := times[i][0], times[i][1]

		start := timeenc.IndexMinutes(startID)
		if startedAt != nil {
			start = startedAt.Hour()*60 + startedAt.Minute()
		}

		stop := timeenc.IndexMinutes(stopID)
		if stoppedAt != nil && stopID != timeenc.MidnightStopIndex {
			stop = minuteOfDay(stoppedAt.Time)
		}

		entry.Actual[i] = workday.ShiftSlot{
			Start: start,
			End:   stop,
			Break: timeenc.PauseMinutes(pauseID),
		}
	}

	return entry, nil
}

// Encode converts an engine entry back into the backend snapshot shape,
// re-quantizing actual punches to 5-minute indices and stamping the absolute
// instants for any punch that is set.
func Encode(e *workday.Entry, siteID, workerID uuid.UUID) *WorkdayRecord {
	r := &WorkdayRecord{
		SiteID:                   siteID,
		WorkerID:                 workerID,
		Date:                     e.Date.Format("2006-01-02"),
		PlanHours:                e.PlanHours,
		ActualHours:              e.ActualHours,
		NettoHoursOverride:       e.NettoHoursOverride,
		NettoHoursOverrideActive: e.NettoHoursOverrideActive,
		PaidOutFlex:              e.PaidOutFlex,
		SumFlexStart:             e.SumFlexStart,
		SumFlexEnd:               e.SumFlexEnd,
		Message:                  int(e.DayType),
		Comment:                  e.Comment,
	}

	planned := make([][3]int, workday.MaxShifts)
	for i, slot := range e.Planned {
		end := slot.End
		if end == timeenc.MinutesPerDay {
			end = 0 // planned midnight stop is stored as bare zero
		}
		planned[i] = [3]int{slot.Start, end, slot.Break}
	}
	r.PlannedStartOfShift1, r.PlannedEndOfShift1, r.PlannedBreakOfShift1 = planned[0][0], planned[0][1], planned[0][2]
	r.PlannedStartOfShift2, r.PlannedEndOfShift2, r.PlannedBreakOfShift2 = planned[1][0], planned[1][1], planned[1][2]
	r.PlannedStartOfShift3, r.PlannedEndOfShift3, r.PlannedBreakOfShift3 = planned[2][0], planned[2][1], planned[2][2]
	r.PlannedStartOfShift4, r.PlannedEndOfShift4, r.PlannedBreakOfShift4 = planned[3][0], planned[3][1], planned[3][2]
	r.PlannedStartOfShift5, r.PlannedEndOfShift5, r.PlannedBreakOfShift5 = planned[4][0], planned[4][1], planned[4][2]

	ids := make([][3]int, workday.MaxShifts)
	stamps := make([][2]*PunchTime, workday.MaxShifts)
	for i, slot := range e.Actual {
		ids[i] = [3]int{
			timeenc.PunchIndex(slot.Start),
			timeenc.StopIndex(slot.End),
			timeenc.PauseIndex(slot.Break),
		}
		if slot.Start != 0 {
			stamps[i][0] = punchStamp(e.Date, slot.Start)
		}
		if slot.End != 0 {
			stamps[i][1] = punchStamp(e.Date, slot.End)
		}
	}
	r.Start1ID, r.Stop1ID, r.Pause1ID = ids[0][0], ids[0][1], ids[0][2]
	r.Start2ID, r.Stop2ID, r.Pause2ID = ids[1][0], ids[1][1], ids[1][2]
	r.Start3ID, r.Stop3ID, r.Pause3ID = ids[2][0], ids[2][1], ids[2][2]
	r.Start4ID, r.Stop4ID, r.Pause4ID = ids[3][0], ids[3][1], ids[3][2]
	r.Start5ID, r.Stop5ID, r.Pause5ID = ids[4][0], ids[4][1], ids[4][2]

	r.Start1StartedAt, r.Stop1StoppedAt = stamps[0][0], stamps[0][1]
	r.Start2StartedAt, r.Stop2StoppedAt = stamps[1][0], stamps[1][1]
	r.Start3StartedAt, r.Stop3StoppedAt = stamps[2][0], stamps[2][1]
	r.Start4StartedAt, r.Stop4StoppedAt = stamps[3][0], stamps[3][1]
	r.Start5StartedAt, r.Stop5StoppedAt = stamps[4][0], stamps[4][1]

	return r
}

// DecodeWeeklyConfig converts the per-site defaults record into the engine's
// weekly configuration and break rules.
func DecodeWeeklyConfig(r *SiteWeeklyConfigRecord, global [7]workday.Bucket) (workday.WeeklyConfig, workday.BreakRules) {
	cfg := workday.WeeklyConfig{
		ThirdShiftActive:  r.ThirdShiftActive,
		FourthShiftActive: r.FourthShiftActive,
		FifthShiftActive:  r.FifthShiftActive,
		DefaultPlanHours:  r.PlanHoursPerWeekday,
	}

	rules := workday.BreakRules{Global: global}
	for i, spec := range r.AutoBreakBuckets {
		rules.Site[i] = workday.Bucket{
			Divider:    spec.Divider,
			PerDivider: spec.PerDivider,
			UpperLimit: spec.UpperLimit,
		}
		cfg.AutoBreak[i] = rules.Bucket(i)
	}

	return cfg, rules
}

// minuteOfDay projects a punch instant onto its minute-of-day. Midnight
// instants belong to the day they close, so they map to 1440 rather than 0.
func minuteOfDay(t time.Time) int {
	m := t.Hour()*60 + t.Minute()
	if m == 0 {
		return timeenc.MinutesPerDay
	}
	return m
}

// punchStamp renders a minute-of-day as an absolute instant on the entry's
// date. Minute 1440 lands on the next day's midnight.
func punchStamp(date time.Time, minutes int) *PunchTime {
	day := dateutil.StartOfDay(date)
	return &PunchTime{Time: day.Add(time.Duration(minutes) * time.Minute)}
}
