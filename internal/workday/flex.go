package workday

import "github.com/username/workday-tracker/pkg/hours"

// EffectiveHours returns the hours the day is settled at: the manual netto
// override while active (sick days and the like are paid at the planned
// rate), the measured actual hours otherwise.
func EffectiveHours(e *Entry) float64 {
	if e.NettoHoursOverrideActive {
		return e.NettoHoursOverride
	}
	return e.ActualHours
}

// TodaysFlex returns the day's own flex movement: effective minus planned
// hours, with -0.00 coerced to canonical zero.
func TodaysFlex(e *Entry) float64 {
	return hours.Canonical(hours.Round2(EffectiveHours(e) - e.PlanHours))
}

// ApplyFlex recomputes the day's closing balance:
//
//	sumFlexEnd = sumFlexStart + effective - plan - paidOutFlex
//
// SumFlexStart is supplied externally (the previous day's closing balance);
// the ledger is a strict chain and no history re-walk happens here.
func ApplyFlex(e *Entry) {
	end := e.SumFlexStart + EffectiveHours(e) - e.PlanHours - e.PaidOutFlex
	e.SumFlexEnd = hours.Canonical(hours.Round2(end))
}

// ChainFlex recomputes a consecutive window of days, feeding each day's
// closing balance into the next day's opening balance. The first day's
// SumFlexStart is taken as given.
func ChainFlex(entries []*Entry) {
	for i, e := range entries {
		if i > 0 {
			e.SumFlexStart = entries[i-1].SumFlexEnd
		}
		ApplyFlex(e)
	}
}
