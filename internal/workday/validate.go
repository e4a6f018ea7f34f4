package workday

import "fmt"

// Error kinds are stable identifiers consumed by the presentation layer,
// which owns their translation. The engine never produces free text.
const (
	ErrRequired      = "required"
	ErrInvalidTime   = "invalidTime"
	ErrNotNumber     = "notNumber"
	ErrSameStartStop = "sameStartStop"
	ErrInvalidRange  = "invalidRange"
	ErrInvalidStart  = "invalidStart"
	ErrNegativeBreak = "negativeBreak"
	ErrBreakTooLong  = "breakTooLong"
	ErrShiftTooLong  = "shiftTooLong"
	ErrTooManyHours  = "tooManyHours"
	ErrHierarchy     = "hierarchyError"
)

// Result maps field paths ("planned.shift2.start", "planHours") to the
// ordered list of error kinds attached to that control or group. A day is
// savable iff no path carries any kind.
type Result struct {
	Fields map[string][]string
}

// NewResult creates an empty validation result
func NewResult() *Result {
	return &Result{Fields: make(map[string][]string)}
}

// Add attaches an error kind to a field path, keeping insertion order and
// dropping duplicates.
func (r *Result) Add(path, kind string) {
	for _, existing := range r.Fields[path] {
		if existing == kind {
			return
		}
	}
	r.Fields[path] = append(r.Fields[path], kind)
}

// Merge copies every error from other into r.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	for path, kinds := range other.Fields {
		for _, kind := range kinds {
			r.Add(path, kind)
		}
	}
}

// Has reports whether the path carries the given kind.
func (r *Result) Has(path, kind string) bool {
	for _, existing := range r.Fields[path] {
		if existing == kind {
			return true
		}
	}
	return false
}

// CanSave reports whether the day may be persisted: the logical AND of
// validity across every control and group.
func (r *Result) CanSave() bool {
	return len(r.Fields) == 0
}

// Count returns the total number of attached errors.
func (r *Result) Count() int {
	n := 0
	for _, kinds := range r.Fields {
		n += len(kinds)
	}
	return n
}

func fieldPath(set string, shift int, field string) string {
	return fmt.Sprintf("%s.shift%d.%s", set, shift+1, field)
}

func groupPath(set string, shift int) string {
	return fmt.Sprintf("%s.shift%d", set, shift+1)
}

// Validate runs every constraint over the entry and returns the structured
// error set. It never fails and never panics; all findings are values.
func Validate(e *Entry, cfg WeeklyConfig) *Result {
	r := NewResult()

	validateSet(r, "planned", e.Planned, cfg)
	validateSet(r, "actual", e.Actual, cfg)
	validateAggregate(r, e, cfg)

	return r
}

func validateSet(r *Result, set string, slots [MaxShifts]ShiftSlot, cfg WeeklyConfig) {
	for i := 0; i < MaxShifts; i++ {
		if !cfg.ShiftActive(i) {
			continue
		}
		validateSlot(r, set, i, slots[i])
	}
	validateOrdering(r, set, slots, cfg)
}

func validateSlot(r *Result, set string, shift int, s ShiftSlot) {
	if s.Empty() {
		return
	}

	// Required pairing: one of start/stop set means both must be.
	if s.Start == 0 {
		r.Add(fieldPath(set, shift, "start"), ErrRequired)
		return
	}
	if s.End == 0 {
		r.Add(fieldPath(set, shift, "stop"), ErrRequired)
		return
	}

	if s.Start == s.End {
		r.Add(fieldPath(set, shift, "start"), ErrSameStartStop)
		r.Add(fieldPath(set, shift, "stop"), ErrSameStartStop)
		return
	}

	// A next-day midnight stop (1440) is a wraparound, not "before start".
	if s.End != MinutesPerDay && s.End < s.Start {
		r.Add(fieldPath(set, shift, "stop"), ErrInvalidRange)
	}

	span := ShiftDuration(s.Start, s.End, 0)

	if s.Break < 0 {
		r.Add(fieldPath(set, shift, "break"), ErrNegativeBreak)
	} else if s.Break > 0 && s.Break >= span {
		r.Add(fieldPath(set, shift, "break"), ErrBreakTooLong)
	}

	if span > MinutesPerDay {
		r.Add(groupPath(set, shift), ErrShiftTooLong)
	}
}

func validateOrdering(r *Result, set string, slots [MaxShifts]ShiftSlot, cfg WeeklyConfig) {
	for i := 0; i+1 < MaxShifts; i++ {
		if !cfg.ShiftActive(i) || !cfg.ShiftActive(i+1) {
			continue
		}
		cur, next := slots[i], slots[i+1]
		if !cur.InUse() || !next.InUse() {
			continue
		}

		// A non-first shift may not start exactly at midnight; the zero
		// sentinel would be ambiguous with an unset field.
		if next.Start == 0 {
			r.Add(fieldPath(set, i+1, "start"), ErrInvalidStart)
			continue
		}

		if next.Start < cur.End {
			r.Add(fieldPath(set, i+1, "start"), ErrHierarchy)
		}
	}
}

func validateAggregate(r *Result, e *Entry, cfg WeeklyConfig) {
	if PlannedMinutes(e, cfg) > MinutesPerDay {
		r.Add("planned", ErrTooManyHours)
	}
	if e.PlanHours < 0 || e.PlanHours > 24 {
		r.Add("planHours", ErrTooManyHours)
	}
}
