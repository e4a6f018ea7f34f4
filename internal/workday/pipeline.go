package workday

import (
	"strconv"
	"strings"

	"github.com/username/workday-tracker/pkg/hours"
	"github.com/username/workday-tracker/pkg/timeenc"
)

// Edit is one raw field edit as received from the UI, addressed by the same
// field paths the validation result uses.
type Edit struct {
	Path string
	Text string
}

// ApplyEdits normalizes raw text edits into the entry and returns the parse
// errors (invalidTime, notNumber) keyed by field path. Unparseable values
// leave the previous field value untouched.
func ApplyEdits(e *Entry, edits []Edit) *Result {
	r := NewResult()
	for _, edit := range edits {
		applyEdit(e, edit, r)
	}
	return r
}

func applyEdit(e *Entry, edit Edit, r *Result) {
	switch edit.Path {
	case "planHours":
		value, ok := hours.Parse(edit.Text)
		if !ok {
			r.Add(edit.Path, ErrNotNumber)
			return
		}
		e.PlanHours = value
		return
	case "paidOutFlex":
		value, ok := hours.Parse(edit.Text)
		if !ok {
			r.Add(edit.Path, ErrNotNumber)
			return
		}
		e.PaidOutFlex = value
		return
	case "nettoHoursOverride":
		value, ok := hours.Parse(edit.Text)
		if !ok {
			r.Add(edit.Path, ErrNotNumber)
			return
		}
		e.NettoHoursOverride = value
		e.NettoHoursOverrideActive = true
		return
	case "comment":
		e.Comment = edit.Text
		return
	}

	set, shift, field, ok := splitSlotPath(edit.Path)
	if !ok {
		r.Add(edit.Path, ErrInvalidTime)
		return
	}

	slots := &e.Planned
	if set == "actual" {
		slots = &e.Actual
	}

	switch field {
	case "start", "stop":
		minutes := 0
		if strings.TrimSpace(edit.Text) != "" {
			var parsed bool
			minutes, parsed = timeenc.ToMinutes(edit.Text)
			if !parsed {
				r.Add(edit.Path, ErrInvalidTime)
				return
			}
		}
		if field == "start" {
			slots[shift].Start = minutes
		} else {
			// An explicit "00:00" stop means next-day midnight, not unset.
			if minutes == 0 && strings.TrimSpace(edit.Text) != "" {
				minutes = MinutesPerDay
			}
			slots[shift].End = minutes
		}
	case "break":
		text := strings.TrimSpace(edit.Text)
		minutes := 0
		if text != "" {
			var err error
			minutes, err = strconv.Atoi(text)
			if err != nil {
				r.Add(edit.Path, ErrNotNumber)
				return
			}
		}
		slots[shift].Break = minutes
	default:
		r.Add(edit.Path, ErrInvalidTime)
	}
}

// splitSlotPath parses "planned.shift2.start" style paths.
func splitSlotPath(path string) (set string, shift int, field string, ok bool) {
	parts := strings.Split(path, ".")
	if len(parts) != 3 {
		return "", 0, "", false
	}

	set = parts[0]
	if set != "planned" && set != "actual" {
		return "", 0, "", false
	}

	if !strings.HasPrefix(parts[1], "shift") {
		return "", 0, "", false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(parts[1], "shift"))
	if err != nil || n < 1 || n > MaxShifts {
		return "", 0, "", false
	}

	return set, n - 1, parts[2], true
}

// Recompute runs the full ordered pipeline over the entry: validate, then
// (only when savable) aggregate plan and actual hours, settle the flex
// ledger, and reclassify the cell. Aggregation assumes already-sane inputs,
// so a blocking validation error stops the pipeline early.
func Recompute(e *Entry, cfg WeeklyConfig) *Result {
	result := Validate(e, cfg)
	if !result.CanSave() {
		return result
	}

	ComputePlanHours(e, cfg)
	ComputeActualHours(e, cfg)
	ApplyFlex(e)
	e.Status = Classify(e)

	return result
}

// RecomputeEdits applies raw edits and then recomputes. Parse errors block
// aggregation the same way validation errors do.
func RecomputeEdits(e *Entry, cfg WeeklyConfig, edits []Edit) *Result {
	result := ApplyEdits(e, edits)
	if !result.CanSave() {
		result.Merge(Validate(e, cfg))
		return result
	}

	result.Merge(Recompute(e, cfg))
	return result
}
