package workday

import "time"

// MaxShifts is the number of shift slots per day, planned and actual alike.
const MaxShifts = 5

// MinutesPerDay is the length of one calendar day in minutes.
const MinutesPerDay = 1440

// DayType is the exclusive day annotation (sick, vacation, ...). The zero
// value means no annotation. Wire encoding is the 1-based constant value.
type DayType int

const (
	DayTypeNone DayType = iota
	DayTypeDayOff
	DayTypeVacation
	DayTypeSick
	DayTypeCourse
	DayTypeLeaveOfAbsence
	DayTypeCare
	DayTypeChildren1stSick
	DayTypeChildren2ndSick
	DayTypeTimeOff
	DayTypeBlank
)

// String returns the annotation name
func (d DayType) String() string {
	switch d {
	case DayTypeNone:
		return "none"
	case DayTypeDayOff:
		return "dayOff"
	case DayTypeVacation:
		return "vacation"
	case DayTypeSick:
		return "sick"
	case DayTypeCourse:
		return "course"
	case DayTypeLeaveOfAbsence:
		return "leaveOfAbsence"
	case DayTypeCare:
		return "care"
	case DayTypeChildren1stSick:
		return "children1stSick"
	case DayTypeChildren2ndSick:
		return "children2ndSick"
	case DayTypeTimeOff:
		return "timeOff"
	case DayTypeBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the known annotations (including none).
func (d DayType) Valid() bool {
	return d >= DayTypeNone && d <= DayTypeBlank
}

// ShiftSlot is one start/stop/break triple, planned or actual.
//
// Start and End are minute-of-day in [0, 1439], where 0 doubles as "not set";
// the punch clock cannot distinguish an empty field from midnight. A stop at
// next-day midnight is stored as 1440 so that it is not mistaken for unset.
// Break is plain minutes.
type ShiftSlot struct {
	Start int
	End   int
	Break int
}

// Empty reports whether the slot carries no registration at all.
func (s ShiftSlot) Empty() bool {
	return s.Start == 0 && s.End == 0
}

// InUse reports whether the slot has at least one of start/stop set.
func (s ShiftSlot) InUse() bool {
	return !s.Empty()
}

// Entry is one calendar day for one site and worker, owned exclusively by the
// active edit session. All derived fields (ActualHours, SumFlexEnd, Status)
// are recomputed by the pipeline after every edit.
type Entry struct {
	Date time.Time

	Planned [MaxShifts]ShiftSlot
	Actual  [MaxShifts]ShiftSlot

	// PlanHours is either typed directly or derived from the planned slots;
	// the two sources are mutually exclusive (see ComputePlanHours).
	PlanHours   float64
	ActualHours float64

	// NettoHoursOverride replaces ActualHours in the flex calculation while
	// active, e.g. on a sick day paid at the planned rate.
	NettoHoursOverride       float64
	NettoHoursOverrideActive bool

	PaidOutFlex  float64
	SumFlexStart float64
	SumFlexEnd   float64

	DayType DayType
	Comment string

	Status CellStatus
}

// SetDayType switches the day annotation. At most one annotation is active
// per day; setting a new one replaces the previous one. Annotations other
// than DayOff pay the day at the planned rate by overriding actual hours
// with plan hours; DayOff clears the override instead.
func (e *Entry) SetDayType(t DayType) {
	e.DayType = t
	switch t {
	case DayTypeNone, DayTypeDayOff:
		e.NettoHoursOverrideActive = false
		e.NettoHoursOverride = 0
	default:
		e.NettoHoursOverrideActive = true
		e.NettoHoursOverride = e.PlanHours
	}
}

// HasPlannedSlots reports whether any planned slot carries a registration,
// which makes the slots authoritative over the typed PlanHours field.
func (e *Entry) HasPlannedSlots() bool {
	for i := range e.Planned {
		if e.Planned[i].InUse() {
			return true
		}
	}
	return false
}

// WorkStarted reports whether any actual shift has a start punch.
func (e *Entry) WorkStarted() bool {
	for i := range e.Actual {
		if e.Actual[i].Start != 0 {
			return true
		}
	}
	return false
}

// DayEnded reports whether every started actual shift also has a stop punch.
func (e *Entry) DayEnded() bool {
	if !e.WorkStarted() {
		return false
	}
	for i := range e.Actual {
		if e.Actual[i].Start != 0 && e.Actual[i].End == 0 {
			return false
		}
	}
	return true
}
