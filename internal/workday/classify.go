package workday

// CellStatus is the presentation category of a calendar cell.
type CellStatus int

const (
	StatusWhite CellStatus = iota
	StatusGrey
	StatusGreen
	StatusRed
)

// String returns the status name
func (s CellStatus) String() string {
	switch s {
	case StatusWhite:
		return "white"
	case StatusGrey:
		return "grey"
	case StatusGreen:
		return "green"
	case StatusRed:
		return "red"
	default:
		return "unknown"
	}
}

// Classify maps the day's aggregate state to its calendar-cell category.
// Total and side-effect free; every reachable entry state lands in exactly
// one of the four categories.
//
//   - green: work started and the day ended, or settled via an override
//   - red:   work started on a day without plan hours and not yet ended
//   - grey:  work pending or in progress, or an annotated day without plan
//   - white: nothing planned, punched, or noted
func Classify(e *Entry) CellStatus {
	started := e.WorkStarted()

	switch {
	case started && (e.DayEnded() || e.NettoHoursOverrideActive):
		return StatusGreen
	case started && e.PlanHours == 0:
		return StatusRed
	case started:
		return StatusGrey
	case e.PlanHours > 0:
		return StatusGrey
	case e.DayType != DayTypeNone || e.Comment != "" || e.HasPlannedSlots():
		return StatusGrey
	default:
		return StatusWhite
	}
}
