package workday

// WeeklyConfig is the per-site scheduling defaults consumed by the engine:
// which of the five shifts are in use, the default plan hours per weekday,
// and the auto-break bucket per weekday. Shifts 1 and 2 are always active;
// shifts 3-5 are toggled independently. Weekday indices are Monday-based
// (0=Monday ... 6=Sunday).
type WeeklyConfig struct {
	ThirdShiftActive  bool
	FourthShiftActive bool
	FifthShiftActive  bool

	DefaultPlanHours [7]float64
	AutoBreak        [7]Bucket
}

// ShiftActive reports whether the zero-based shift index is in use.
func (c WeeklyConfig) ShiftActive(i int) bool {
	switch i {
	case 0, 1:
		return true
	case 2:
		return c.ThirdShiftActive
	case 3:
		return c.FourthShiftActive
	case 4:
		return c.FifthShiftActive
	default:
		return false
	}
}
