package workday

// Bucket is one auto-break rule: every full Divider of worked time adds
// PerDivider of break, capped at UpperLimit. All values are minutes.
type Bucket struct {
	Divider    int
	PerDivider int
	UpperLimit int
}

// Zero reports whether the bucket is unconfigured.
func (b Bucket) Zero() bool {
	return b.Divider == 0 && b.PerDivider == 0 && b.UpperLimit == 0
}

// BreakMinutes maps a shift's raw length to the suggested break:
// min(UpperLimit, floor(shiftMinutes/Divider) * PerDivider).
func (b Bucket) BreakMinutes(shiftMinutes int) int {
	if b.Divider <= 0 || shiftMinutes <= 0 {
		return 0
	}

	suggested := (shiftMinutes / b.Divider) * b.PerDivider
	if suggested > b.UpperLimit {
		suggested = b.UpperLimit
	}
	return suggested
}

// BreakRules layers the cross-site default buckets under optional per-site
// overrides, one bucket per weekday (0=Monday ... 6=Sunday).
type BreakRules struct {
	Global [7]Bucket
	Site   [7]Bucket
}

// Bucket returns the effective bucket for the weekday: the site override when
// one is configured, the global default otherwise.
func (r BreakRules) Bucket(weekday int) Bucket {
	if weekday < 0 || weekday > 6 {
		return Bucket{}
	}
	if !r.Site[weekday].Zero() {
		return r.Site[weekday]
	}
	return r.Global[weekday]
}

// CopyFromGlobal materializes the global default bucket into the site layer
// for the weekday, unless a site override already exists. This is a plain
// copy used to pre-fill the site settings form.
func (r *BreakRules) CopyFromGlobal(weekday int) Bucket {
	if weekday < 0 || weekday > 6 {
		return Bucket{}
	}
	if r.Site[weekday].Zero() {
		r.Site[weekday] = r.Global[weekday]
	}
	return r.Site[weekday]
}

// SuggestedBreak applies the weekday's effective bucket to a shift length,
// used to pre-fill break defaults in the day dialog.
func (r BreakRules) SuggestedBreak(weekday, shiftMinutes int) int {
	return r.Bucket(weekday).BreakMinutes(shiftMinutes)
}
