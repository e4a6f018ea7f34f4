package wire

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PunchTime is a custom time type for the punch backend's timestamp format.
// The backend emits ISO-8601 with a +0000 style offset (no colon), which the
// standard RFC3339 parser rejects, so both variants are tried.
type PunchTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for PunchTime
func (t *PunchTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	formats := []string{
		"2006-01-02T15:04:05.000-0700",
		"2006-01-02T15:04:05-0700",
		time.RFC3339,
		time.RFC3339Nano,
	}

	var parseErr error
	for _, format := range formats {
		parsed, err := time.Parse(format, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		parseErr = err
	}

	return parseErr
}

// MarshalJSON implements json.Marshaler for PunchTime
func (t PunchTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("2006-01-02T15:04:05.000-0700"))
}

// WorkdayRecord is the per-day, per-site backend snapshot. Planned fields are
// minute-of-day integers; actual fields are 5-minute-quantized punch indices
// plus the same instants as absolute timestamps. Field names are fixed by the
// backend and repeat per shift; the engine folds them into slot arrays.
type WorkdayRecord struct {
	SiteID   uuid.UUID `json:"siteId"`
	WorkerID uuid.UUID `json:"workerId"`
	Date     string    `json:"date"`

	PlannedStartOfShift1 int `json:"plannedStartOfShift1,omitempty"`
	PlannedEndOfShift1   int `json:"plannedEndOfShift1,omitempty"`
	PlannedBreakOfShift1 int `json:"plannedBreakOfShift1,omitempty"`
	PlannedStartOfShift2 int `json:"plannedStartOfShift2,omitempty"`
	PlannedEndOfShift2   int `json:"plannedEndOfShift2,omitempty"`
	PlannedBreakOfShift2 int `json:"plannedBreakOfShift2,omitempty"`
	PlannedStartOfShift3 int `json:"plannedStartOfShift3,omitempty"`
	PlannedEndOfShift3   int `json:"plannedEndOfShift3,omitempty"`
	PlannedBreakOfShift3 int `json:"plannedBreakOfShift3,omitempty"`
	PlannedStartOfShift4 int `json:"plannedStartOfShift4,omitempty"`
	PlannedEndOfShift4   int `json:"plannedEndOfShift4,omitempty"`
	PlannedBreakOfShift4 int `json:"plannedBreakOfShift4,omitempty"`
	PlannedStartOfShift5 int `json:"plannedStartOfShift5,omitempty"`
	PlannedEndOfShift5   int `json:"plannedEndOfShift5,omitempty"`
	PlannedBreakOfShift5 int `json:"plannedBreakOfShift5,omitempty"`

	Start1ID int `json:"start1Id,omitempty"`
	Stop1ID  int `json:"stop1Id,omitempty"`
	Pause1ID int `json:"pause1Id,omitempty"`
	Start2ID int `json:"start2Id,omitempty"`
	Stop2ID  int `json:"stop2Id,omitempty"`
	Pause2ID int `json:"pause2Id,omitempty"`
	Start3ID int `json:"start3Id,omitempty"`
	Stop3ID  int `json:"stop3Id,omitempty"`
	Pause3ID int `json:"pause3Id,omitempty"`
	Start4ID int `json:"start4Id,omitempty"`
	Stop4ID  int `json:"stop4Id,omitempty"`
	Pause4ID int `json:"pause4Id,omitempty"`
	Start5ID int `json:"start5Id,omitempty"`
	Stop5ID  int `json:"stop5Id,omitempty"`
	Pause5ID int `json:"pause5Id,omitempty"`

	Start1StartedAt *PunchTime `json:"start1StartedAt,omitempty"`
	Stop1StoppedAt  *PunchTime `json:"stop1StoppedAt,omitempty"`
	Start2StartedAt *PunchTime `json:"start2StartedAt,omitempty"`
	Stop2StoppedAt  *PunchTime `json:"stop2StoppedAt,omitempty"`
	Start3StartedAt *PunchTime `json:"start3StartedAt,omitempty"`
	Stop3StoppedAt  *PunchTime `json:"stop3StoppedAt,omitempty"`
	Start4StartedAt *PunchTime `json:"start4StartedAt,omitempty"`
	Stop4StoppedAt  *PunchTime `json:"stop4StoppedAt,omitempty"`
	Start5StartedAt *PunchTime `json:"start5StartedAt,omitempty"`
	Stop5StoppedAt  *PunchTime `json:"stop5StoppedAt,omitempty"`

	PlanHours                float64 `json:"planHours"`
	ActualHours              float64 `json:"actualHours"`
	NettoHoursOverride       float64 `json:"nettoHoursOverride,omitempty"`
	NettoHoursOverrideActive bool    `json:"nettoHoursOverrideActive,omitempty"`
	PaidOutFlex              float64 `json:"paidOutFlex,omitempty"`
	SumFlexStart             float64 `json:"sumFlexStart"`
	SumFlexEnd               float64 `json:"sumFlexEnd"`

	// Message is the 1-based day-type index; 0 or absent means none.
	Message int    `json:"message,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// plannedSlots folds the suffixed planned fields into an indexable array of
// start/end/break triples.
func (r *WorkdayRecord) plannedSlots() [5][3]int {
	return [5][3]int{
		{r.PlannedStartOfShift1, r.PlannedEndOfShift1, r.PlannedBreakOfShift1},
		{r.PlannedStartOfShift2, r.PlannedEndOfShift2, r.PlannedBreakOfShift2},
		{r.PlannedStartOfShift3, r.PlannedEndOfShift3, r.PlannedBreakOfShift3},
		{r.PlannedStartOfShift4, r.PlannedEndOfShift4, r.PlannedBreakOfShift4},
		{r.PlannedStartOfShift5, r.PlannedEndOfShift5, r.PlannedBreakOfShift5},
	}
}

// punchIDs folds the suffixed actual fields into start/stop/pause index
// triples.
func (r *WorkdayRecord) punchIDs() [5][3]int {
	return [5][3]int{
		{r.Start1ID, r.Stop1ID, r.Pause1ID},
		{r.Start2ID, r.Stop2ID, r.Pause2ID},
		{r.Start3ID, r.Stop3ID, r.Pause3ID},
		{r.Start4ID, r.Stop4ID, r.Pause4ID},
		{r.Start5ID, r.Stop5ID, r.Pause5ID},
	}
}

// punchTimes folds the timestamp pairs per shift.
func (r *WorkdayRecord) punchTimes() [5][2]*PunchTime {
	return [5][2]*PunchTime{
		{r.Start1StartedAt, r.Stop1StoppedAt},
		{r.Start2StartedAt, r.Stop2StoppedAt},
		{r.Start3StartedAt, r.Stop3StoppedAt},
		{r.Start4StartedAt, r.Stop4StoppedAt},
		{r.Start5StartedAt, r.Stop5StoppedAt},
	}
}

// SiteWeeklyConfigRecord is the backend shape of the per-site weekly
// defaults: per-weekday plan hours and auto-break buckets keyed Monday
// through Sunday (index 0..6), plus the activation flags for shifts 3-5.
type SiteWeeklyConfigRecord struct {
	SiteID uuid.UUID `json:"siteId"`

	ThirdShiftActive  bool `json:"thirdShiftActive"`
	FourthShiftActive bool `json:"fourthShiftActive"`
	FifthShiftActive  bool `json:"fifthShiftActive"`

	PlanHoursPerWeekday [7]float64       `json:"planHoursPerWeekday"`
	AutoBreakBuckets    [7]AutoBreakSpec `json:"autoBreakBuckets"`
}

// AutoBreakSpec is the wire shape of one auto-break bucket rule.
type AutoBreakSpec struct {
	Divider    int `json:"divider"`
	PerDivider int `json:"perDivider"`
	UpperLimit int `json:"upperLimit"`
}
