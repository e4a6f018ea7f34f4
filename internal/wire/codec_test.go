package wire

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/username/workday-tracker/internal/workday"
	"github.com/username/workday-tracker/pkg/timeenc"
)

func TestDecodePlannedSlots(t *testing.T) {
	record := &WorkdayRecord{
		Date:                 "2025-01-15",
		PlannedStartOfShift1: 480,
		PlannedEndOfShift1:   1020,
		PlannedBreakOfShift1: 30,
		PlannedStartOfShift2: 1080,
		// End 0 with a set start means next-day midnight.
	}

	entry, err := Decode(record)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want1 := workday.ShiftSlot{Start: 480, End: 1020, Break: 30}
	if entry.Planned[0] != want1 {
		t.Errorf("Planned[0] = %+v, want %+v", entry.Planned[0], want1)
	}

	if entry.Planned[1].End != timeenc.MinutesPerDay {
		t.Errorf("Planned[1].End = %v, want normalized 1440", entry.Planned[1].End)
	}

	if !entry.Planned[2].Empty() {
		t.Errorf("Planned[2] = %+v, want empty", entry.Planned[2])
	}
}

func TestDecodeActualFromPunchIDs(t *testing.T) {
	record := &WorkdayRecord{
		Date:     "2025-01-15",
		Start1ID: 97,  // 08:00
		Stop1ID:  205, // 17:00
		Pause1ID: 13,  // 60 minutes
	}

	entry, err := Decode(record)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := workday.ShiftSlot{Start: 480, End: 1020, Break: 60}
	if entry.Actual[0] != want {
		t.Errorf("Actual[0] = %+v, want %+v", entry.Actual[0], want)
	}
}

func TestDecodeActualPrefersTimestamps(t *testing.T) {
	// The quantized index says 08:00 but the instant says 08:03; the
	// timestamp carries the exact punch.
	startedAt := &PunchTime{Time: time.Date(2025, 1, 15, 8, 3, 0, 0, time.UTC)}
	stoppedAt := &PunchTime{Time: time.Date(2025, 1, 15, 17, 2, 0, 0, time.UTC)}

	record := &WorkdayRecord{
		Date:            "2025-01-15",
		Start1ID:        97,
		Stop1ID:         205,
		Start1StartedAt: startedAt,
		Stop1StoppedAt:  stoppedAt,
	}

	entry, err := Decode(record)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if entry.Actual[0].Start != 483 {
		t.Errorf("Start = %v, want 483", entry.Actual[0].Start)
	}
	if entry.Actual[0].End != 1022 {
		t.Errorf("End = %v, want 1022", entry.Actual[0].End)
	}
}

func TestDecodeMidnightStopSentinel(t *testing.T) {
	record := &WorkdayRecord{
		Date:     "2025-01-15",
		Start1ID: 25, // 02:00
		Stop1ID:  timeenc.MidnightStopIndex,
	}

	entry, err := Decode(record)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if entry.Actual[0].End != timeenc.MinutesPerDay {
		t.Errorf("End = %v, want 1440", entry.Actual[0].End)
	}
	if got := workday.SlotDuration(entry.Actual[0]); got != 1320 {
		t.Errorf("duration = %v, want 1320 (22 hours)", got)
	}
}

func TestDecodeDayType(t *testing.T) {
	record := &WorkdayRecord{Date: "2025-01-15", Message: 3}

	entry, err := Decode(record)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if entry.DayType != workday.DayTypeSick {
		t.Errorf("DayType = %v, want sick", entry.DayType)
	}

	record.Message = 99
	if _, err := Decode(record); err == nil {
		t.Error("expected error for unknown day-type message")
	}
}

func TestDecodeBadDate(t *testing.T) {
	record := &WorkdayRecord{Date: "not-a-date"}
	if _, err := Decode(record); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entry := &workday.Entry{
		Date:         time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		PlanHours:    8,
		ActualHours:  8.5,
		PaidOutFlex:  1.25,
		SumFlexStart: 97.45,
		SumFlexEnd:   106.28,
		Comment:      "covered for colleague",
	}
	entry.Planned[0] = workday.ShiftSlot{Start: 480, End: 1020, Break: 30}
	entry.Actual[0] = workday.ShiftSlot{Start: 480, End: 1050, Break: 60}
	entry.Actual[1] = workday.ShiftSlot{Start: 1080, End: 1440} // midnight stop
	entry.SetDayType(workday.DayTypeCourse)

	siteID := uuid.New()
	workerID := uuid.New()
	record := Encode(entry, siteID, workerID)

	if record.Stop2ID != timeenc.MidnightStopIndex {
		t.Errorf("Stop2ID = %v, want midnight sentinel %v", record.Stop2ID, timeenc.MidnightStopIndex)
	}
	if record.Pause1ID != 13 {
		t.Errorf("Pause1ID = %v, want 13", record.Pause1ID)
	}
	if record.Message != int(workday.DayTypeCourse) {
		t.Errorf("Message = %v, want %v", record.Message, int(workday.DayTypeCourse))
	}

	// The record must survive JSON and decode back to the same slots.
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var parsed WorkdayRecord
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	decoded, err := Decode(&parsed)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if decoded.Planned != entry.Planned {
		t.Errorf("Planned = %+v, want %+v", decoded.Planned, entry.Planned)
	}
	if decoded.Actual != entry.Actual {
		t.Errorf("Actual = %+v, want %+v", decoded.Actual, entry.Actual)
	}
	if decoded.DayType != workday.DayTypeCourse {
		t.Errorf("DayType = %v, want course", decoded.DayType)
	}
	if decoded.SumFlexStart != 97.45 || decoded.SumFlexEnd != 106.28 {
		t.Errorf("flex = (%v, %v), want (97.45, 106.28)", decoded.SumFlexStart, decoded.SumFlexEnd)
	}
	if parsed.SiteID != siteID || parsed.WorkerID != workerID {
		t.Errorf("ids = (%v, %v), want (%v, %v)", parsed.SiteID, parsed.WorkerID, siteID, workerID)
	}
}

func TestDecodeWeeklyConfig(t *testing.T) {
	record := &SiteWeeklyConfigRecord{
		ThirdShiftActive:    true,
		PlanHoursPerWeekday: [7]float64{8, 8, 8, 8, 6, 0, 0},
	}
	record.AutoBreakBuckets[0] = AutoBreakSpec{Divider: 240, PerDivider: 15, UpperLimit: 45}

	var global [7]workday.Bucket
	global[1] = workday.Bucket{Divider: 300, PerDivider: 30, UpperLimit: 60}

	cfg, rules := DecodeWeeklyConfig(record, global)

	if !cfg.ShiftActive(2) || cfg.ShiftActive(3) {
		t.Errorf("shift activation = (%v, %v), want (true, false)",
			cfg.ShiftActive(2), cfg.ShiftActive(3))
	}
	if cfg.DefaultPlanHours[4] != 6 {
		t.Errorf("DefaultPlanHours[4] = %v, want 6", cfg.DefaultPlanHours[4])
	}

	// Monday has a site override, Tuesday falls back to the global default.
	if got := rules.Bucket(0).PerDivider; got != 15 {
		t.Errorf("Monday PerDivider = %v, want site 15", got)
	}
	if got := rules.Bucket(1).PerDivider; got != 30 {
		t.Errorf("Tuesday PerDivider = %v, want global 30", got)
	}
	if cfg.AutoBreak[1].PerDivider != 30 {
		t.Errorf("AutoBreak[1] = %+v, want layered global bucket", cfg.AutoBreak[1])
	}
}

func TestPunchTimeFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Offset without colon", `"2025-01-15T08:00:00.000+0000"`},
		{"Offset without millis", `"2025-01-15T08:00:00+0000"`},
		{"RFC3339", `"2025-01-15T08:00:00Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pt PunchTime
			if err := json.Unmarshal([]byte(tt.input), &pt); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if pt.Hour() != 8 {
				t.Errorf("Hour = %v, want 8", pt.Hour())
			}
		})
	}

	var pt PunchTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &pt); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}
