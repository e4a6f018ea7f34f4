package timeenc

import "testing"

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"Morning", "08:00", 480, true},
		{"Afternoon", "17:00", 1020, true},
		{"Midnight", "00:00", 0, true},
		{"Last minute of day", "23:59", 1439, true},
		{"Leading whitespace", " 06:30", 390, true},
		{"Empty string", "", 0, false},
		{"Hour out of range", "24:00", 0, false},
		{"Minute out of range", "12:60", 0, false},
		{"Negative hour", "-1:30", 0, false},
		{"Missing colon", "0800", 0, false},
		{"Not a number", "ab:cd", 0, false},
		{"Too many parts", "08:00:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToMinutes(tt.input)

			if ok != tt.wantOK {
				t.Errorf("ToMinutes(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
				return
			}

			if ok && got != tt.want {
				t.Errorf("ToMinutes(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToText(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"Morning", 480, "08:00"},
		{"Single digit minute", 481, "08:01"},
		{"Zero is hidden", 0, ""},
		{"Negative is hidden", -5, ""},
		{"Last minute", 1439, "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToText(tt.minutes); got != tt.want {
				t.Errorf("ToText(%v) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestFormatShowsMidnight(t *testing.T) {
	if got := Format(0); got != "00:00" {
		t.Errorf("Format(0) = %q, want \"00:00\"", got)
	}
	if got := Format(MinutesPerDay); got != "24:00" {
		t.Errorf("Format(1440) = %q, want \"24:00\"", got)
	}
}

func TestRoundTrip(t *testing.T) {
	// Every valid HH:MM except "00:00" round-trips through ToMinutes/ToText.
	// Zero is excluded: it is the shared "not set" sentinel.
	for m := 1; m < MinutesPerDay; m++ {
		text := ToText(m)
		got, ok := ToMinutes(text)
		if !ok || got != m {
			t.Fatalf("round trip failed for %d: text=%q got=%d ok=%v", m, text, got, ok)
		}
	}
}

func TestPunchIndex(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{"Unset", 0, 0},
		{"Five past midnight", 5, 2},
		{"Eight o'clock", 480, 97},
		{"Seventeen o'clock", 1020, 205},
		{"Last quantum", 1435, 288},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PunchIndex(tt.minutes); got != tt.want {
				t.Errorf("PunchIndex(%v) = %v, want %v", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestStopIndexMidnightSentinel(t *testing.T) {
	if got := StopIndex(MinutesPerDay); got != MidnightStopIndex {
		t.Errorf("StopIndex(1440) = %v, want %v", got, MidnightStopIndex)
	}
	if got := StopIndex(1020); got != 205 {
		t.Errorf("StopIndex(1020) = %v, want 205", got)
	}
	if got := StopIndex(0); got != 0 {
		t.Errorf("StopIndex(0) = %v, want 0", got)
	}
}

func TestPauseEncoding(t *testing.T) {
	tests := []struct {
		name         string
		breakMinutes int
		wantID       int
		wantTicks    int
	}{
		{"No break", 0, 0, 0},
		{"Half hour", 30, 7, 6},
		{"One hour", 60, 13, 12},
		{"Five minutes", 5, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PauseIndex(tt.breakMinutes)
			if id != tt.wantID {
				t.Errorf("PauseIndex(%v) = %v, want %v", tt.breakMinutes, id, tt.wantID)
			}
			if got := PauseTicks(id); got != tt.wantTicks {
				t.Errorf("PauseTicks(%v) = %v, want %v", id, got, tt.wantTicks)
			}
			if got := PauseMinutes(id); got != tt.breakMinutes {
				t.Errorf("PauseMinutes(%v) = %v, want %v", id, got, tt.breakMinutes)
			}
		})
	}
}

func TestIndexMinutes(t *testing.T) {
	tests := []struct {
		name string
		id   int
		want int
	}{
		{"Unset", 0, 0},
		{"Eight o'clock", 97, 480},
		{"Midnight sentinel", MidnightStopIndex, MinutesPerDay},
		{"Negative treated as unset", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexMinutes(tt.id); got != tt.want {
				t.Errorf("IndexMinutes(%v) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
