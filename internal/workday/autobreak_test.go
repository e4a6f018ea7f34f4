package workday

import "testing"

func TestBucketBreakMinutes(t *testing.T) {
	// 15 minutes of break per started 4 hours, capped at 45.
	bucket := Bucket{Divider: 240, PerDivider: 15, UpperLimit: 45}

	tests := []struct {
		name         string
		shiftMinutes int
		want         int
	}{
		{"Zero shift", 0, 0},
		{"Below first divider", 239, 0},
		{"Exactly one divider", 240, 15},
		{"Eight hours", 480, 30},
		{"Twelve hours hits cap", 720, 45},
		{"Sixteen hours stays capped", 960, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bucket.BreakMinutes(tt.shiftMinutes)

			if got != tt.want {
				t.Errorf("BreakMinutes(%v) = %v, want %v", tt.shiftMinutes, got, tt.want)
			}
		})
	}
}

func TestBucketUnconfigured(t *testing.T) {
	var bucket Bucket
	if got := bucket.BreakMinutes(480); got != 0 {
		t.Errorf("unconfigured bucket BreakMinutes(480) = %v, want 0", got)
	}
}

func TestBreakRulesLayering(t *testing.T) {
	rules := BreakRules{}
	rules.Global[0] = Bucket{Divider: 240, PerDivider: 15, UpperLimit: 45}
	rules.Site[1] = Bucket{Divider: 300, PerDivider: 30, UpperLimit: 60}
	rules.Global[1] = Bucket{Divider: 240, PerDivider: 15, UpperLimit: 45}

	if got := rules.Bucket(0); got != rules.Global[0] {
		t.Errorf("Bucket(0) = %+v, want global default", got)
	}
	if got := rules.Bucket(1); got != rules.Site[1] {
		t.Errorf("Bucket(1) = %+v, want site override", got)
	}
	if got := rules.Bucket(7); !got.Zero() {
		t.Errorf("Bucket(7) = %+v, want zero bucket", got)
	}
}

func TestCopyFromGlobal(t *testing.T) {
	rules := BreakRules{}
	rules.Global[2] = Bucket{Divider: 240, PerDivider: 15, UpperLimit: 45}
	rules.Site[3] = Bucket{Divider: 300, PerDivider: 30, UpperLimit: 60}
	rules.Global[3] = Bucket{Divider: 240, PerDivider: 15, UpperLimit: 45}

	// Copies when no site override exists.
	got := rules.CopyFromGlobal(2)
	if got != rules.Global[2] {
		t.Errorf("CopyFromGlobal(2) = %+v, want global bucket", got)
	}
	if rules.Site[2] != rules.Global[2] {
		t.Errorf("site bucket not materialized: %+v", rules.Site[2])
	}

	// Leaves an existing site override alone.
	want := rules.Site[3]
	if got := rules.CopyFromGlobal(3); got != want {
		t.Errorf("CopyFromGlobal(3) = %+v, want existing override %+v", got, want)
	}
}

func TestSuggestedBreak(t *testing.T) {
	rules := BreakRules{}
	rules.Global[4] = Bucket{Divider: 240, PerDivider: 15, UpperLimit: 45}

	if got := rules.SuggestedBreak(4, 480); got != 30 {
		t.Errorf("SuggestedBreak(4, 480) = %v, want 30", got)
	}
	if got := rules.SuggestedBreak(5, 480); got != 0 {
		t.Errorf("SuggestedBreak(5, 480) = %v, want 0 for unconfigured weekday", got)
	}
}
