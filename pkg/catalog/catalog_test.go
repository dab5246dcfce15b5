package catalog

import (
	"errors"
	"sort"
	"testing"

	ferrors "github.com/formsight/formsight-server/pkg/errors"
)

func TestNew(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := []string{
		"bicep_curl", "burpee", "deadlift", "lunge", "mountain_climber",
		"overhead_press", "plank", "pushup", "row", "squat",
	}
	got := cat.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() returned %d exercises, want %d: %v", len(got), len(want), got)
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("Keys() not sorted: %v", got)
	}
	for i, key := range want {
		if got[i] != key {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], key)
		}
	}
}

func TestCatalog_ThresholdsOrdered(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, key := range cat.Keys() {
		profile, _ := cat.Profile(key)
		for angle, th := range profile.Thresholds {
			if th.Min > th.Optimal || th.Optimal > th.Max {
				t.Errorf("%s/%s threshold not ordered: %+v", key, angle, th)
			}
		}
	}
}

func TestCatalog_Instructions(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("squat", func(t *testing.T) {
		instr, ok := cat.Instructions("squat")
		if !ok {
			t.Fatal("Instructions(squat) not found")
		}
		if instr.Exercise != "squat" {
			t.Errorf("Exercise = %q, want squat", instr.Exercise)
		}
		if instr.MovementPattern != "vertical" {
			t.Errorf("MovementPattern = %q, want vertical", instr.MovementPattern)
		}
		if th := instr.Thresholds[AngleKnee]; th.Min != 70 || th.Max != 110 || th.Optimal != 90 {
			t.Errorf("knee threshold = %+v, want {70 110 90}", th)
		}
		if len(instr.AlignmentChecks) == 0 {
			t.Error("expected alignment check guidance")
		}
	})

	t.Run("unknown exercise", func(t *testing.T) {
		if _, ok := cat.Instructions("handstand"); ok {
			t.Error("expected unknown exercise to be absent")
		}
	})

	t.Run("reported thresholds match the enforced profile", func(t *testing.T) {
		for _, key := range cat.Keys() {
			profile, _ := cat.Profile(key)
			instr, _ := cat.Instructions(key)
			for angle, th := range profile.Thresholds {
				if instr.Thresholds[angle] != th {
					t.Errorf("%s/%s instructions report %+v, profile enforces %+v", key, angle, instr.Thresholds[angle], th)
				}
			}
		}
	})
}

func TestLoad_Invalid(t *testing.T) {
	valid := Profile{
		Key:       "squat",
		KeyAngles: []AngleName{AngleKnee},
		Thresholds: map[AngleName]Threshold{
			AngleKnee: {Min: 70, Max: 110, Optimal: 90},
		},
	}
	validPattern := map[string]Pattern{
		"squat": {Primary: []IndicatorID{IndKneeBend}},
	}

	tests := []struct {
		name       string
		profiles   []Profile
		patterns   map[string]Pattern
		indicators map[IndicatorID]Indicator
		checks     map[CheckID]AlignmentCheck
	}{
		{
			name:       "profile without pattern",
			profiles:   []Profile{valid},
			patterns:   map[string]Pattern{},
			indicators: indicatorTable,
			checks:     checkTable,
		},
		{
			name:     "pattern without profile",
			profiles: []Profile{valid},
			patterns: map[string]Pattern{
				"squat":  validPattern["squat"],
				"orphan": {Primary: []IndicatorID{IndKneeBend}},
			},
			indicators: indicatorTable,
			checks:     checkTable,
		},
		{
			name:       "duplicate profile key",
			profiles:   []Profile{valid, valid},
			patterns:   validPattern,
			indicators: indicatorTable,
			checks:     checkTable,
		},
		{
			name: "key angle without threshold",
			profiles: []Profile{{
				Key:        "squat",
				KeyAngles:  []AngleName{AngleKnee},
				Thresholds: map[AngleName]Threshold{},
			}},
			patterns:   validPattern,
			indicators: indicatorTable,
			checks:     checkTable,
		},
		{
			name: "threshold out of order",
			profiles: []Profile{{
				Key:       "squat",
				KeyAngles: []AngleName{AngleKnee},
				Thresholds: map[AngleName]Threshold{
					AngleKnee: {Min: 110, Max: 70, Optimal: 90},
				},
			}},
			patterns:   validPattern,
			indicators: indicatorTable,
			checks:     checkTable,
		},
		{
			name:     "undefined indicator",
			profiles: []Profile{valid},
			patterns: map[string]Pattern{
				"squat": {Primary: []IndicatorID{"no_such_indicator"}},
			},
			indicators: indicatorTable,
			checks:     checkTable,
		},
		{
			name:     "primary indicator without predicate",
			profiles: []Profile{valid},
			patterns: map[string]Pattern{
				"squat": {Primary: []IndicatorID{IndVerticalMovement}},
			},
			indicators: indicatorTable,
			checks:     checkTable,
		},
		{
			name: "undefined alignment check",
			profiles: []Profile{{
				Key:       "squat",
				KeyAngles: []AngleName{AngleKnee},
				Thresholds: map[AngleName]Threshold{
					AngleKnee: {Min: 70, Max: 110, Optimal: 90},
				},
				AlignmentChecks: []CheckID{"no_such_check"},
			}},
			patterns:   validPattern,
			indicators: indicatorTable,
			checks:     checkTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.profiles, tt.patterns, tt.indicators, tt.checks)
			if !errors.Is(err, ferrors.ErrCatalogInvalid) {
				t.Errorf("load() error = %v, want ErrCatalogInvalid", err)
			}
		})
	}
}

func TestIndicator_Pass(t *testing.T) {
	tests := []struct {
		name  string
		ind   Indicator
		value float64
		want  bool
	}{
		{"below cutoff passes", Indicator{Angle: AngleKnee, Below: true, Cutoff: 120}, 100, true},
		{"at cutoff fails below", Indicator{Angle: AngleKnee, Below: true, Cutoff: 120}, 120, false},
		{"above cutoff passes", Indicator{Angle: AngleBack, Below: false, Cutoff: 160}, 170, true},
		{"at cutoff fails above", Indicator{Angle: AngleBack, Below: false, Cutoff: 160}, 160, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ind.Pass(tt.value); got != tt.want {
				t.Errorf("Pass(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
