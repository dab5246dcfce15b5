package analysis

import (
	"testing"

	"github.com/formsight/formsight-server/pkg/catalog"
)

func TestClassify(t *testing.T) {
	a := testAnalyzer(t)

	tests := []struct {
		name           string
		angles         AngleSet
		wantExercise   string
		wantConfidence float64
	}{
		{
			name:           "empty angle set",
			angles:         AngleSet{},
			wantExercise:   ExerciseUnknown,
			wantConfidence: 0,
		},
		{
			name: "clean squat",
			angles: AngleSet{
				catalog.AngleKnee: 90,
				catalog.AngleHip:  70,
				catalog.AngleBack: 170,
			},
			wantExercise:   "squat",
			wantConfidence: 1.0,
		},
		{
			name: "deadlift hinge",
			angles: AngleSet{
				catalog.AngleHip:  45,
				catalog.AngleKnee: 120,
				catalog.AngleBack: 170,
			},
			wantExercise:   "deadlift",
			wantConfidence: 1.0,
		},
		{
			name: "bicep curl from arm angles",
			angles: AngleSet{
				catalog.AngleElbow:    60,
				catalog.AngleShoulder: 170,
			},
			wantExercise:   "bicep_curl",
			wantConfidence: 1.0,
		},
		{
			name: "best score at or below the floor is unknown",
			angles: AngleSet{
				catalog.AngleKnee: 150,
				catalog.AngleHip:  70,
			},
			// squat scores 1/2 here and nothing scores higher.
			wantExercise:   ExerciseUnknown,
			wantConfidence: 0,
		},
		{
			name: "nothing passes",
			angles: AngleSet{
				catalog.AngleElbow: 130,
			},
			wantExercise:   ExerciseUnknown,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Classify(tt.angles)
			if got.Exercise != tt.wantExercise {
				t.Errorf("Classify() exercise = %q, want %q", got.Exercise, tt.wantExercise)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Classify() confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassify_TieBreaksLexicographically(t *testing.T) {
	a := testAnalyzer(t)

	// burpee, mountain_climber and plank all score 1.0 on this set; the
	// lexicographically smallest key must win every time.
	angles := AngleSet{
		catalog.AngleBack: 170,
		catalog.AngleHip:  170,
		catalog.AngleKnee: 100,
	}

	for i := 0; i < 50; i++ {
		got := a.Classify(angles)
		if got.Exercise != "burpee" {
			t.Fatalf("Classify() run %d = %q, want burpee", i, got.Exercise)
		}
		if got.Confidence != 1.0 {
			t.Fatalf("Classify() run %d confidence = %v, want 1.0", i, got.Confidence)
		}
	}
}

func TestClassify_AbsentAnglesDropOut(t *testing.T) {
	a := testAnalyzer(t)

	// Only the knee is visible. Indicators needing other joints drop out
	// of both counts, so a single passing indicator scores a full 1.0;
	// squat, burpee and mountain_climber all reach it and the tie break
	// lands on burpee.
	got := a.Classify(AngleSet{catalog.AngleKnee: 90})
	if got.Exercise != "burpee" {
		t.Errorf("Classify() exercise = %q, want burpee", got.Exercise)
	}
	if got.Confidence != 1.0 {
		t.Errorf("Classify() confidence = %v, want 1.0 from a single evaluated indicator", got.Confidence)
	}
}
