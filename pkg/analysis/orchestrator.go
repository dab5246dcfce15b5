package analysis

import (
	"time"

	"github.com/formsight/formsight-server/pkg/pose"
)

// User-facing feedback for the two per-request "failure-like" outcomes.
// Both are data, not errors: the boundary layer always gets a result.
const (
	feedbackNoPose       = "No pose detected - please ensure you are visible in the camera"
	feedbackUnrecognized = "Exercise not recognized. Try a different position or exercise."
)

// Analyze runs the full pipeline for one snapshot: per-side angles,
// bilateral aggregation, classification, and form checking. A nil or
// empty snapshot reports no_pose_detected. The result is identical for
// identical snapshots except for ProcessingTime.
func (a *Analyzer) Analyze(snap pose.Snapshot) *Result {
	start := time.Now()

	supported := a.cat.Keys()

	if len(snap) == 0 {
		return &Result{
			Exercise:           ExerciseUnknown,
			Status:             StatusNoPose,
			Feedback:           []string{feedbackNoPose},
			Confidence:         0,
			Angles:             AngleSet{},
			ProcessingTime:     time.Since(start).Seconds(),
			SupportedExercises: supported,
		}
	}

	angles := Aggregate(a.SideAngles(snap))
	cls := a.Classify(angles)

	if cls.Exercise == ExerciseUnknown {
		return &Result{
			Exercise:           ExerciseUnknown,
			Status:             StatusUnrecognized,
			Feedback:           []string{feedbackUnrecognized},
			Confidence:         0,
			Angles:             angles,
			ProcessingTime:     time.Since(start).Seconds(),
			SupportedExercises: supported,
		}
	}

	form := a.CheckForm(cls.Exercise, angles)
	return &Result{
		Exercise:           cls.Exercise,
		Status:             form.Status,
		Feedback:           form.Feedback,
		Confidence:         cls.Confidence,
		Angles:             angles,
		ProcessingTime:     time.Since(start).Seconds(),
		SupportedExercises: supported,
	}
}
