// Package analysis is the exercise form analysis engine: it turns one pose
// snapshot into joint angles, an exercise classification, and corrective
// feedback.
//
// Every call is a pure function of the snapshot and the (immutable)
// catalog, so one Analyzer is safe to share across concurrent requests.
package analysis

import (
	"github.com/formsight/formsight-server/pkg/catalog"
)

// Status is the outcome category of one analysis.
type Status string

const (
	StatusNoPose       Status = "no_pose_detected"
	StatusCorrect      Status = "correct"
	StatusIncorrect    Status = "incorrect"
	StatusUnrecognized Status = "unrecognized"
)

// AngleSet maps canonical joint-angle names to degree values in [0,180].
// An angle that could not be computed is absent from the map; absent means
// "cannot evaluate", never zero.
type AngleSet map[catalog.AngleName]float64

// Result is the full outcome of one analysis call. It has no identity
// beyond the call that produced it.
type Result struct {
	Exercise           string   `json:"exercise"`
	Status             Status   `json:"status"`
	Feedback           []string `json:"feedback"`
	Confidence         float64  `json:"confidence"`
	Angles             AngleSet `json:"angles"`
	ProcessingTime     float64  `json:"processing_time"`
	SupportedExercises []string `json:"supported_exercises"`
}

// Classification is the classifier's verdict for one AngleSet.
type Classification struct {
	Exercise   string
	Confidence float64
}

// FormResult is the form checker's verdict for one (exercise, AngleSet)
// pair.
type FormResult struct {
	Status   Status
	Feedback []string
}

// ExerciseUnknown is the exercise key reported when no catalog entry
// matches with enough confidence.
const ExerciseUnknown = "unknown"

// ConfidenceFloor is the minimum classifier score required to accept a
// classification. Scores at or below the floor report ExerciseUnknown.
const ConfidenceFloor = 0.6

// DefaultMinVisibility is the landmark visibility floor below which a
// landmark is treated as absent. It matches the detection confidence the
// ML sidecar runs with.
const DefaultMinVisibility = 0.5

// Analyzer evaluates snapshots against a validated catalog.
type Analyzer struct {
	cat           *catalog.Catalog
	minVisibility float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMinVisibility overrides the landmark visibility floor.
func WithMinVisibility(v float64) Option {
	return func(a *Analyzer) { a.minVisibility = v }
}

// NewAnalyzer returns an Analyzer bound to cat.
func NewAnalyzer(cat *catalog.Catalog, opts ...Option) *Analyzer {
	a := &Analyzer{
		cat:           cat,
		minVisibility: DefaultMinVisibility,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
