package types

import (
	"time"
)

// AnalysisEvent is published to the analysis-completed topic after every
// analyzed frame and consumed by the recorder.
type AnalysisEvent struct {
	AnalysisID string             `json:"analysis_id"`
	UserID     string             `json:"user_id,omitempty"`
	SessionID  string             `json:"session_id,omitempty"`
	Exercise   string             `json:"exercise"`
	Status     string             `json:"status"`
	Confidence float64            `json:"confidence"`
	Feedback   []string           `json:"feedback"`
	Angles     map[string]float64 `json:"angles"`
	Timestamp  time.Time          `json:"timestamp"`

	// SessionEnd marks the last frame of a workout session; the recorder
	// exports the session artifact when it sees it.
	SessionEnd bool `json:"session_end,omitempty"`
}
