// Package detector is the boundary to the external pose-landmark
// detector. The engine itself never looks at pixels; it consumes the
// named landmarks a Detector returns.
package detector

import (
	"context"
	"encoding/json"
	"time"

	ferrors "github.com/formsight/formsight-server/pkg/errors"
	"github.com/formsight/formsight-server/pkg/pose"
)

// Detector turns an encoded image frame into a pose snapshot.
type Detector interface {
	// Detect analyzes a frame and returns the detected landmarks.
	// A nil snapshot with a nil error means no pose was found; that is
	// a normal outcome, not a failure.
	Detect(ctx context.Context, frame []byte) (pose.Snapshot, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for the remote detector.
type Config struct {
	// URL is the base URL of the ML landmark sidecar.
	URL string

	// APIKey authenticates requests to the sidecar; empty disables auth.
	APIKey string

	// Timeout bounds a single detection round trip.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		URL:     "http://localhost:5000",
		Timeout: 10 * time.Second,
	}
}

// ParseLandmarks decodes an inline landmark payload (the shape the ML
// sidecar emits) into a validated snapshot. Callers that already hold
// landmarks use this instead of a round trip through a Detector.
func ParseLandmarks(data []byte) (pose.Snapshot, error) {
	var raw map[pose.Name]pose.Landmark
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ferrors.ErrInvalidLandmarks.WithCause(err)
	}
	snap := pose.Snapshot(raw)
	if err := pose.Validate(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Static is a Detector that always returns a fixed snapshot. It backs the
// offline CLI and tests.
type Static struct {
	Snapshot pose.Snapshot
}

// NewStatic returns a Static detector for snap.
func NewStatic(snap pose.Snapshot) *Static {
	return &Static{Snapshot: snap}
}

// Detect returns the fixed snapshot regardless of the frame.
func (s *Static) Detect(ctx context.Context, frame []byte) (pose.Snapshot, error) {
	return s.Snapshot, nil
}

// Close is a no-op.
func (s *Static) Close() error { return nil }
