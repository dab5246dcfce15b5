// Package pose defines the landmark vocabulary shared between the external
// pose detector and the analysis engine.
//
// A Snapshot is one instant of detected landmarks, keyed by anatomical
// name. The engine never mutates a snapshot; absence of a landmark (or low
// visibility) means the angles that need it are simply not computed.
package pose

import (
	"fmt"

	ferrors "github.com/formsight/formsight-server/pkg/errors"
)

// Name identifies an anatomical landmark.
type Name string

// Landmark names produced by the detector. The set mirrors the MediaPipe
// pose topology the ML sidecar runs.
const (
	Nose Name = "nose"

	LeftShoulder  Name = "left_shoulder"
	RightShoulder Name = "right_shoulder"
	LeftElbow     Name = "left_elbow"
	RightElbow    Name = "right_elbow"
	LeftWrist     Name = "left_wrist"
	RightWrist    Name = "right_wrist"
	LeftHip       Name = "left_hip"
	RightHip      Name = "right_hip"
	LeftKnee      Name = "left_knee"
	RightKnee     Name = "right_knee"
	LeftAnkle     Name = "left_ankle"
	RightAnkle    Name = "right_ankle"

	// Optional extremity landmarks. Only some detector configurations
	// emit these; wrist and ankle angles depend on them.
	LeftIndex      Name = "left_index"
	RightIndex     Name = "right_index"
	LeftHeel       Name = "left_heel"
	RightHeel      Name = "right_heel"
	LeftFootIndex  Name = "left_foot_index"
	RightFootIndex Name = "right_foot_index"
)

// Landmark is a single detected anatomical point. Coordinates are
// normalized to [0,1] per axis; Z is detector-relative depth and may be
// zero when the detector is 2D only. Visibility is the detector's
// confidence that the point is actually in frame.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z,omitempty"`
	Visibility float64 `json:"visibility"`
}

// Snapshot maps landmark names to landmarks for one pose instant. It is
// owned by the caller and treated as read-only by the engine. A nil or
// empty snapshot means no pose was detected.
type Snapshot map[Name]Landmark

// Get returns the named landmark when it is present and at least minVis
// visible. A landmark below the visibility floor is treated as absent.
func (s Snapshot) Get(name Name, minVis float64) (Landmark, bool) {
	lm, ok := s[name]
	if !ok || lm.Visibility < minVis {
		return Landmark{}, false
	}
	return lm, true
}

var knownNames = map[Name]bool{
	Nose:          true,
	LeftShoulder:  true, RightShoulder: true,
	LeftElbow: true, RightElbow: true,
	LeftWrist: true, RightWrist: true,
	LeftHip: true, RightHip: true,
	LeftKnee: true, RightKnee: true,
	LeftAnkle: true, RightAnkle: true,
	LeftIndex: true, RightIndex: true,
	LeftHeel: true, RightHeel: true,
	LeftFootIndex: true, RightFootIndex: true,
}

// Validate checks a snapshot at the detector boundary: every landmark name
// must be known and every coordinate and visibility value must be in
// [0,1]. Missing landmarks are legal; downstream code treats them as
// absent, never as zero.
func Validate(s Snapshot) error {
	for name, lm := range s {
		if !knownNames[name] {
			return ferrors.ErrInvalidLandmarks.WithMessage(fmt.Sprintf("unknown landmark %q", name))
		}
		if lm.X < 0 || lm.X > 1 || lm.Y < 0 || lm.Y > 1 {
			return ferrors.ErrInvalidLandmarks.WithMessage(fmt.Sprintf("landmark %q coordinate out of range: (%v, %v)", name, lm.X, lm.Y))
		}
		if lm.Visibility < 0 || lm.Visibility > 1 {
			return ferrors.ErrInvalidLandmarks.WithMessage(fmt.Sprintf("landmark %q visibility out of range: %v", name, lm.Visibility))
		}
	}
	return nil
}
