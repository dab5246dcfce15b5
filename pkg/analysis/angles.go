package analysis

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/formsight/formsight-server/pkg/catalog"
	"github.com/formsight/formsight-server/pkg/geometry"
	"github.com/formsight/formsight-server/pkg/pose"
)

// SideAngleName keys the per-side angle set, e.g. "left_knee_angle".
type SideAngleName string

// angleTriple names the three landmarks whose interior angle at Vertex
// defines one joint angle.
type angleTriple struct {
	A, Vertex, C pose.Name
}

// jointTriples maps each canonical joint type to its landmark triple per
// side. Wrist and ankle depend on optional extremity landmarks and are
// simply absent when the detector does not emit them.
var jointTriples = map[catalog.AngleName]map[string]angleTriple{
	catalog.AngleKnee: {
		"left":  {pose.LeftHip, pose.LeftKnee, pose.LeftAnkle},
		"right": {pose.RightHip, pose.RightKnee, pose.RightAnkle},
	},
	catalog.AngleHip: {
		"left":  {pose.LeftShoulder, pose.LeftHip, pose.LeftKnee},
		"right": {pose.RightShoulder, pose.RightHip, pose.RightKnee},
	},
	catalog.AngleBack: {
		"left":  {pose.LeftShoulder, pose.LeftHip, pose.LeftAnkle},
		"right": {pose.RightShoulder, pose.RightHip, pose.RightAnkle},
	},
	catalog.AngleElbow: {
		"left":  {pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
		"right": {pose.RightShoulder, pose.RightElbow, pose.RightWrist},
	},
	catalog.AngleShoulder: {
		"left":  {pose.LeftElbow, pose.LeftShoulder, pose.LeftHip},
		"right": {pose.RightElbow, pose.RightShoulder, pose.RightHip},
	},
	catalog.AngleWrist: {
		"left":  {pose.LeftElbow, pose.LeftWrist, pose.LeftIndex},
		"right": {pose.RightElbow, pose.RightWrist, pose.RightIndex},
	},
	catalog.AngleAnkle: {
		"left":  {pose.LeftKnee, pose.LeftAnkle, pose.LeftFootIndex},
		"right": {pose.RightKnee, pose.RightAnkle, pose.RightFootIndex},
	},
}

// SideAngles computes every per-side joint angle the snapshot supports.
// Triples with a missing or low-visibility landmark are skipped, and a
// degenerate triple (coincident points) is treated as absent rather than
// failing the whole extraction.
func (a *Analyzer) SideAngles(snap pose.Snapshot) map[SideAngleName]float64 {
	out := make(map[SideAngleName]float64)
	for joint, sides := range jointTriples {
		for side, triple := range sides {
			pa, ok := snap.Get(triple.A, a.minVisibility)
			if !ok {
				continue
			}
			pb, ok := snap.Get(triple.Vertex, a.minVisibility)
			if !ok {
				continue
			}
			pc, ok := snap.Get(triple.C, a.minVisibility)
			if !ok {
				continue
			}

			deg, err := geometry.Angle(vec(pa), vec(pb), vec(pc))
			if err != nil {
				continue
			}
			out[SideAngleName(side+"_"+string(joint))] = deg
		}
	}
	return out
}

func vec(lm pose.Landmark) r2.Vec {
	return r2.Vec{X: lm.X, Y: lm.Y}
}
