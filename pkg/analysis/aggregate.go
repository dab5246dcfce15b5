package analysis

import (
	"github.com/formsight/formsight-server/pkg/catalog"
)

// bilateralJoints are the joint types collapsed from per-side values into
// one canonical angle. Front/back knee angles are deliberately not
// derivable here: telling the front leg from the back leg needs a facing
// axis a single 2D snapshot does not carry.
var bilateralJoints = []catalog.AngleName{
	catalog.AngleKnee,
	catalog.AngleHip,
	catalog.AngleBack,
	catalog.AngleElbow,
	catalog.AngleShoulder,
	catalog.AngleWrist,
	catalog.AngleAnkle,
}

// Aggregate collapses per-side angles into canonical joint angles.
// Both sides present: arithmetic mean. One side: that value, unpenalized.
// Neither: the joint is absent from the result, and callers must treat
// absence as "cannot evaluate".
func Aggregate(side map[SideAngleName]float64) AngleSet {
	out := make(AngleSet)
	for _, joint := range bilateralJoints {
		left, lok := side[SideAngleName("left_"+string(joint))]
		right, rok := side[SideAngleName("right_"+string(joint))]
		switch {
		case lok && rok:
			out[joint] = (left + right) / 2
		case lok:
			out[joint] = left
		case rok:
			out[joint] = right
		}
	}
	return out
}
