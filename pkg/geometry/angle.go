// Package geometry holds the pure angle math the analysis engine is built
// on.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	ferrors "github.com/formsight/formsight-server/pkg/errors"
)

// Angle returns the interior angle at vertex b, in degrees, in [0,180].
//
// It uses atan2 of the cross product over the dot product of the vectors
// b→a and b→c, which stays numerically stable near 0 and 180 degrees where
// an arccosine formulation can fall out of its domain under floating-point
// drift.
//
// If a or c coincides with b the angle is undefined and
// errors.ErrDegenerateGeometry is returned; callers must treat the angle
// as absent rather than as zero.
func Angle(a, b, c r2.Vec) (float64, error) {
	ba := r2.Sub(a, b)
	bc := r2.Sub(c, b)

	if (ba.X == 0 && ba.Y == 0) || (bc.X == 0 && bc.Y == 0) {
		return 0, ferrors.ErrDegenerateGeometry
	}

	cross := ba.X*bc.Y - ba.Y*bc.X
	dot := r2.Dot(ba, bc)

	deg := math.Abs(math.Atan2(cross, dot)) * 180 / math.Pi
	if deg > 180 {
		deg = 360 - deg
	}
	return deg, nil
}
