// Package orbit holds the driver-side camera animation bookkeeping: snapping
// and easing the orbital angles toward a target location. The render core
// only ever sees the resulting per-frame camera scalars.
package orbit

import "math"

// Location is a normalized coordinate pair on the globe surface: X spans
// longitude, Y runs pole to pole in [0,1].
type Location struct {
	X, Y float64
}

// Focus returns the camera angles that center loc in view. spinOffset
// compensates for the globe's own rotation (angle/2).
func Focus(loc Location, spinOffset float64) (alpha, beta float64) {
	alpha = -(loc.X*math.Pi) - 1.5 - spinOffset
	beta = loc.Y*3 - 1.5
	return alpha, beta
}

// Tracker eases the camera toward a target location over successive frames.
type Tracker struct {
	Target Location
	Speed  float64
}

// Step nudges alpha and beta toward the target, slowing down on approach,
// and reports true once both angles are within tolerance.
func (t *Tracker) Step(spinOffset float64, alpha, beta *float64) bool {
	targetAlpha := -(t.Target.X*math.Pi - spinOffset) - 1.5
	targetBeta := t.Target.Y*3 - 1.5

	diffA := targetAlpha - *alpha
	diffB := targetBeta - *beta

	if math.Abs(diffA) < 0.01 && math.Abs(diffB) < 0.01 {
		return true
	}

	moveA := 0.01*t.Speed + math.Abs(diffA)/30*t.Speed
	if math.Abs(diffA) < 0.07 {
		moveA /= 5
	}
	if diffA > 0 {
		*alpha += moveA
	} else if diffA < 0 {
		*alpha -= moveA
	}

	moveB := 0.005*t.Speed + math.Abs(diffB)/30*t.Speed
	if math.Abs(diffB) < 0.07 {
		moveB /= 5
	}
	if diffB > 0 {
		*beta += moveB
	} else if diffB < 0 {
		*beta -= moveB
	}

	return false
}
