package movement

import (
	"fmt"
	"math"

	"github.com/gisportsmouth/point-movement/survey"
)

// Delta is the movement between two measurements of the same point.
type Delta struct {
	// Distance is the planar distance moved, always >= 0.
	Distance float64

	// AzimuthDeg is the bearing of travel in degrees clockwise from north,
	// in [0, 360). A point with no horizontal movement reports 0 by
	// convention; the vertical-only case still needs a defined row.
	AzimuthDeg float64

	// DeltaZ is the signed height change: positive rose, negative subsided.
	DeltaZ float64
}

// CrossPointError reports an attempt to compare measurements of two
// different points. The grouping stage makes this unreachable in the
// pipeline; seeing one means a caller bug.
type CrossPointError struct {
	A string
	B string
}

func (e *CrossPointError) Error() string {
	return fmt.Sprintf("cross-point comparison: %q vs %q", e.A, e.B)
}

// Compare computes the movement from a to b. Both measurements must belong
// to the same point. No rounding is applied; presentation rounding belongs
// to the formatter.
func Compare(a, b survey.Measurement) (Delta, error) {
	if a.PointID != b.PointID {
		return Delta{}, &CrossPointError{A: a.PointID, B: b.PointID}
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	d := Delta{
		Distance: math.Hypot(dx, dy),
		DeltaZ:   b.Z - a.Z,
	}
	if dx != 0 || dy != 0 {
		az := math.Atan2(dx, dy) * 180 / math.Pi
		if az < 0 {
			az += 360
		}
		d.AzimuthDeg = az
	}
	return d, nil
}
