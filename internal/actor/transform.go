package actor

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// WorldToScreen converts an origin-centred, y-up world point into screen
// pixels with the origin at the top-left and y pointing down.
func WorldToScreen(screenW, screenH float64, p r2.Vec) r2.Vec {
	return r2.Vec{
		X: p.X + screenW/2,
		Y: screenH - (p.Y + screenH/2),
	}
}

// VecFromAngle returns the unit vector for a facing angle.
// Angle zero points up (+y), increasing clockwise.
func VecFromAngle(angle float64) r2.Vec {
	return r2.Vec{X: math.Sin(angle), Y: math.Cos(angle)}
}
