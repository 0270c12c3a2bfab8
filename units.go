package projgeo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * degToRad
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * radToDeg
}

// toEngineUnits converts the angular axes to the radians the engine
// expects, relative to the given system. Identity when the system is
// not geographic or the caller already supplied radians. The z axis
// carries heights and is never unit-converted.
func (b buffers) toEngineUnits(sys *CoordSys, radians bool) {
	if radians || !sys.IsGeographic() {
		return
	}
	floats.Scale(degToRad, b.x)
	floats.Scale(degToRad, b.y)
}

// fromEngineUnits is the inverse of toEngineUnits.
func (b buffers) fromEngineUnits(sys *CoordSys, radians bool) {
	if radians || !sys.IsGeographic() {
		return
	}
	floats.Scale(radToDeg, b.x)
	floats.Scale(radToDeg, b.y)
}
