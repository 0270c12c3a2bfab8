package projgeo

import (
	"math"
	"slices"

	"github.com/tidwall/geodesic"
)

// Geod returns the geodesic solver for the system's ellipsoid,
// parameterized by the semi-major axis and f = 1 - sqrt(1 - es). The
// solver is built on first use and cached for the system's lifetime.
func (p *CoordSys) Geod() (*geodesic.Ellipsoid, error) {
	if !p.opened {
		return nil, errClosed
	}
	p.geodOnce.Do(func() {
		a, es := p.SpheroidParams()
		p.geod = geodesic.NewEllipsoid(a, 1-math.Sqrt(1-es))
	})
	return p.geod, nil
}

// GeodDirectInPlace solves the direct geodesic problem from position,
// overwriting it with the destination, and returns the forward azimuth
// there. position is in the system's own representation (projected or
// geocentric positions are round-tripped through lon/lat internally).
// azimuth is in degrees, best in [-540, 540); a negative distance
// moves backward along the reciprocal azimuth.
func GeodDirectInPlace(p *CoordSys, position []float64, azimuth, distance float64) (float64, error) {
	g, err := p.Geod()
	if err != nil {
		return 0, err
	}
	if err := checkPoint(position); err != nil {
		return 0, err
	}
	ll, err := p.geographic()
	if err != nil {
		return 0, err
	}
	if ll != p {
		if err := TransformPointInPlace(p, ll, position, false); err != nil {
			return 0, err
		}
	}
	lon1, lat1 := position[0], latFix(position[1])
	var lat2, lon2, azi2 float64
	g.Direct(lat1, lon1, azimuth, distance, &lat2, &lon2, &azi2)
	if math.IsNaN(lat2) || math.IsNaN(lon2) || math.IsNaN(azi2) {
		return 0, &GeodesicError{Msg: "direct solution is undefined for the given inputs"}
	}
	position[0], position[1] = lon2, lat2
	if ll != p {
		if err := TransformPointInPlace(ll, p, position, false); err != nil {
			return 0, err
		}
	}
	return wrap180(azi2), nil
}

// GeodDirect is the copy-returning variant of GeodDirectInPlace: it
// returns the destination without mutating the caller's position.
func GeodDirect(p *CoordSys, position []float64, azimuth, distance float64) ([]float64, float64, error) {
	dest := slices.Clone(position)
	azi2, err := GeodDirectInPlace(p, dest, azimuth, distance)
	if err != nil {
		return nil, 0, err
	}
	return dest, azi2, nil
}

// GeodInverse solves the inverse geodesic problem between two
// positions in the system's own representation. It returns the
// distance in meters and the azimuths at each endpoint, in degrees
// normalized to [-180, 180). Neither input is mutated. Positions at a
// pole follow the limiting convention: longitude is held fixed and the
// azimuth is the limit as the latitude approaches the pole.
func GeodInverse(p *CoordSys, a, b []float64) (distance, azi1, azi2 float64, err error) {
	g, err := p.Geod()
	if err != nil {
		return 0, 0, 0, err
	}
	lon1, lat1, err := lonLatOf(p, a)
	if err != nil {
		return 0, 0, 0, err
	}
	lon2, lat2, err := lonLatOf(p, b)
	if err != nil {
		return 0, 0, 0, err
	}
	g.Inverse(lat1, lon1, lat2, lon2, &distance, &azi1, &azi2)
	if math.IsNaN(distance) || math.IsNaN(azi1) || math.IsNaN(azi2) {
		return 0, 0, 0, &GeodesicError{Msg: "inverse solution did not converge"}
	}
	return distance, wrap180(azi1), wrap180(azi2), nil
}

// GeodDistance returns the geodesic distance in meters between two
// positions in the system's own representation.
func GeodDistance(p *CoordSys, a, b []float64) (float64, error) {
	d, _, _, err := GeodInverse(p, a, b)
	return d, err
}

// lonLatOf converts a position to lon/lat degrees without mutating it.
func lonLatOf(p *CoordSys, position []float64) (lon, lat float64, err error) {
	if err := checkPoint(position); err != nil {
		return 0, 0, err
	}
	if p.IsGeographic() {
		return position[0], latFix(position[1]), nil
	}
	ll, err := p.geographic()
	if err != nil {
		return 0, 0, err
	}
	pt, err := TransformPoint(p, ll, position, false)
	if err != nil {
		return 0, 0, err
	}
	return pt[0], latFix(pt[1]), nil
}

// latFix clamps floating-point overshoot past the poles into the
// solver's valid [-90, 90] range.
func latFix(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// wrap180 normalizes an azimuth in degrees to [-180, 180).
func wrap180(deg float64) float64 {
	if deg >= 180 {
		deg -= 360
	} else if deg < -180 {
		deg += 360
	}
	return deg
}
