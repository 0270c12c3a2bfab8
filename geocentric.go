package projgeo

import "gonum.org/v1/gonum/floats"

// GeocentricToGeodetic converts a batch of geocentric (X, Y, Z) points
// in meters, in place, to geodetic (lon, lat, height) on the ellipsoid
// given by semi-major axis a and eccentricity squared es. Output
// angles are degrees unless radians is true. Every point must have 3
// components.
func GeocentricToGeodetic(a, es float64, batch [][]float64, radians bool) error {
	bufs, err := splitGeocentric(batch)
	if err != nil {
		return err
	}
	if err := geocentricToGeodetic(a, es, 1, bufs.x, bufs.y, bufs.z); err != nil {
		return err
	}
	if !radians {
		floats.Scale(radToDeg, bufs.x)
		floats.Scale(radToDeg, bufs.y)
	}
	bufs.gather(batch)
	return nil
}

// GeodeticToGeocentric converts a batch of geodetic (lon, lat, height)
// points, in place, to geocentric (X, Y, Z) meters. Input angles are
// read as degrees unless radians is true.
func GeodeticToGeocentric(a, es float64, batch [][]float64, radians bool) error {
	bufs, err := splitGeocentric(batch)
	if err != nil {
		return err
	}
	if !radians {
		floats.Scale(degToRad, bufs.x)
		floats.Scale(degToRad, bufs.y)
	}
	if err := geodeticToGeocentric(a, es, 1, bufs.x, bufs.y, bufs.z); err != nil {
		return err
	}
	bufs.gather(batch)
	return nil
}

// GeocentricToGeodeticBuffers converts strided axis buffers directly,
// in radians. offset is the element stride between consecutive values
// and is passed to the engine unchecked; the caller owns bounds.
func GeocentricToGeodeticBuffers(a, es float64, offset int, x, y, z []float64) error {
	return geocentricToGeodetic(a, es, offset, x, y, z)
}

// GeodeticToGeocentricBuffers is the inverse of
// GeocentricToGeodeticBuffers, with the same unchecked-stride
// contract.
func GeodeticToGeocentricBuffers(a, es float64, offset int, x, y, z []float64) error {
	return geodeticToGeocentric(a, es, offset, x, y, z)
}

// splitGeocentric is splitBatch restricted to 3-component points; the
// native conversion reads and writes all three axes.
func splitGeocentric(batch [][]float64) (buffers, error) {
	if len(batch) == 0 {
		return buffers{}, &ShapeError{Row: 0, Dim: 0, Want: 3}
	}
	bufs, err := splitBatch(batch)
	if err != nil {
		return buffers{}, err
	}
	if bufs.z == nil {
		return buffers{}, &ShapeError{Row: 0, Dim: 2, Want: 3}
	}
	return bufs, nil
}
