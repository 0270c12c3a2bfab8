package projgeo_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoops/projgeo"
)

// WGS84 spheroid.
const (
	wgs84A  = 6378137.0
	wgs84Es = 0.00669437999014
)

func TestGeodeticToGeocentric(t *testing.T) {
	batch := [][]float64{
		{0, 0, 0},
		{90, 0, 0},
	}
	err := projgeo.GeodeticToGeocentric(wgs84A, wgs84Es, batch, false)
	require.NoError(t, err)

	assert.InDelta(t, wgs84A, batch[0][0], 1e-3)
	assert.InDelta(t, 0, batch[0][1], 1e-3)
	assert.InDelta(t, 0, batch[0][2], 1e-3)

	assert.InDelta(t, 0, batch[1][0], 1e-3)
	assert.InDelta(t, wgs84A, batch[1][1], 1e-3)
	assert.InDelta(t, 0, batch[1][2], 1e-3)
}

func TestGeocentricRoundTrip(t *testing.T) {
	orig := [][]float64{
		{-74.0, 40.7, 10.0},
		{151.2, -33.87, 58.0},
		{0, 90, 0},
	}
	batch := make([][]float64, len(orig))
	for i, pt := range orig {
		batch[i] = append([]float64(nil), pt...)
	}

	require.NoError(t, projgeo.GeodeticToGeocentric(wgs84A, wgs84Es, batch, false))
	require.NoError(t, projgeo.GeocentricToGeodetic(wgs84A, wgs84Es, batch, false))

	if diff := cmp.Diff(orig, batch, cmpopts.EquateApprox(0, 1e-7)); diff != "" {
		t.Errorf("geocentric round trip (-want +got):\n%s", diff)
	}
}

func TestGeocentricRequiresThreeComponents(t *testing.T) {
	err := projgeo.GeodeticToGeocentric(wgs84A, wgs84Es, [][]float64{{1, 2}}, false)
	var shapeErr *projgeo.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 3, shapeErr.Want)

	err = projgeo.GeocentricToGeodetic(wgs84A, wgs84Es, nil, false)
	require.ErrorAs(t, err, &shapeErr)
}

func TestGeocentricBuffersRadians(t *testing.T) {
	// The buffer-level API works in engine units (radians).
	x := []float64{projgeo.DegToRad(-74.0)}
	y := []float64{projgeo.DegToRad(40.7)}
	z := []float64{0}
	require.NoError(t, projgeo.GeodeticToGeocentricBuffers(wgs84A, wgs84Es, 1, x, y, z))
	require.NoError(t, projgeo.GeocentricToGeodeticBuffers(wgs84A, wgs84Es, 1, x, y, z))
	assert.InDelta(t, projgeo.DegToRad(-74.0), x[0], 1e-12)
	assert.InDelta(t, projgeo.DegToRad(40.7), y[0], 1e-12)
	assert.InDelta(t, 0, z[0], 1e-6)
}
