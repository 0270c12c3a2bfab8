package projgeo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoops/projgeo"
)

func TestNewCoordSysParseError(t *testing.T) {
	_, err := projgeo.NewCoordSys("+proj=does-not-exist")
	var parseErr *projgeo.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Msg)
}

func TestCoordSysClassification(t *testing.T) {
	ll := mustSys(t, "+proj=latlong +datum=WGS84")
	utm := mustSys(t, "+proj=utm +zone=18 +datum=WGS84")
	geocent := mustSys(t, "+proj=geocent +datum=WGS84")

	assert.True(t, ll.IsGeographic())
	assert.False(t, ll.IsGeocentric())

	assert.False(t, utm.IsGeographic())
	assert.False(t, utm.IsGeocentric())

	assert.False(t, geocent.IsGeographic())
	assert.True(t, geocent.IsGeocentric())
}

func TestSpheroidParams(t *testing.T) {
	ll := mustSys(t, "+proj=latlong +datum=WGS84")
	a, es := ll.SpheroidParams()
	assert.InDelta(t, 6378137.0, a, 1e-6)
	assert.InDelta(t, 0.00669437999014, es, 1e-12)
}

func TestSameDatum(t *testing.T) {
	ll := mustSys(t, "+proj=latlong +datum=WGS84")
	utm := mustSys(t, "+proj=utm +zone=18 +datum=WGS84")
	nad27 := mustSys(t, "+proj=latlong +datum=NAD27")

	assert.True(t, ll.SameDatum(utm))
	assert.False(t, ll.SameDatum(nad27))
}

func TestDefinition(t *testing.T) {
	ll := mustSys(t, "+proj=latlong +datum=WGS84")
	def := ll.Definition()
	if !strings.Contains(def, "proj=latlong") {
		t.Errorf("Definition() = %q, want it to contain proj=latlong", def)
	}
}

func TestClosedCoordSys(t *testing.T) {
	p, err := projgeo.NewCoordSys("+proj=latlong +datum=WGS84")
	require.NoError(t, err)
	p.Close()
	p.Close()

	assert.False(t, p.IsGeographic())
	assert.Empty(t, p.Definition())

	_, err = p.Geod()
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, projgeo.Version())
}
