package projgeo

/*
#cgo darwin pkg-config: proj
#cgo !darwin LDFLAGS: -lproj
#define ACCEPT_USE_OF_DEPRECATED_PROJ_API_H 1
#include <proj_api.h>
#include <stdlib.h>
*/
import "C"

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/tidwall/geodesic"
)

// CoordSys is an opaque handle to a projection or geodetic definition
// held by the native engine. A CoordSys is owned by the caller that
// created it and must not be used after Close. It is not safe for
// unsynchronized concurrent use: the geodesic solver and the lat-long
// companion are lazily attached fields.
type CoordSys struct {
	pj     C.projPJ
	opened bool

	geodOnce sync.Once
	geod     *geodesic.Ellipsoid

	llOnce sync.Once
	ll     *CoordSys
	llErr  error
}

// NewCoordSys initializes a coordinate system from a proj.4 definition
// string, e.g. "+proj=utm +zone=18 +datum=WGS84".
func NewCoordSys(definition string) (*CoordSys, error) {
	cs := C.CString(definition)
	defer C.free(unsafe.Pointer(cs))
	pj := C.pj_init_plus(cs)
	if pj == nil {
		code := lastErrno()
		return nil, &ParseError{Code: code, Msg: strerrno(code)}
	}
	p := &CoordSys{pj: pj, opened: true}
	runtime.SetFinalizer(p, (*CoordSys).Close)
	return p, nil
}

// Close releases the native resources. It is safe to call more than
// once; the handle is invalid afterwards.
func (p *CoordSys) Close() {
	if p.opened {
		C.pj_free(p.pj)
		p.pj = nil
		p.opened = false
		if p.ll != nil && p.ll != p {
			p.ll.Close()
		}
		p.ll = nil
	}
}

// IsGeographic reports whether the system's coordinates are angular
// (longitude, latitude).
func (p *CoordSys) IsGeographic() bool {
	return p.opened && C.pj_is_latlong(p.pj) != 0
}

// IsGeocentric reports whether the system is Cartesian (x, y, z)
// centered on the ellipsoid's center of mass.
func (p *CoordSys) IsGeocentric() bool {
	return p.opened && C.pj_is_geocent(p.pj) != 0
}

// SpheroidParams returns the semi-major axis in meters and the
// eccentricity squared of the system's ellipsoid.
func (p *CoordSys) SpheroidParams() (a, es float64) {
	var ca, ces C.double
	C.pj_get_spheroid_defn(p.pj, &ca, &ces)
	return float64(ca), float64(ces)
}

// SameDatum reports whether two systems share a datum, as judged by
// the native engine.
func (p *CoordSys) SameDatum(q *CoordSys) bool {
	return p.opened && q.opened && C.pj_compare_datums(p.pj, q.pj) != 0
}

// Definition returns the expanded proj.4 definition string of the
// system.
func (p *CoordSys) Definition() string {
	if !p.opened {
		return ""
	}
	def := C.pj_get_def(p.pj, 0)
	if def == nil {
		return ""
	}
	defer C.pj_dalloc(unsafe.Pointer(def))
	return C.GoString(def)
}

// geographic returns the lat-long system on the same datum, creating
// and caching it on first use. Returns p itself when p is already
// geographic. The companion shares p's lifetime and is released by
// p.Close.
func (p *CoordSys) geographic() (*CoordSys, error) {
	if !p.opened {
		return nil, errClosed
	}
	if p.IsGeographic() {
		return p, nil
	}
	p.llOnce.Do(func() {
		pj := C.pj_latlong_from_proj(p.pj)
		if pj == nil {
			code := lastErrno()
			p.llErr = &ParseError{Code: code, Msg: strerrno(code)}
			return
		}
		p.ll = &CoordSys{pj: pj, opened: true}
	})
	return p.ll, p.llErr
}

// transformPoints runs the native point transform over the axis
// buffers, which must be in engine units. z may be nil for 2-D data;
// the engine does not touch it then.
func transformPoints(src, dst *CoordSys, x, y, z []float64) error {
	var zp *C.double
	if z != nil {
		zp = (*C.double)(unsafe.Pointer(&z[0]))
	}
	r := C.pj_transform(src.pj, dst.pj, C.long(len(x)), 1,
		(*C.double)(unsafe.Pointer(&x[0])),
		(*C.double)(unsafe.Pointer(&y[0])),
		zp)
	if r != 0 {
		code := int(r)
		return &TransformError{Code: code, Msg: strerrno(code)}
	}
	return nil
}

// geocentricToGeodetic converts X/Y/Z buffers to lon/lat/height in
// radians and meters. offset is the element stride between consecutive
// values and is handed to the engine unchecked.
func geocentricToGeodetic(a, es float64, offset int, x, y, z []float64) error {
	r := C.pj_geocentric_to_geodetic(C.double(a), C.double(es),
		C.long(len(x)), C.int(offset),
		(*C.double)(unsafe.Pointer(&x[0])),
		(*C.double)(unsafe.Pointer(&y[0])),
		(*C.double)(unsafe.Pointer(&z[0])))
	if r != 0 {
		code := int(r)
		return &GeocentricError{Code: code, Msg: strerrno(code)}
	}
	return nil
}

// geodeticToGeocentric is the inverse of geocentricToGeodetic, with
// the same strided-buffer contract.
func geodeticToGeocentric(a, es float64, offset int, x, y, z []float64) error {
	r := C.pj_geodetic_to_geocentric(C.double(a), C.double(es),
		C.long(len(x)), C.int(offset),
		(*C.double)(unsafe.Pointer(&x[0])),
		(*C.double)(unsafe.Pointer(&y[0])),
		(*C.double)(unsafe.Pointer(&z[0])))
	if r != 0 {
		code := int(r)
		return &GeocentricError{Code: code, Msg: strerrno(code)}
	}
	return nil
}

// strerrno resolves a native error code to its message.
func strerrno(code int) string {
	return C.GoString(C.pj_strerrno(C.int(code)))
}

// lastErrno reads the engine's global error register. It is consulted
// only when a call reports no per-call code (handle creation); the
// read is not reentrant.
func lastErrno() int {
	return int(*C.pj_get_errno_ref())
}

// Version returns the release string of the native PROJ library.
func Version() string {
	return C.GoString(C.pj_get_release())
}
