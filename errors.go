package projgeo

import (
	"errors"
	"fmt"
)

var errClosed = errors.New("coordinate system is closed")

// ShapeError reports a coordinate batch whose points do not have 2 or 3
// components, or whose rows differ in width. It is raised before any
// native call is issued.
type ShapeError struct {
	Row  int // index of the offending point
	Dim  int // its component count
	Want int // required width, 0 when any width of 2 or 3 would do
}

func (e *ShapeError) Error() string {
	if e.Want != 0 {
		return fmt.Sprintf("point %d has %d components, want %d", e.Row, e.Dim, e.Want)
	}
	return fmt.Sprintf("point %d has %d components, want 2 or 3", e.Row, e.Dim)
}

// ParseError reports a projection definition the native engine could
// not initialize.
type ParseError struct {
	Code int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid projection definition: %s (code %d)", e.Msg, e.Code)
}

// TransformError reports a nonzero return from a native point
// transform, with the engine's code and its resolved message.
type TransformError struct {
	Code int
	Msg  string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform failed: %s (code %d)", e.Msg, e.Code)
}

// GeocentricError reports a failed geocentric/geodetic conversion.
type GeocentricError struct {
	Code int
	Msg  string
}

func (e *GeocentricError) Error() string {
	return fmt.Sprintf("geocentric conversion failed: %s (code %d)", e.Msg, e.Code)
}

// GeodesicError reports a geodesic solver failure, such as a
// non-convergent inverse problem.
type GeodesicError struct {
	Msg string
}

func (e *GeodesicError) Error() string {
	return "geodesic: " + e.Msg
}
