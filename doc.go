/*
Package projgeo transforms coordinates between geodetic, projected and
geocentric reference systems and solves direct and inverse geodesic
problems on a coordinate system's ellipsoid.

Projection and datum-shift math is delegated to the Cartographic
Projections Library PROJ through its proj.4 API (proj_api.h); geodesic
problems are solved with a Go port of GeographicLib parameterized from
the system's spheroid.

See: https://proj.org/

Angular coordinates cross this package's boundary in degrees unless the
caller explicitly asks for radians. Values handed to the native engine
are always in radians for geographic systems.
*/
package projgeo
