// Package geodprofile samples equally spaced points along geodesics on an
// ellipsoid, by point count or by spacing.
package geodprofile

import "github.com/tidwall/geodesic"

// WGS84 conforming ellispoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137, float64(1.)/298.257223563)

// Primitives are the geodesic operations the intermediate-point sampler is
// built on. All angles are in degrees and all distances in meters.
//
// Azimuths returned at the second point are back azimuths, that is the
// direction from point 2 towards point 1.
type Primitives interface {
	// Inverse solves the inverse geodesic problem.
	Inverse(lon1, lat1, lon2, lat2 float64) (az12, az21, dist float64)
	// Direct solves the direct geodesic problem.
	Direct(lon1, lat1, az12, dist float64) (lon2, lat2, az21 float64)
	// Npts fills lons and lats with len(lons) points strictly between the
	// two points, evenly spaced by distance and ordered from point 1 to
	// point 2. When azis is not nil it receives the forward azimuth at each
	// point.
	Npts(lon1, lat1, lon2, lat2 float64, lons, lats, azis []float64)
}

// Ellipsoid is an object for performing geodesic operations.
type Ellipsoid struct {
	e          *geodesic.Ellipsoid
	radius     float64
	flattening float64
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
//
// The WGS84 pacakge-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) *Ellipsoid {
	return &Ellipsoid{
		e:          geodesic.NewEllipsoid(radius, flattening),
		radius:     radius,
		flattening: flattening,
	}
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.radius
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.flattening
}

// Inverse solve the inverse geodesic problem.
//
// Param lon1 is longitude of point 1 (degrees).
// Param lat1 is latitude of point 1 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Returns the azimuth at point 1, the back azimuth at point 2 (degrees) and
// the distance from point 1 to point 2 (meters).
//
// lat1 and lat2 should be in the range [-90,+90].
func (e *Ellipsoid) Inverse(lon1, lat1, lon2, lat2 float64) (az12, az21, dist float64) {
	var azi2 float64
	e.e.Inverse(lat1, lon1, lat2, lon2, &dist, &az12, &azi2)
	return az12, backAzimuth(azi2), dist
}

// Direct solves the direct geodesic problem.
//
// Param lon1 is the longitude of point 1 (degrees).
// Param lat1 is the latitude of point 1 (degrees).
// Param az12 is the azimuth at point 1 (degrees).
// Param dist is the distance from point 1 to point 2 (meters). negative is ok.
// Returns the longitude and latitude of point 2 and the back azimuth at
// point 2 (degrees).
//
// The values of lon2 and az21 returned are in the range [-180,+180].
func (e *Ellipsoid) Direct(lon1, lat1, az12, dist float64) (lon2, lat2, az21 float64) {
	var azi2 float64
	e.e.Direct(lat1, lon1, az12, dist, &lat2, &lon2, &azi2)
	return lon2, lat2, backAzimuth(azi2)
}

// Npts computes len(lons) equally spaced points strictly between point 1
// and point 2. Every point is a direct solution from point 1 along the
// initial azimuth of the connecting geodesic, at multiples of
// dist/(len(lons)+1).
func (e *Ellipsoid) Npts(lon1, lat1, lon2, lat2 float64, lons, lats, azis []float64) {
	n := len(lons)
	if n == 0 {
		return
	}
	var s12, azi1 float64
	e.e.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, nil)
	del := s12 / float64(n+1)
	for i := 0; i < n; i++ {
		var azi2 float64
		e.e.Direct(lat1, lon1, azi1, float64(i+1)*del, &lats[i], &lons[i], &azi2)
		if azis != nil {
			azis[i] = azi2
		}
	}
}

// Length returns the geodesic length of the polyline through the points
// (meters). lons and lats must have the same length.
func (e *Ellipsoid) Length(lons, lats []float64) float64 {
	p := e.e.PolygonInit(true)
	for i := range lons {
		p.AddPoint(lats[i], lons[i])
	}
	var perimeter float64
	p.Compute(false, false, nil, &perimeter)
	return perimeter
}

// backAzimuth turns a forward azimuth into the opposite direction, keeping
// the result in (-180,+180].
func backAzimuth(azi float64) float64 {
	if azi > 0 {
		return azi - 180
	}
	return azi + 180
}

// forwardAzimuth is the inverse of backAzimuth.
func forwardAzimuth(az21 float64) float64 {
	return backAzimuth(az21)
}
