package geodprofile

import "github.com/tidwall/geodesic"

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe.
var Globe = NewSphere(6378137)

// Sphere performs geodesic operations on a sphere using great-circle
// formulas such as the Haversine formula.
//
// Sphere operations are often more computationally efficient than the
// Ellipsoid ones, at the price of up to ~0.5% error in distances on Earth.
type Sphere struct {
	Ellipsoid
}

// NewSphere initializes a new sphere.
//
// Param radius is the sphere radius (meters).
func NewSphere(radius float64) *Sphere {
	return &Sphere{Ellipsoid{
		e:      geodesic.NewSpherical(radius),
		radius: radius,
	}}
}
