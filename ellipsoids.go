package geodprofile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownEllipsoid is returned by NamedEllipsoid for names it does not know.
var ErrUnknownEllipsoid = errors.New("unknown ellipsoid")

type ellipsoidDef struct {
	a  float64 // equatorial radius
	rf float64 // reciprocal flattening, 0 when b is given
	b  float64 // polar radius
}

func (d ellipsoidDef) flattening() float64 {
	if d.rf != 0 {
		return 1 / d.rf
	}
	return (d.a - d.b) / d.a
}

// Names follow the PROJ ellps identifiers.
var ellipsoidDefs = map[string]ellipsoidDef{
	"WGS84":  {a: 6378137, rf: 298.257223563},
	"GRS80":  {a: 6378137, rf: 298.257222101},
	"WGS72":  {a: 6378135, rf: 298.26},
	"clrk66": {a: 6378206.4, b: 6356583.8},
	"clrk80": {a: 6378249.145, rf: 293.4663},
	"intl":   {a: 6378388, rf: 297},
	"bessel": {a: 6377397.155, rf: 299.1528128},
	"airy":   {a: 6377563.396, b: 6356256.910},
	"krass":  {a: 6378245, rf: 298.3},
	"sphere": {a: 6370997, b: 6370997},
}

// NamedEllipsoid returns the ellipsoid registered under name, e.g. "WGS84"
// or "clrk66". Matching is case-insensitive.
func NamedEllipsoid(name string) (*Ellipsoid, error) {
	if name == "WGS84" {
		return WGS84, nil
	}
	for k, d := range ellipsoidDefs {
		if strings.EqualFold(k, name) {
			return NewEllipsoid(d.a, d.flattening()), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEllipsoid, name)
}

// EllipsoidNames lists the names accepted by NamedEllipsoid.
func EllipsoidNames() []string {
	names := make([]string, 0, len(ellipsoidDefs))
	for k := range ellipsoidDefs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
