package geodprofile

import "math"

type spacing struct {
	npts int
	delS float64
}

// resolveSpacing settles the point count and the spacing for a geodesic of
// length dist. A zero delS in the result means the spacing could not be
// resolved here and must be measured on the generated points.
//
// With exclusive set, a request giving both npts and delS must agree on the
// point count.
func resolveSpacing(dist float64, npts int, delS float64, opts Options, exclusive bool) (spacing, error) {
	switch {
	case npts == 0:
		n, err := countFor(dist, delS, opts)
		if err != nil {
			return spacing{}, err
		}
		npts = n
	case exclusive && delS != 0 && dist != 0:
		n, err := countFor(dist, delS, opts)
		if err != nil {
			return spacing{}, err
		}
		if n != npts {
			return spacing{}, newError(InvalidRequest,
				"npts=%d conflicts with del_s=%g, which gives %d points over %g m", npts, delS, n, dist)
		}
	}
	if opts.Recalc == Recalc {
		delS = 0
		if n := opts.Endpoints.Intervals(npts); n != 0 {
			delS = dist / float64(n)
		}
	}
	return spacing{npts: npts, delS: delS}, nil
}

// countFor derives the point count from a spacing.
func countFor(dist, delS float64, opts Options) (int, error) {
	if dist == 0 {
		return 0, newError(NumericDegeneracy, "cannot derive a point count from del_s=%g over a zero distance", delS)
	}
	raw := opts.Rounding.apply(dist/delS - float64(opts.Endpoints.Sum()) + 1)
	if raw < 0 {
		return 0, newError(InvalidRequest, "del_s=%g resolves to a negative point count over %g m", delS, dist)
	}
	if raw > math.MaxInt32 {
		return 0, newError(InvalidRequest, "del_s=%g resolves to too many points over %g m", delS, dist)
	}
	return int(raw), nil
}

// fallbackSpacing measures the spacing on the emitted points: between the
// first two of them, or between a lone point and the excluded endpoint next
// to it. Coordinates are in degrees.
func (g *Geod) fallbackSpacing(lon1, lat1, lon2, lat2 float64, ep EndpointPolicy, lons, lats []float64) (float64, error) {
	var d float64
	switch {
	case len(lons) >= 2:
		_, _, d = g.p.Inverse(lons[0], lats[0], lons[1], lats[1])
	case len(lons) == 1 && !ep.IncludeInitial():
		_, _, d = g.p.Inverse(lon1, lat1, lons[0], lats[0])
	case len(lons) == 1 && !ep.IncludeTerminus():
		_, _, d = g.p.Inverse(lons[0], lats[0], lon2, lat2)
	default:
		return 0, newError(NumericDegeneracy, "cannot measure del_s on %d points", len(lons))
	}
	return d, nil
}
