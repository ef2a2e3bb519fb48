package geodprofile

import (
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// Geod samples equally spaced points along geodesics computed by a set of
// Primitives.
//
// A Geod holds no mutable state and may be used from several goroutines at
// once, as long as concurrent calls do not share output buffers.
type Geod struct {
	p Primitives
}

// New returns a Geod over p.
func New(p Primitives) *Geod {
	return &Geod{p: p}
}

// Primitives returns the primitives g samples with.
func (g *Geod) Primitives() Primitives {
	return g.p
}

// Options are shared by InvIntermediate and FwdIntermediate.
type Options struct {
	Endpoints EndpointPolicy
	Rounding  RoundingMode
	Recalc    RecalcMode
	Azimuth   AzimuthMode

	// Radians switches the units of all input and output angles from
	// degrees to radians. Distances are always meters.
	Radians bool

	// OutLons, OutLats and OutAzis are optional buffers. When set, the
	// corresponding output is written into the buffer and the very same
	// slice is returned in the Result, so that repeated calls (e.g. one
	// profile per raster row) do not allocate. The length of a buffer must
	// equal the resolved point count. OutAzis is ignored unless Azimuth is
	// AzimuthKeep.
	OutLons []float64
	OutLats []float64
	OutAzis []float64
}

// InvRequest asks for points between two known endpoints.
//
// Npts or DelS drives the point count. When both are set they must imply
// the same count (DelS then only matters under NoRecalc).
type InvRequest struct {
	Lon1, Lat1 float64
	Lon2, Lat2 float64
	Npts       int
	DelS       float64
	Options
}

// FwdRequest asks for points starting at a point along an azimuth. The
// terminus is the point reached after DelS*(Npts+InitialIdx+TerminusIdx-1)
// meters.
type FwdRequest struct {
	Lon1, Lat1 float64
	Azi1       float64
	Npts       int
	DelS       float64
	Options
}

// Result holds the sampled points.
type Result struct {
	// Npts is the number of emitted points.
	Npts int `json:"npts"`
	// DelS is the spacing between consecutive points (meters).
	DelS float64 `json:"del_s"`
	// Dist is the geodesic distance between the two true endpoints (meters).
	Dist float64 `json:"dist"`
	// Lons and Lats hold Npts coordinates from the initial side to the
	// terminal side.
	Lons []float64 `json:"lons"`
	Lats []float64 `json:"lats"`
	// Azis holds the forward azimuth at each point, nil unless requested.
	Azis []float64 `json:"azis,omitempty"`
}

// Path returns the points as a line string with longitudes as X.
func (r *Result) Path() geom.LineString {
	l := make(geom.LineString, r.Npts)
	for i := range l {
		l[i] = geom.Point{X: r.Lons[i], Y: r.Lats[i]}
	}
	return l
}

// Distances returns i*DelS for each emitted point, the distance axis of a
// profile measured from the first emitted point.
func (r *Result) Distances() []float64 {
	d := make([]float64, r.Npts)
	for i := range d {
		d[i] = float64(i)
	}
	floats.Scale(r.DelS, d)
	return d
}

// InvIntermediate returns equally spaced points on the geodesic between
// (Lon1, Lat1) and (Lon2, Lat2).
func (g *Geod) InvIntermediate(req InvRequest) (*Result, error) {
	if err := validate(req.Npts, req.DelS, req.Options); err != nil {
		return nil, err
	}
	if req.Npts == 0 && req.DelS == 0 {
		return nil, newError(InvalidRequest, "either npts or del_s must be set")
	}
	u := unitsOf(req.Options)
	return g.intermediate(
		u.in(req.Lon1), u.in(req.Lat1), u.in(req.Lon2), u.in(req.Lat2),
		req.Npts, req.DelS, req.Options, true)
}

// FwdIntermediate solves the direct problem for the terminus implied by
// Npts and DelS and then samples exactly like InvIntermediate.
func (g *Geod) FwdIntermediate(req FwdRequest) (*Result, error) {
	if err := validate(req.Npts, req.DelS, req.Options); err != nil {
		return nil, err
	}
	if req.Npts <= 0 || req.DelS <= 0 {
		return nil, newError(InvalidRequest, "npts and del_s must be positive, got %d and %g", req.Npts, req.DelS)
	}
	u := unitsOf(req.Options)
	lon1, lat1 := u.in(req.Lon1), u.in(req.Lat1)
	dist := req.DelS * float64(req.Endpoints.Intervals(req.Npts))
	lon2, lat2, _ := g.p.Direct(lon1, lat1, u.in(req.Azi1), dist)
	return g.intermediate(lon1, lat1, lon2, lat2, req.Npts, req.DelS, req.Options, false)
}

// Npts returns npts points on the geodesic between (lon1, lat1) and
// (lon2, lat2). The endpoints are emitted according to ep and count towards
// npts.
func (g *Geod) Npts(lon1, lat1, lon2, lat2 float64, npts int, ep EndpointPolicy, radians bool) (lons, lats []float64, err error) {
	if err := ep.Validate(); err != nil {
		return nil, nil, err
	}
	interior := ep.Interior(npts)
	if interior < 0 {
		return nil, nil, newError(InvalidRequest, "%d points cannot hold the included endpoints", npts)
	}
	u := units{radians: radians}
	lons = make([]float64, npts)
	lats = make([]float64, npts)
	g.build(u.in(lon1), u.in(lat1), u.in(lon2), u.in(lat2), ep, interior, lons, lats, nil)
	u.outAll(lons)
	u.outAll(lats)
	return lons, lats, nil
}

func validate(npts int, delS float64, opts Options) error {
	if err := opts.Endpoints.Validate(); err != nil {
		return err
	}
	if npts < 0 {
		return newError(InvalidRequest, "npts must not be negative, got %d", npts)
	}
	if delS < 0 || math.IsNaN(delS) || math.IsInf(delS, 0) {
		return newError(InvalidRequest, "del_s must be a non-negative finite distance, got %g", delS)
	}
	return nil
}

// intermediate does the work for both entry points. Coordinates are in
// degrees. exclusive rejects an npts and delS pair that disagree on the
// point count.
func (g *Geod) intermediate(lon1, lat1, lon2, lat2 float64, npts int, delS float64, opts Options, exclusive bool) (*Result, error) {
	az12, az21, dist := g.p.Inverse(lon1, lat1, lon2, lat2)

	sp, err := resolveSpacing(dist, npts, delS, opts, exclusive)
	if err != nil {
		return nil, err
	}
	ep := opts.Endpoints
	interior := ep.Interior(sp.npts)
	if interior < 0 {
		return nil, newError(InvalidRequest,
			"%d points cannot hold the included endpoints (initial_idx=%d, terminus_idx=%d)",
			sp.npts, ep.InitialIdx, ep.TerminusIdx)
	}
	if sp.delS == 0 && sp.npts == 0 {
		return nil, newError(NumericDegeneracy, "no points to measure del_s on")
	}

	out, err := allocate(sp.npts, opts)
	if err != nil {
		return nil, err
	}
	g.build(lon1, lat1, lon2, lat2, ep, interior, out.lons, out.lats, out.azis)
	if out.azis != nil {
		if ep.IncludeInitial() {
			out.azis[0] = az12
		}
		if ep.IncludeTerminus() {
			out.azis[sp.npts-1] = forwardAzimuth(az21)
		}
	}

	if sp.delS == 0 {
		if sp.delS, err = g.fallbackSpacing(lon1, lat1, lon2, lat2, ep, out.lons, out.lats); err != nil {
			return nil, err
		}
	}

	u := unitsOf(opts)
	u.outAll(out.lons)
	u.outAll(out.lats)
	u.outAll(out.azis)

	return &Result{
		Npts: sp.npts,
		DelS: sp.delS,
		Dist: dist,
		Lons: out.lons,
		Lats: out.lats,
		Azis: out.azis,
	}, nil
}

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi
)

// units converts angles between the caller's units and degrees.
type units struct {
	radians bool
}

func unitsOf(opts Options) units {
	return units{radians: opts.Radians}
}

func (u units) in(v float64) float64 {
	if u.radians {
		return v * degrees
	}
	return v
}

func (u units) outAll(vs []float64) {
	if !u.radians {
		return
	}
	for i := range vs {
		vs[i] *= radians
	}
}
