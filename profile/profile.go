// Package profile extracts terrain profiles along geodesics: the points are
// sampled with geodprofile and the terrain values at those points come from
// an external raster Sampler.
package profile

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/talos-gis/geodprofile"
)

// metersPerDegree approximates the length of one degree when converting a
// geographic pixel size to meters.
const metersPerDegree = 111_111

// Sampler reads raster values, typically elevations, at geographic
// coordinates.
type Sampler interface {
	// Sample writes the value of layer at (lons[i], lats[i]) into dst[i].
	// Coordinates are longitude/latitude degrees.
	Sample(ctx context.Context, layer Layer, lons, lats, dst []float64) error
	// Resolution returns the pixel size of the raster and whether it is in
	// degrees (geographic) rather than meters.
	Resolution() (size float64, geographic bool)
}

// Layer selects the raster data a Sampler reads.
type Layer struct {
	// Band is the 1-based raster band.
	Band int
	// Overview is the overview (reduced resolution) level, 0 for the full
	// resolution raster.
	Overview int
}

// ResolutionMeters returns the pixel size of s in meters.
func ResolutionMeters(s Sampler) float64 {
	size, geographic := s.Resolution()
	if geographic {
		size *= metersPerDegree
	}
	return size
}

// Request describes one profile. When both Npts and DelS are zero the
// spacing defaults to the sampler resolution.
type Request struct {
	Lon1, Lat1 float64
	Lon2, Lat2 float64
	Npts       int
	DelS       float64
	geodprofile.Options

	// GeodOnly skips raster sampling.
	GeodOnly bool
	// Bands lists the raster bands to sample, band 1 when empty.
	Bands []int
	// Overview is passed to the Sampler with every band.
	Overview int
	// OutElevations is an optional buffer for the values of the first band,
	// reused the same way as the coordinate buffers in Options.
	OutElevations []float64
}

// Profile is a sampled geodesic together with the raster values under it.
type Profile struct {
	Geod *geodprofile.Result
	// Distances from the first point, Geod.DelS apart.
	Distances []float64
	// Elevations holds one value per point from the first band, nil for
	// GeodOnly requests.
	Elevations []float64
	// Bands holds the values of every requested band in request order.
	// Bands[0] is Elevations.
	Bands [][]float64
}

// Path returns the profile points as a line string.
func (p *Profile) Path() geom.LineString {
	return p.Geod.Path()
}

// Extractor builds profiles.
type Extractor struct {
	// Geod samples the points. nil means WGS84.
	Geod    *geodprofile.Geod
	Sampler Sampler
	Log     logrus.FieldLogger
}

var wgs84 = geodprofile.New(geodprofile.WGS84)

func (e *Extractor) geod() *geodprofile.Geod {
	if e.Geod == nil {
		return wgs84
	}
	return e.Geod
}

func (e *Extractor) log() logrus.FieldLogger {
	if e.Log == nil {
		return logrus.StandardLogger()
	}
	return e.Log
}

// Extract samples the geodesic described by req and reads the raster values
// at the sampled points.
func (e *Extractor) Extract(ctx context.Context, req Request) (*Profile, error) {
	if req.Npts == 0 && req.DelS == 0 {
		if e.Sampler == nil {
			return nil, errors.New("profile: no npts, del_s or sampler to derive a spacing from")
		}
		req.DelS = ResolutionMeters(e.Sampler)
	}
	res, err := e.geod().InvIntermediate(geodprofile.InvRequest{
		Lon1: req.Lon1, Lat1: req.Lat1,
		Lon2: req.Lon2, Lat2: req.Lat2,
		Npts: req.Npts, DelS: req.DelS,
		Options: req.Options,
	})
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	p := &Profile{
		Geod:      res,
		Distances: res.Distances(),
	}

	log := e.log().WithFields(logrus.Fields{
		"npts":  res.Npts,
		"del_s": res.DelS,
		"dist":  res.Dist,
	})
	if req.GeodOnly {
		log.Debug("profile geodesic sampled")
		return p, nil
	}
	if e.Sampler == nil {
		return nil, errors.New("profile: no sampler")
	}

	bands := req.Bands
	if len(bands) == 0 {
		bands = []int{1}
	}
	elev := req.OutElevations
	if elev == nil {
		elev = make([]float64, res.Npts)
	} else if len(elev) != res.Npts {
		return nil, fmt.Errorf("profile: elevations: %w: buffer holds %d values, need %d",
			geodprofile.ErrBufferSizeMismatch, len(elev), res.Npts)
	}
	lons, lats := res.Lons, res.Lats
	if req.Radians {
		lons, lats = toDegrees(lons), toDegrees(lats)
	}
	p.Bands = make([][]float64, len(bands))
	for i, band := range bands {
		dst := elev
		if i > 0 {
			dst = make([]float64, res.Npts)
		}
		layer := Layer{Band: band, Overview: req.Overview}
		if err := e.Sampler.Sample(ctx, layer, lons, lats, dst); err != nil {
			return nil, fmt.Errorf("profile: sampling band %d at %d points: %w", band, res.Npts, err)
		}
		p.Bands[i] = dst
	}
	p.Elevations = elev
	log = log.WithField("bands", bands)

	if res.Npts > 0 {
		b := p.Path().Bounds()
		log = log.WithFields(logrus.Fields{
			"min": fmt.Sprintf("%g,%g", b.Min.X, b.Min.Y),
			"max": fmt.Sprintf("%g,%g", b.Max.X, b.Max.Y),
		})
	}
	log.Debug("profile extracted")
	return p, nil
}

func toDegrees(v []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(v)), 180/math.Pi, v)
}
