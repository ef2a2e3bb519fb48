package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/talos-gis/geodprofile"
)

func newInvCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inv",
		Short: "points between two endpoints",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, err := a.geod()
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			res, err := g.InvIntermediate(geodprofile.InvRequest{
				Lon1:    a.cfg.GetFloat64("lon1"),
				Lat1:    a.cfg.GetFloat64("lat1"),
				Lon2:    a.cfg.GetFloat64("lon2"),
				Lat2:    a.cfg.GetFloat64("lat2"),
				Npts:    a.cfg.GetInt("npts"),
				DelS:    a.cfg.GetFloat64("del-s"),
				Options: opts,
			})
			if err != nil {
				return err
			}
			return a.write(g, res)
		},
	}
	fs := cmd.Flags()
	fs.Float64("lon1", 0, "longitude of the initial point")
	fs.Float64("lat1", 0, "latitude of the initial point")
	fs.Float64("lon2", 0, "longitude of the terminal point")
	fs.Float64("lat2", 0, "latitude of the terminal point")
	addSamplingFlags(fs)
	return cmd
}

func newFwdCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fwd",
		Short: "points from an initial point along an azimuth",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, err := a.geod()
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			res, err := g.FwdIntermediate(geodprofile.FwdRequest{
				Lon1:    a.cfg.GetFloat64("lon1"),
				Lat1:    a.cfg.GetFloat64("lat1"),
				Azi1:    a.cfg.GetFloat64("azi1"),
				Npts:    a.cfg.GetInt("npts"),
				DelS:    a.cfg.GetFloat64("del-s"),
				Options: opts,
			})
			if err != nil {
				return err
			}
			return a.write(g, res)
		},
	}
	fs := cmd.Flags()
	fs.Float64("lon1", 0, "longitude of the initial point")
	fs.Float64("lat1", 0, "latitude of the initial point")
	fs.Float64("azi1", 0, "azimuth at the initial point")
	addSamplingFlags(fs)
	return cmd
}

// polyline is implemented by primitives that can measure a path through the
// sampled points.
type polyline interface {
	Length(lons, lats []float64) float64
}

// write prints res in the configured format.
func (a *app) write(g *geodprofile.Geod, res *geodprofile.Result) error {
	fields := logrus.Fields{
		"npts":  res.Npts,
		"del_s": res.DelS,
		"dist":  res.Dist,
	}
	if p, ok := g.Primitives().(polyline); ok && !a.cfg.GetBool("radians") {
		fields["length"] = p.Length(res.Lons, res.Lats)
	}
	a.log.WithFields(fields).Info("geodesic sampled")

	switch format := a.cfg.GetString("format"); format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "csv":
		return writeCSV(csv.NewWriter(a.out), res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeCSV(w *csv.Writer, res *geodprofile.Result) error {
	header := []string{"i", "dist", "lon", "lat"}
	if res.Azis != nil {
		header = append(header, "azi")
	}
	if err := w.Write(header); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for i, d := range res.Distances() {
		rec := []string{strconv.Itoa(i), f(d), f(res.Lons[i]), f(res.Lats[i])}
		if res.Azis != nil {
			rec = append(rec, f(res.Azis[i]))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
