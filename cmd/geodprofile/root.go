package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/talos-gis/geodprofile"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	cfg *viper.Viper
	log *logrus.Logger
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{
		cfg: viper.New(),
		log: logrus.New(),
		out: out,
	}
	a.cfg.SetEnvPrefix("GEODPROFILE")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	root := &cobra.Command{
		Use:   "geodprofile",
		Short: "sample equally spaced points along a geodesic",
		Long: `
geodprofile computes equally spaced points on the geodesic between two points
of an ellipsoid, either by point count (--npts) or by spacing (--del-s).
Every flag can also be set in the configuration file or through a
GEODPROFILE_<FLAG> environment variable.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "configuration file (yaml, toml or json)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("ellps", "WGS84", "ellipsoid name ("+strings.Join(geodprofile.EllipsoidNames(), ", ")+")")
	pf.Bool("sphere", false, "use great-circle formulas on a sphere with the ellipsoid's equatorial radius")
	pf.String("format", "csv", "output format (csv, json)")

	root.AddCommand(newInvCmd(a), newFwdCmd(a))
	return root
}

// setup binds the flags of the running command, reads the configuration
// file and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.cfg.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.cfg.GetString("config"); path != "" {
		a.cfg.SetConfigFile(path)
		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	lvl, err := logrus.ParseLevel(a.cfg.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log.SetLevel(lvl)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.WithField("config", a.cfg.ConfigFileUsed()).Debug("configuration loaded")
	return nil
}

// geod builds the sampler selected by --ellps and --sphere.
func (a *app) geod() (*geodprofile.Geod, error) {
	e, err := geodprofile.NamedEllipsoid(a.cfg.GetString("ellps"))
	if err != nil {
		return nil, err
	}
	if a.cfg.GetBool("sphere") {
		return geodprofile.New(geodprofile.NewSphere(e.Radius())), nil
	}
	return geodprofile.New(e), nil
}

// addSamplingFlags adds the flags shared by inv and fwd.
func addSamplingFlags(fs *pflag.FlagSet) {
	fs.Int("npts", 0, "number of points to emit")
	fs.Float64("del-s", 0, "spacing between points (meters)")
	fs.Int("initial-idx", 0, "0 emits the initial point, 1 leaves it out")
	fs.Int("terminus-idx", 0, "0 emits the terminal point, 1 leaves it out")
	fs.String("rounding", "round", "rounding of a point count derived from --del-s (round, ceil, trunc)")
	fs.String("recalc", "recalc", "recompute the spacing from the point count (recalc, norecalc)")
	fs.String("azis", "discard", "per point azimuths (discard, keep)")
	fs.Bool("radians", false, "angles are in radians")
}

// options reads the sampling flags.
func (a *app) options() (geodprofile.Options, error) {
	var opts geodprofile.Options
	var err error
	if opts.Rounding, err = geodprofile.ParseRoundingMode(a.cfg.GetString("rounding")); err != nil {
		return opts, err
	}
	if opts.Recalc, err = geodprofile.ParseRecalcMode(a.cfg.GetString("recalc")); err != nil {
		return opts, err
	}
	if opts.Azimuth, err = geodprofile.ParseAzimuthMode(a.cfg.GetString("azis")); err != nil {
		return opts, err
	}
	opts.Endpoints = geodprofile.EndpointPolicy{
		InitialIdx:  a.cfg.GetInt("initial-idx"),
		TerminusIdx: a.cfg.GetInt("terminus-idx"),
	}
	opts.Radians = a.cfg.GetBool("radians")
	return opts, nil
}
