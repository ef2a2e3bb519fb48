package pathloss

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/talos-gis/geodprofile/profile"
)

// Link is a transmitter/receiver pair.
type Link struct {
	// Profile locates the transmitter at (Lon1, Lat1) and the receiver at
	// (Lon2, Lat2) and sets how the terrain between them is sampled.
	Profile profile.Request

	// TxHeight and RxHeight are antenna heights. They are above ground
	// unless the matching MSL flag is set, in which case they are above
	// mean sea level.
	TxHeight float64
	RxHeight float64
	TxMSL    bool
	RxMSL    bool
}

// Calculator extracts profiles and runs a Model over them.
type Calculator struct {
	Model     Model
	Extractor *profile.Extractor
	Log       logrus.FieldLogger
}

func (c *Calculator) log() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Calc computes the loss over link.
func (c *Calculator) Calc(ctx context.Context, link Link, params Params) (Result, error) {
	if link.Profile.GeodOnly {
		return Result{}, errors.New("pathloss: link profile must sample elevations")
	}
	p, err := c.Extractor.Extract(ctx, link.Profile)
	if err != nil {
		return Result{}, fmt.Errorf("pathloss: %w", err)
	}
	n := p.Geod.Npts
	if n == 0 {
		return Result{}, errors.New("pathloss: empty profile")
	}

	in := Input{
		TxHeight:   link.TxHeight,
		RxHeight:   link.RxHeight,
		Distances:  p.Distances,
		Elevations: p.Elevations,
		Params:     params,
	}
	if !link.TxMSL {
		in.TxHeight += p.Elevations[0]
	}
	if !link.RxMSL {
		in.RxHeight += p.Elevations[n-1]
	}

	res, err := c.Model.Loss(ctx, in)
	if err != nil {
		return Result{}, fmt.Errorf("pathloss: model: %w", err)
	}
	c.log().WithFields(logrus.Fields{
		"npts":       n,
		"del_s":      p.Geod.DelS,
		"tx_height":  in.TxHeight,
		"rx_height":  in.RxHeight,
		"frequency":  params.Frequency,
		"total_loss": res.TotalLoss,
		"mode":       res.PropagationMode,
	}).Debug("path loss computed")
	return res, nil
}

// CalcMulti computes the loss over every link. Link i uses
// params[i%len(params)]. Up to concurrency links are computed at once (no
// limit when concurrency <= 0); links must not share output buffers.
func (c *Calculator) CalcMulti(ctx context.Context, links []Link, params []Params, concurrency int) ([]Result, error) {
	if len(params) == 0 {
		return nil, errors.New("pathloss: no params")
	}
	results := make([]Result, len(links))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i := range links {
		i := i
		g.Go(func() error {
			res, err := c.Calc(ctx, links[i], params[i%len(params)])
			if err != nil {
				return fmt.Errorf("link %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
