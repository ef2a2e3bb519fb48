package pathloss

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talos-gis/geodprofile"
	"github.com/talos-gis/geodprofile/profile"
)

const (
	bostonLon   = -71. - (7. / 60.)
	bostonLat   = 42. + (15. / 60.)
	portlandLon = -123. - (41. / 60.)
	portlandLat = 45. + (31. / 60.)
)

// flatSampler returns the same elevation everywhere except at the first
// point, which is higher.
type flatSampler struct{}

func (flatSampler) Sample(_ context.Context, _ profile.Layer, _, _, dst []float64) error {
	for i := range dst {
		dst[i] = 100
	}
	if len(dst) > 0 {
		dst[0] = 250
	}
	return nil
}

func (flatSampler) Resolution() (float64, bool) { return 1. / 120, true }

// echoModel reports its input in the result fields.
func echoModel(_ context.Context, in Input) (Result, error) {
	return Result{
		FresnelClearance: in.TxHeight,
		TotalLoss:        in.RxHeight,
		FreeSpaceLoss:    in.Distances[len(in.Distances)-1],
		Version:          "echo-1",
		PropagationMode:  in.Polarization.String(),
	}, nil
}

func calculator() *Calculator {
	log, _ := test.NewNullLogger()
	return &Calculator{
		Model: ModelFunc(echoModel),
		Extractor: &profile.Extractor{
			Geod:    geodprofile.New(geodprofile.WGS84),
			Sampler: flatSampler{},
			Log:     log,
		},
		Log: log,
	}
}

func link(npts int) Link {
	return Link{
		Profile: profile.Request{
			Lon1: bostonLon, Lat1: bostonLat,
			Lon2: portlandLon, Lat2: portlandLat,
			Npts: npts,
		},
		TxHeight: 5,
		RxHeight: 5,
	}
}

func TestCalc(t *testing.T) {
	c := calculator()
	res, err := c.Calc(context.Background(), link(5), Params{Frequency: 3000, Polarization: Vertical})
	require.NoError(t, err)
	assert.Equal(t, 255.0, res.FresnelClearance)
	assert.Equal(t, 105.0, res.TotalLoss)
	assert.InDelta(t, 4164074.239, res.FreeSpaceLoss, 1e-3)
	assert.Equal(t, "V", res.PropagationMode)

	l := link(5)
	l.TxMSL, l.RxMSL = true, true
	res, err = c.Calc(context.Background(), l, Params{})
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.FresnelClearance)
	assert.Equal(t, 5.0, res.TotalLoss)
}

func TestCalcErrors(t *testing.T) {
	c := calculator()

	l := link(5)
	l.Profile.GeodOnly = true
	_, err := c.Calc(context.Background(), l, Params{})
	assert.Error(t, err)

	_, err = c.Calc(context.Background(), link(1), Params{})
	assert.ErrorIs(t, err, geodprofile.ErrInvalidRequest)

	l = link(0)
	l.Profile.Endpoints = geodprofile.Endpoints(false, false)
	l.Profile.DelS = 1e9
	_, err = c.Calc(context.Background(), l, Params{})
	assert.Error(t, err)

	boom := errors.New("boom")
	c.Model = ModelFunc(func(context.Context, Input) (Result, error) { return Result{}, boom })
	_, err = c.Calc(context.Background(), link(5), Params{})
	assert.ErrorIs(t, err, boom)
}

func TestCalcMulti(t *testing.T) {
	c := calculator()
	var calls int32
	c.Model = ModelFunc(func(ctx context.Context, in Input) (Result, error) {
		atomic.AddInt32(&calls, 1)
		return echoModel(ctx, in)
	})

	links := []Link{link(3), link(4), link(5)}
	links[1].TxHeight = 10
	params := []Params{{Polarization: Horizontal}, {Polarization: Vertical}}

	res, err := c.CalcMulti(context.Background(), links, params, 2)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, int32(3), calls)
	assert.Equal(t, "H", res[0].PropagationMode)
	assert.Equal(t, "V", res[1].PropagationMode)
	assert.Equal(t, "H", res[2].PropagationMode)
	assert.Equal(t, 260.0, res[1].FresnelClearance)

	_, err = c.CalcMulti(context.Background(), links, nil, 0)
	assert.Error(t, err)

	links[2] = link(1)
	_, err = c.CalcMulti(context.Background(), links, params, 0)
	assert.ErrorContains(t, err, "link 2")
}

func TestResultApproxEqual(t *testing.T) {
	want := Result{
		FresnelClearance: 0, TotalLoss: 655.2137451, FreeSpaceLoss: 174.63401794433594,
		Version: "TIREM-5.", PropagationMode: "TRO",
	}
	got := want
	got.TotalLoss += 1e-8
	assert.True(t, want.ApproxEqual(got, 7))
	got.TotalLoss += 1e-3
	assert.False(t, want.ApproxEqual(got, 7))
	assert.True(t, want.ApproxEqual(got, 2))
	got = want
	got.PropagationMode = "LOS"
	assert.False(t, want.ApproxEqual(got, 7))
}
