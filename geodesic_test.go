package geodprofile

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bostonLon   = -71. - (7. / 60.)
	bostonLat   = 42. + (15. / 60.)
	portlandLon = -123. - (41. / 60.)
	portlandLat = 45. + (31. / 60.)
)

func eqish(x, y float64, prec int) bool {
	return math.Abs(x-y) < float64(1.0)/math.Pow10(prec)
}

func clrk66(t *testing.T) *Ellipsoid {
	t.Helper()
	e, err := NamedEllipsoid("clrk66")
	require.NoError(t, err)
	return e
}

func TestInverseClarke(t *testing.T) {
	az12, az21, dist := clrk66(t).Inverse(bostonLon, bostonLat, portlandLon, portlandLat)
	if !eqish(az12, -66.5305947876623, 3) || !eqish(az21, 75.65363415556968, 3) || !eqish(dist, 4164192.708, 3) {
		t.Fatalf("expected '%f, %f, %f', got '%f, %f, %f'",
			-66.5305947876623, 75.65363415556968, 4164192.708, az12, az21, dist)
	}
}

func TestDirectClarke(t *testing.T) {
	e := clrk66(t)
	az12, _, dist := e.Inverse(bostonLon, bostonLat, portlandLon, portlandLat)
	lon2, lat2, az21 := e.Direct(bostonLon, bostonLat, az12, dist)
	if !eqish(lon2, portlandLon, 3) || !eqish(lat2, portlandLat, 3) || !eqish(az21, 75.65363415556968, 3) {
		t.Logf("direct   'lon1: %f, lat1: %f, az12: %f, dist: %f'", bostonLon, bostonLat, az12, dist)
		t.Logf("got      'lon2: %f, lat2: %f, az21: %f'", lon2, lat2, az21)
		t.FailNow()
	}
}

func TestWGS84Distance(t *testing.T) {
	az12, az21, dist := WGS84.Inverse(bostonLon, bostonLat, portlandLon, portlandLat)
	assert.InDelta(t, 4164074.239, dist, 1e-3)
	assert.InDelta(t, -66.530, az12, 1e-3)
	assert.InDelta(t, 75.654, az21, 1e-3)
}

func TestNptsLegs(t *testing.T) {
	// az12, az21 and length of each leg between 6 points spanning
	// Boston-Portland on clrk66.
	legs := [][3]float64{
		{-66.53059478766238, 106.79071710136431, 832838.5416198927},
		{-73.20928289863558, 99.32289055927389, 832838.5416198935},
		{-80.67710944072617, 91.36325611787134, 832838.5416198947},
		{-88.63674388212858, 83.32809401477382, 832838.5416198922},
		{-96.67190598522616, 75.65363415556973, 832838.5416198926},
	}
	e := clrk66(t)
	lons := make([]float64, 4)
	lats := make([]float64, 4)
	e.Npts(bostonLon, bostonLat, portlandLon, portlandLat, lons, lats, nil)

	prevLon, prevLat := bostonLon, bostonLat
	lons = append(lons, portlandLon)
	lats = append(lats, portlandLat)
	for i := range lons {
		az12, az21, dist := e.Inverse(prevLon, prevLat, lons[i], lats[i])
		assert.InDelta(t, legs[i][0], az12, 1e-6, "leg %d az12", i)
		assert.InDelta(t, legs[i][1], az21, 1e-6, "leg %d az21", i)
		assert.InDelta(t, legs[i][2], dist, 1e-6, "leg %d dist", i)
		prevLon, prevLat = lons[i], lats[i]
	}
}

func TestLength(t *testing.T) {
	lons := make([]float64, 5)
	lats := make([]float64, 5)
	WGS84.Npts(bostonLon, bostonLat, portlandLon, portlandLat, lons[1:4], lats[1:4], nil)
	lons[0], lats[0] = bostonLon, bostonLat
	lons[4], lats[4] = portlandLon, portlandLat

	_, _, dist := WGS84.Inverse(bostonLon, bostonLat, portlandLon, portlandLat)
	assert.InDelta(t, dist, WGS84.Length(lons, lats), 1e-6)
	assert.Zero(t, WGS84.Length(nil, nil))
}

func TestNptsAzimuths(t *testing.T) {
	lons := make([]float64, 3)
	lats := make([]float64, 3)
	azis := make([]float64, 3)
	WGS84.Npts(bostonLon, bostonLat, portlandLon, portlandLat, lons, lats, azis)
	for i := range lons {
		az12, _, _ := WGS84.Inverse(lons[i], lats[i], portlandLon, portlandLat)
		assert.InDelta(t, az12, azis[i], 1e-7, "point %d", i)
	}
}

func TestNptsEmpty(t *testing.T) {
	WGS84.Npts(bostonLon, bostonLat, portlandLon, portlandLat, nil, nil, nil)
	Globe.Npts(bostonLon, bostonLat, portlandLon, portlandLat, nil, nil, nil)
}

func TestBackAzimuth(t *testing.T) {
	assert.Equal(t, 75.0, backAzimuth(-105))
	assert.Equal(t, -105.0, forwardAzimuth(75))
	assert.Equal(t, 180.0, backAzimuth(0))
	assert.Equal(t, 0.0, forwardAzimuth(180))
}

func TestNamedEllipsoid(t *testing.T) {
	e, err := NamedEllipsoid("WGS84")
	require.NoError(t, err)
	assert.Same(t, WGS84, e)

	e, err = NamedEllipsoid("grs80")
	require.NoError(t, err)
	assert.Equal(t, 6378137.0, e.Radius())
	assert.InDelta(t, 1/298.257222101, e.Flattening(), 1e-15)

	e, err = NamedEllipsoid("sphere")
	require.NoError(t, err)
	assert.Zero(t, e.Flattening())

	_, err = NamedEllipsoid("mars")
	assert.ErrorIs(t, err, ErrUnknownEllipsoid)

	assert.Contains(t, EllipsoidNames(), "clrk66")
}

func TestSpherical(t *testing.T) {
	assert.Equal(t, 6378137.0, Globe.Radius())
	assert.Zero(t, Globe.Flattening())

	rng := rand.New(rand.NewSource(1))

	e := NewEllipsoid(Globe.Radius(), 0)
	for i := 0; i < 10_000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180

		az12, az21, dist := e.Inverse(lon1, lat1, lon2, lat2)

		var ret [3]float64
		ret[0], ret[1], ret[2] = Globe.Inverse(lon1, lat1, lon2, lat2)
		if !eqish(ret[0], az12, 4) ||
			!eqish(ret[1], az21, 4) ||
			!eqish(ret[2], dist, 4) {
			t.Fatalf("inverse failure (%f %f %f %f %f %f %f)",
				lon1, lat1, lon2, lat2, az12, az21, dist)
		}
		ret[0], ret[1], ret[2] = Globe.Direct(lon1, lat1, az12, dist)
		if !eqish(ret[0], lon2, 4) ||
			!eqish(ret[1], lat2, 4) ||
			!eqish(ret[2], az21, 4) {
			t.Fatalf("direct failure (%f %f %f %f %f %f %f)",
				lon1, lat1, lon2, lat2, az12, az21, dist)
		}
	}
}

func TestSphericalNpts(t *testing.T) {
	lons := make([]float64, 3)
	lats := make([]float64, 3)
	azis := make([]float64, 3)
	Globe.Npts(bostonLon, bostonLat, portlandLon, portlandLat, lons, lats, azis)

	_, _, dist := Globe.Inverse(bostonLon, bostonLat, portlandLon, portlandLat)
	prevLon, prevLat := bostonLon, bostonLat
	for i := range lons {
		_, _, d := Globe.Inverse(prevLon, prevLat, lons[i], lats[i])
		assert.InDelta(t, dist/4, d, 1e-3)
		az12, _, _ := Globe.Inverse(lons[i], lats[i], portlandLon, portlandLat)
		assert.InDelta(t, az12, azis[i], 1e-6)
		prevLon, prevLat = lons[i], lats[i]
	}
}
