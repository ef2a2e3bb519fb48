package geodprofile

// build writes the emitted points into lons and lats (and azis when not
// nil): the initial point when included, interior equally spaced points,
// then the terminal point when included. len(lons) must be
// interior+included endpoints. Coordinates are in degrees.
func (g *Geod) build(lon1, lat1, lon2, lat2 float64, ep EndpointPolicy, interior int, lons, lats, azis []float64) {
	off := 0
	if ep.IncludeInitial() {
		lons[0], lats[0] = lon1, lat1
		off = 1
	}
	var iazis []float64
	if azis != nil {
		iazis = azis[off : off+interior]
	}
	g.p.Npts(lon1, lat1, lon2, lat2, lons[off:off+interior], lats[off:off+interior], iazis)
	if ep.IncludeTerminus() {
		last := off + interior
		lons[last], lats[last] = lon2, lat2
	}
}
