package geodprofile

// EndpointPolicy tells whether the two true endpoints are emitted as
// samples. An index of 0 includes the endpoint, 1 leaves it implicit.
//
// The zero value includes both endpoints.
type EndpointPolicy struct {
	InitialIdx  int
	TerminusIdx int
}

// Endpoints builds an EndpointPolicy from inclusion flags.
func Endpoints(includeInitial, includeTerminus bool) EndpointPolicy {
	var p EndpointPolicy
	if !includeInitial {
		p.InitialIdx = 1
	}
	if !includeTerminus {
		p.TerminusIdx = 1
	}
	return p
}

// IncludeInitial reports whether the initial point is emitted.
func (p EndpointPolicy) IncludeInitial() bool { return p.InitialIdx == 0 }

// IncludeTerminus reports whether the terminal point is emitted.
func (p EndpointPolicy) IncludeTerminus() bool { return p.TerminusIdx == 0 }

// Sum is InitialIdx + TerminusIdx.
func (p EndpointPolicy) Sum() int { return p.InitialIdx + p.TerminusIdx }

// Intervals is the number of equal intervals the geodesic is divided into
// when npts points are emitted.
func (p EndpointPolicy) Intervals(npts int) int { return npts + p.Sum() - 1 }

// Interior is the number of points strictly between the endpoints needed
// to emit npts points. It is negative when npts cannot even hold the
// included endpoints.
func (p EndpointPolicy) Interior(npts int) int {
	n := npts
	if p.IncludeInitial() {
		n--
	}
	if p.IncludeTerminus() {
		n--
	}
	return n
}

// Validate checks that both indices are 0 or 1.
func (p EndpointPolicy) Validate() error {
	if p.InitialIdx != 0 && p.InitialIdx != 1 {
		return newError(InvalidRequest, "initial index must be 0 or 1, got %d", p.InitialIdx)
	}
	if p.TerminusIdx != 0 && p.TerminusIdx != 1 {
		return newError(InvalidRequest, "terminus index must be 0 or 1, got %d", p.TerminusIdx)
	}
	return nil
}
