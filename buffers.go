package geodprofile

type outputs struct {
	lons, lats, azis []float64
}

// allocate picks the storage for npts points: the caller's buffers where
// given, fresh slices otherwise. All buffers are checked before any of them
// is used so that a failing call leaves caller storage untouched.
func allocate(npts int, opts Options) (outputs, error) {
	keepAzis := opts.Azimuth == AzimuthKeep
	for _, b := range []struct {
		name string
		buf  []float64
		used bool
	}{
		{"lons", opts.OutLons, true},
		{"lats", opts.OutLats, true},
		{"azis", opts.OutAzis, keepAzis},
	} {
		if b.used && b.buf != nil && len(b.buf) != npts {
			return outputs{}, newError(BufferSizeMismatch, "%s buffer holds %d values, need %d", b.name, len(b.buf), npts)
		}
	}

	out := outputs{
		lons: bufferOrNew(opts.OutLons, npts),
		lats: bufferOrNew(opts.OutLats, npts),
	}
	if keepAzis {
		out.azis = bufferOrNew(opts.OutAzis, npts)
	}
	return out, nil
}

func bufferOrNew(buf []float64, n int) []float64 {
	if buf != nil {
		return buf
	}
	return make([]float64, n)
}
