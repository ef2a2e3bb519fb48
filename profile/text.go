package profile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText reads a profile in the plain text layout used by path loss tools:
// the first line holds the point count, each following line a distance and
// an elevation separated by white space.
func ReadText(r io.Reader) (dist, elev []float64, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}

	s, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, errors.New("profile: missing point count")
	}
	count, err := strconv.Atoi(s)
	if err != nil || count < 0 {
		return nil, nil, fmt.Errorf("profile: line %d: invalid point count %q", line, s)
	}

	dist = make([]float64, count)
	elev = make([]float64, count)
	for i := 0; i < count; i++ {
		s, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, nil, err
			}
			return nil, nil, fmt.Errorf("profile: expected %d points, got %d", count, i)
		}
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("profile: line %d: expected distance and elevation, got %q", line, s)
		}
		if dist[i], err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, nil, fmt.Errorf("profile: line %d: %w", line, err)
		}
		if elev[i], err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, nil, fmt.Errorf("profile: line %d: %w", line, err)
		}
	}
	return dist, elev, nil
}
