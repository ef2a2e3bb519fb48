package geodprofile

import (
	"fmt"
	"math"
	"strings"
)

// RoundingMode selects how a point count derived from a spacing is turned
// into an integer.
type RoundingMode uint8

const (
	// Round rounds to the nearest integer, ties to even.
	Round RoundingMode = iota
	// Ceil rounds up.
	Ceil
	// Trunc truncates toward zero.
	Trunc
)

func (m RoundingMode) apply(x float64) float64 {
	switch m {
	case Ceil:
		return math.Ceil(x)
	case Trunc:
		return math.Trunc(x)
	default:
		return math.RoundToEven(x)
	}
}

func (m RoundingMode) String() string {
	switch m {
	case Round:
		return "round"
	case Ceil:
		return "ceil"
	case Trunc:
		return "trunc"
	}
	return fmt.Sprintf("RoundingMode(%d)", m)
}

// ParseRoundingMode parses "round", "ceil" or "trunc".
func ParseRoundingMode(s string) (RoundingMode, error) {
	for _, m := range []RoundingMode{Round, Ceil, Trunc} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid rounding mode %q", s)
}

// RecalcMode selects whether the spacing is recomputed from the resolved
// point count.
type RecalcMode uint8

const (
	// Recalc spreads the total distance evenly over the resolved points.
	Recalc RecalcMode = iota
	// NoRecalc keeps the requested spacing.
	NoRecalc
)

func (m RecalcMode) String() string {
	switch m {
	case Recalc:
		return "recalc"
	case NoRecalc:
		return "norecalc"
	}
	return fmt.Sprintf("RecalcMode(%d)", m)
}

// ParseRecalcMode parses "recalc" or "norecalc".
func ParseRecalcMode(s string) (RecalcMode, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "recalc":
		return Recalc, nil
	case "norecalc":
		return NoRecalc, nil
	}
	return 0, fmt.Errorf("invalid recalc mode %q", s)
}

// AzimuthMode selects whether per-point azimuths are returned.
type AzimuthMode uint8

const (
	// AzimuthDiscard returns no azimuths.
	AzimuthDiscard AzimuthMode = iota
	// AzimuthKeep returns the forward azimuth at each point.
	AzimuthKeep
)

func (m AzimuthMode) String() string {
	switch m {
	case AzimuthDiscard:
		return "discard"
	case AzimuthKeep:
		return "keep"
	}
	return fmt.Sprintf("AzimuthMode(%d)", m)
}

// ParseAzimuthMode parses "discard" or "keep".
func ParseAzimuthMode(s string) (AzimuthMode, error) {
	for _, m := range []AzimuthMode{AzimuthDiscard, AzimuthKeep} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid azimuth mode %q", s)
}
