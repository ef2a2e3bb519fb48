// Package pathloss runs radio propagation loss models over terrain profiles
// extracted along geodesics.
package pathloss

import (
	"context"
	"fmt"
	"math"
)

// Polarization of the transmitted wave.
type Polarization int

const (
	// Horizontal polarization.
	Horizontal Polarization = iota
	// Vertical polarization.
	Vertical
)

func (p Polarization) String() string {
	switch p {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	}
	return fmt.Sprintf("Polarization(%d)", int(p))
}

// Params are the radio and ground parameters handed to a Model.
type Params struct {
	Frequency    float64 // MHz
	Polarization Polarization
	Refractivity float64 // N-units
	Conductivity float64 // S/m
	Permittivity float64 // relative
	Humidity     float64 // g/m³
}

// Input is everything a Model needs for one link.
type Input struct {
	// TxHeight and RxHeight are antenna heights above mean sea level.
	TxHeight float64
	RxHeight float64
	// Distances and Elevations describe the terrain profile from the
	// transmitter to the receiver.
	Distances  []float64
	Elevations []float64
	Params
}

// Result is the outcome of a Model.
type Result struct {
	// FresnelClearance is the ratio of the minimum clearance of the ray
	// path to the first Fresnel zone radius.
	FresnelClearance float64
	// TotalLoss is the basic transmission loss (dB).
	TotalLoss float64
	// FreeSpaceLoss is the free space loss (dB).
	FreeSpaceLoss float64
	// Version of the model.
	Version string
	// PropagationMode reported by the model.
	PropagationMode string
}

// ApproxEqual reports whether the numeric fields of r and o agree to the
// given number of decimals and the descriptive fields are equal.
func (r Result) ApproxEqual(o Result, decimal int) bool {
	tol := 1.5 * math.Pow10(-decimal)
	return math.Abs(r.FresnelClearance-o.FresnelClearance) < tol &&
		math.Abs(r.TotalLoss-o.TotalLoss) < tol &&
		math.Abs(r.FreeSpaceLoss-o.FreeSpaceLoss) < tol &&
		r.Version == o.Version &&
		r.PropagationMode == o.PropagationMode
}

// Model computes the loss over a terrain profile.
type Model interface {
	Loss(ctx context.Context, in Input) (Result, error)
}

// ModelFunc adapts a function to a Model.
type ModelFunc func(ctx context.Context, in Input) (Result, error)

// Loss calls f.
func (f ModelFunc) Loss(ctx context.Context, in Input) (Result, error) {
	return f(ctx, in)
}
