// Package measure synthesizes loading-detail readings for exercising the
// order-management API. A Generator accumulates a true mass from a start value
// toward a final target and derives density, temperature and flow for each
// sampling tick, optionally corrupting individual fields with configurable
// probabilities to produce negative-test fixtures.
//
// The true accumulated mass is internal and monotonically non-decreasing; the
// reported mass in a Reading may diverge from it when corruption fires, except
// on the final record, which always reports the declared final mass.
package measure

import (
	"math"
	"math/rand"
)

// Reading is one synthesized measurement record. The JSON keys match the wire
// shape the loading terminal posts to the order API.
type Reading struct {
	MasaAcumulada float64 `json:"masaAcumulada"`
	Densidad      float64 `json:"densidad"`
	Temperatura   float64 `json:"temperatura"`
	Caudal        float64 `json:"caudal"`
	OrdenID       int     `json:"orden_id"`
}

// Params configures one generation run. All values are fixed for the lifetime
// of a Generator.
//
// The four probabilities are independent per-field chances in [0,1] that a
// reading's value is replaced with an out-of-range one. Values outside [0,1]
// are not validated or clamped; passing them is caller error and the resulting
// behavior is unspecified.
type Params struct {
	// Iterations is the number of readings to generate. Zero yields an
	// empty sequence.
	Iterations int

	// OrderID is stamped on every reading.
	OrderID int

	// StartMass and FinalMass bound the accumulation. FinalMass below
	// StartMass is not rejected; the remaining mass clamps to zero and
	// every increment degenerates to zero.
	StartMass float64
	FinalMass float64

	// TempThreshold is the alarm threshold a high-temperature excursion
	// must exceed.
	TempThreshold float64

	ProbBadFlow    float64
	ProbBadMass    float64
	ProbBadDensity float64
	ProbHighTemp   float64
}

// Nominal operating ranges and noise parameters for the simulated sensors.
const (
	densityMin = 0.70
	densityMax = 0.90

	tempMean   = 20.0
	tempStdDev = 1.8

	// Each iteration models a one-second sampling tick; flow is reported
	// as an hourly rate.
	secondsPerHour = 3600.0

	flowJitterMin = 0.6
	flowJitterMax = 1.4

	// Relative spread of the gaussian increment noise, and the floor that
	// keeps the distribution non-degenerate when the base increment is 0.
	incrementSpread = 0.4
	minIncrementStd = 0.001
)

// Generator produces a Reading sequence from Params and an explicit random
// source. The source is the only mutable state; reusing the same seed and
// Params reproduces the sequence bit for bit.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// NewGenerator returns a Generator drawing all randomness from rng.
func NewGenerator(p Params, rng *rand.Rand) *Generator {
	return &Generator{params: p, rng: rng}
}

// Increments synthesizes the per-tick mass increments. The increments are
// non-negative and sum exactly to max(0, FinalMass-StartMass): samples are
// drawn from a gaussian centered on the even share, negatives are redrawn
// uniformly near zero, and the whole vector is rescaled to the remaining mass
// so floating-point drift cannot break the accumulation invariant.
func (g *Generator) Increments() []float64 {
	n := g.params.Iterations
	if n <= 0 {
		return nil
	}

	remaining := math.Max(0, g.params.FinalMass-g.params.StartMass)
	base := remaining / float64(n)
	std := math.Max(minIncrementStd, base*incrementSpread)

	incs := make([]float64, n)
	sum := 0.0
	for i := range incs {
		v := g.rng.NormFloat64()*std + base
		if v < 0 {
			v = g.uniform(0, base*0.2)
		}
		incs[i] = v
		sum += v
	}

	if sum <= 0 {
		// Degenerate draw (e.g. remaining == 0): fall back to an even split.
		for i := range incs {
			incs[i] = base
		}
		return incs
	}

	factor := remaining / sum
	for i := range incs {
		incs[i] *= factor
	}
	return incs
}

// Build materializes the full reading sequence. The true mass carries across
// iterations and is never corrupted; only the reported value is. The last
// record always reports FinalMass, overriding any corruption decision.
func (g *Generator) Build() []Reading {
	incs := g.Increments()
	readings := make([]Reading, 0, len(incs))
	trueMass := g.params.StartMass

	for i, inc := range incs {
		prevTrue := trueMass
		trueMass = prevTrue + inc

		dens := g.uniform(densityMin, densityMax)
		if g.rng.Float64() < g.params.ProbBadDensity {
			// Out-of-range density, below zero or above one.
			if g.rng.Float64() < 0.5 {
				dens = -g.uniform(0.01, 0.51)
			} else {
				dens = 1.0 + g.uniform(0.01, 0.80)
			}
		}

		caudal := inc * secondsPerHour * g.uniform(flowJitterMin, flowJitterMax)
		if g.rng.Float64() < g.params.ProbBadFlow {
			// Stalled or faulty flow sensor.
			if g.rng.Float64() < 0.5 {
				caudal = 0.0
			} else {
				caudal = -g.uniform(0, 200.0)
			}
		}

		temp := g.rng.NormFloat64()*tempStdDev + tempMean
		if g.rng.Float64() < g.params.ProbHighTemp {
			temp = g.params.TempThreshold + g.uniform(0.1, 8.0)
		}

		reported := trueMass
		if g.rng.Float64() < g.params.ProbBadMass {
			if g.rng.Float64() < 0.5 {
				// Decreasing reading, below the previous true mass.
				reported = prevTrue - g.uniform(1.0, math.Max(1.0, prevTrue*0.2))
			} else {
				// Negative or zero reading.
				reported = g.uniform(-50.0, 0)
			}
		}

		// The sequence must terminate at the declared target.
		if i == len(incs)-1 {
			reported = g.params.FinalMass
		}

		readings = append(readings, Reading{
			MasaAcumulada: roundTo(reported, 3),
			Densidad:      roundTo(dens, 6),
			Temperatura:   roundTo(temp, 3),
			Caudal:        roundTo(caudal, 3),
			OrdenID:       g.params.OrderID,
		})
	}
	return readings
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// roundTo trims the serialized form to a fixed number of decimals so the
// output JSON carries no floating-point tails.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
