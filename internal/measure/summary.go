package measure

import (
	"github.com/montanaflynn/stats"
)

// Summary aggregates a generated sequence for the post-run report.
type Summary struct {
	Records int

	MeanFlow   float64
	StdDevFlow float64
	MinFlow    float64
	MaxFlow    float64

	MeanDensity     float64
	MeanTemperature float64
	MaxTemperature  float64

	FinalMass float64
}

// Summarize computes descriptive statistics over a reading sequence. An empty
// sequence yields a zero Summary.
func Summarize(readings []Reading) Summary {
	if len(readings) == 0 {
		return Summary{}
	}

	flows := make(stats.Float64Data, len(readings))
	densities := make(stats.Float64Data, len(readings))
	temps := make(stats.Float64Data, len(readings))
	for i, r := range readings {
		flows[i] = r.Caudal
		densities[i] = r.Densidad
		temps[i] = r.Temperatura
	}

	s := Summary{
		Records:   len(readings),
		FinalMass: readings[len(readings)-1].MasaAcumulada,
	}
	s.MeanFlow, _ = stats.Mean(flows)
	s.StdDevFlow, _ = stats.StandardDeviation(flows)
	s.MinFlow, _ = stats.Min(flows)
	s.MaxFlow, _ = stats.Max(flows)
	s.MeanDensity, _ = stats.Mean(densities)
	s.MeanTemperature, _ = stats.Mean(temps)
	s.MaxTemperature, _ = stats.Max(temps)
	return s
}
