package summary

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates one batch of draws.
type Summary struct {
	Draws    int
	Mean     float64
	Variance float64
	Min      float64
	Max      float64
}

func FromSamples(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	return Summary{
		Draws:    len(samples),
		Mean:     stat.Mean(samples, nil),
		Variance: stat.Variance(samples, nil),
		Min:      floats.Min(samples),
		Max:      floats.Max(samples),
	}
}

// RunningMean returns the cumulative mean after every draw, for convergence
// plots.
func RunningMean(samples []float64) []float64 {
	out := make([]float64, len(samples))
	var sum float64
	for i, s := range samples {
		sum += s
		out[i] = sum / float64(i+1)
	}
	return out
}
