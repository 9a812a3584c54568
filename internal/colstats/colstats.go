// Package colstats computes descriptive statistics over the numeric
// columns of delimited data.
package colstats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics for one numeric column.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P25    float64
	Median float64
	P75    float64
}

// Describe computes a Summary of values. An empty input yields the
// zero Summary; a single value has an undefined (NaN) sample StdDev.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		N:      len(values),
		Mean:   stat.Mean(values, nil),
		StdDev: stat.StdDev(values, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
}
