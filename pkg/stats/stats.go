// Package stats provides sample statistics for simulated outcome
// distributions: interpolated percentiles, summary statistics, and the
// dispersion helpers the hedge-ratio optimizer scores candidates with.
package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrEmptySample is returned when statistics are requested over an empty
// collection, for which mean and percentiles are undefined.
var ErrEmptySample = errors.New("stats: empty sample")

// Summary holds the distribution metrics reported for a set of simulated
// outcome totals. Outcomes are signed net amounts, typically negative
// (costs), so WorstCase10 is the loss exceeded by 90% of outcomes.
type Summary struct {
	Mean                float64 `json:"mean"`
	Median              float64 `json:"median"`
	WorstCase10         float64 `json:"worst_case_10"`
	ProbabilityPositive float64 `json:"probability_positive"`
}

// Percentile returns the value at percentile p (0..100) of samples, using
// linear interpolation between order statistics. p=0 yields the minimum and
// p=100 the maximum. The input slice is not mutated.
func Percentile(samples []float64, p float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptySample
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	rank := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower], nil
	}

	frac := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac, nil
}

// Describe computes the summary statistics for a non-empty sample.
func Describe(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrEmptySample
	}

	median, err := Percentile(samples, 50)
	if err != nil {
		return Summary{}, err
	}
	worst, err := Percentile(samples, 10)
	if err != nil {
		return Summary{}, err
	}

	positive := 0
	for _, v := range samples {
		if v > 0 {
			positive++
		}
	}

	return Summary{
		Mean:                stat.Mean(samples, nil),
		Median:              median,
		WorstCase10:         worst,
		ProbabilityPositive: float64(positive) / float64(len(samples)),
	}, nil
}

// StdDev returns the sample standard deviation, or 0 when fewer than two
// samples are available (gonum yields NaN there, which would poison the
// optimizer's reduction ratios).
func StdDev(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	return stat.StdDev(samples, nil)
}

// Range returns max minus min, the drawdown span of a sample. Zero for
// empty input.
func Range(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	min, max := samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}
