package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentileEndpoints(t *testing.T) {
	samples := []float64{5, -3, 12, 0.5, -8, 7}

	min, err := Percentile(samples, 0)
	require.NoError(t, err)
	assert.Equal(t, -8.0, min)

	max, err := Percentile(samples, 100)
	require.NoError(t, err)
	assert.Equal(t, 12.0, max)
}

func TestPercentileInterpolation(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	p10, err := Percentile(samples, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.9, p10, 1e-9)

	p50, err := Percentile(samples, 50)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, p50, 1e-9)
}

func TestPercentileDoesNotMutateInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	_, err := Percentile(samples, 50)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, samples)
}

func TestPercentileEmpty(t *testing.T) {
	_, err := Percentile(nil, 50)
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestDescribe(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	sum, err := Describe(samples)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, sum.Mean, 1e-9)
	assert.InDelta(t, 5.5, sum.Median, 1e-9)
	assert.InDelta(t, 1.9, sum.WorstCase10, 1e-9)
	assert.Equal(t, 1.0, sum.ProbabilityPositive)
}

func TestDescribeConstantSample(t *testing.T) {
	samples := []float64{-100, -100, -100, -100, -100}

	sum, err := Describe(samples)
	require.NoError(t, err)
	assert.Equal(t, -100.0, sum.Mean)
	assert.Equal(t, -100.0, sum.Median)
	assert.Equal(t, -100.0, sum.WorstCase10)
	assert.Equal(t, 0.0, sum.ProbabilityPositive)

	positive := []float64{42, 42, 42}
	sum, err = Describe(positive)
	require.NoError(t, err)
	assert.Equal(t, 42.0, sum.Mean)
	assert.Equal(t, 42.0, sum.Median)
	assert.Equal(t, 42.0, sum.WorstCase10)
	assert.Equal(t, 1.0, sum.ProbabilityPositive)
}

func TestDescribeEmpty(t *testing.T) {
	_, err := Describe([]float64{})
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestDescribeSingleSample(t *testing.T) {
	sum, err := Describe([]float64{-7.5})
	require.NoError(t, err)
	assert.Equal(t, -7.5, sum.Mean)
	assert.Equal(t, -7.5, sum.Median)
	assert.Equal(t, -7.5, sum.WorstCase10)
	assert.Equal(t, 0.0, sum.ProbabilityPositive)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{5}))
	assert.InDelta(t, 1.0, StdDev([]float64{1, 2, 3}), 1e-9)
}

func TestRange(t *testing.T) {
	assert.Equal(t, 0.0, Range(nil))
	assert.Equal(t, 0.0, Range([]float64{-4, -4}))
	assert.Equal(t, 15.0, Range([]float64{-10, 5, -3}))
}
