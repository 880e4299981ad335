package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 5.0, Mean([]float64{5}))
	assert.InDelta(t, 6.5, Mean([]float64{5, 8}), 1e-9)
}

func TestMeanOf_NilForEmpty(t *testing.T) {
	assert.Nil(t, MeanOf(nil))
	assert.Nil(t, MeanOf([]float64{}))

	got := MeanOf([]float64{2, 4})
	require.NotNil(t, got)
	assert.InDelta(t, 3, *got, 1e-9)
}

func TestPearson_KnownSeries(t *testing.T) {
	mood := []float64{8, 4, 9}
	productivity := []float64{70, 40, 85}

	r := Pearson(mood, productivity)
	require.NotNil(t, r)
	assert.InDelta(t, 0.9897, *r, 0.001)
}

func TestPearson_PerfectAndInverse(t *testing.T) {
	up := Pearson([]float64{1, 2, 3, 4}, []float64{10, 20, 30, 40})
	require.NotNil(t, up)
	assert.InDelta(t, 1.0, *up, 1e-9)

	down := Pearson([]float64{1, 2, 3, 4}, []float64{40, 30, 20, 10})
	require.NotNil(t, down)
	assert.InDelta(t, -1.0, *down, 1e-9)
}

func TestPearson_UndefinedStaysNil(t *testing.T) {
	// Fewer than 2 pairs.
	assert.Nil(t, Pearson([]float64{5}, []float64{50}))
	assert.Nil(t, Pearson(nil, nil))

	// Zero variance on either side.
	assert.Nil(t, Pearson([]float64{7, 7, 7}, []float64{10, 50, 90}))
	assert.Nil(t, Pearson([]float64{1, 5, 9}, []float64{60, 60, 60}))

	// Length mismatch.
	assert.Nil(t, Pearson([]float64{1, 2}, []float64{1}))
}

func TestDescribeCorrelation(t *testing.T) {
	strength, direction := DescribeCorrelation(nil)
	assert.Equal(t, StrengthInsufficient, strength)
	assert.Empty(t, direction)

	cases := []struct {
		r         float64
		strength  string
		direction string
	}{
		{0.9, StrengthStrong, "positive"},
		{-0.8, StrengthStrong, "negative"},
		{0.5, StrengthModerate, "positive"},
		{-0.25, StrengthWeak, "negative"},
		{0.05, StrengthNegligible, "positive"},
	}
	for _, tc := range cases {
		r := tc.r
		strength, direction := DescribeCorrelation(&r)
		assert.Equal(t, tc.strength, strength, "r=%v", tc.r)
		assert.Equal(t, tc.direction, direction, "r=%v", tc.r)
	}
}
