package domain

import "math"

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MeanOf returns the mean as a pointer, nil for an empty slice. Averages over
// sparse day series use this so "no data" never collapses into zero.
func MeanOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := Mean(values)
	return &m
}

// Pearson computes the Pearson correlation coefficient between two paired
// series. It returns nil when fewer than 2 pairs exist or either series has
// zero variance: the statistic is undefined there, and nil must stay
// distinguishable from a true zero correlation.
func Pearson(xs, ys []float64) *float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return nil
	}

	xMean := Mean(xs)
	yMean := Mean(ys)

	var covSum, xVar, yVar float64
	for i := 0; i < n; i++ {
		dx := xs[i] - xMean
		dy := ys[i] - yMean
		covSum += dx * dy
		xVar += dx * dx
		yVar += dy * dy
	}
	if xVar == 0 || yVar == 0 {
		return nil
	}

	r := covSum / math.Sqrt(xVar*yVar)
	return &r
}
