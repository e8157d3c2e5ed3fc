// Package flux computes descriptive statistics over spectral flux
// arrays, for window sanity checks before line measurement.
package flux

import (
	"math"
	"sort"
)

// Stats holds flux-slice statistics.
type Stats struct {
	Pixels   int
	Mean     float64
	RMS      float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Variance float64
}

// Calculate computes all statistics in a single pass, using Welford's
// online algorithm for a numerically stable variance.
func Calculate(fx []float64) Stats {
	n := len(fx)
	if n == 0 {
		return Stats{}
	}

	var (
		mean  float64
		m2    float64
		sumSq float64
	)

	maxVal := fx[0]
	minVal := fx[0]

	var maxPos, minPos int

	for i, x := range fx {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	return Stats{
		Pixels:   n,
		Mean:     mean,
		RMS:      math.Sqrt(sumSq / float64(n)),
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Variance: m2 / float64(n),
	}
}

// MedianSNR returns the median per-pixel signal-to-noise ratio fx/sig.
// Pixels with sig <= 0 are skipped; the result is 0 when no pixel has a
// usable error.
func MedianSNR(fx, sig []float64) float64 {
	n := len(fx)
	if len(sig) < n {
		n = len(sig)
	}

	snr := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		if sig[i] > 0 {
			snr = append(snr, fx[i]/sig[i])
		}
	}

	if len(snr) == 0 {
		return 0
	}

	sort.Float64s(snr)

	mid := len(snr) / 2
	if len(snr)%2 == 1 {
		return snr[mid]
	}

	return 0.5 * (snr[mid-1] + snr[mid])
}
