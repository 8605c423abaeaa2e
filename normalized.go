package tss

import (
	"errors"
	"fmt"
	"math"
)

// npWindowSeconds is the rolling window Normalized Power is defined over.
const npWindowSeconds = 30

// ErrShortSeries means the power series cannot fill a single rolling window.
var ErrShortSeries = errors.New("power series shorter than rolling window")

// NormalizedPower computes Normalized Power over a per-second series:
// 30 s rolling averages at stride 1 (each rounded to 2 digits), raised to the
// 4th power, averaged, 4th root, rounded to 2 digits.
func NormalizedPower(series PowerSeries) (float64, error) {
	if len(series) < npWindowSeconds {
		return 0, fmt.Errorf("%w: got %d samples, need at least %d",
			ErrShortSeries, len(series), npWindowSeconds)
	}

	averages := rollingAverages(series, npWindowSeconds)
	total := 0.0
	for _, avg := range averages {
		total += math.Pow(avg, 4)
	}
	mean := total / float64(len(averages))
	return round(math.Pow(mean, 0.25), 2), nil
}

// rollingAverages computes window means at stride 1 with a sliding sum.
// Each mean is rounded to 2 digits before the 4th-power step.
func rollingAverages(series PowerSeries, window int) []float64 {
	sum := 0.0
	for i := 0; i < window; i++ {
		sum += series[i]
	}

	out := make([]float64, 0, len(series)-window+1)
	out = append(out, round(sum/float64(window), 2))
	for i := window; i < len(series); i++ {
		sum += series[i] - series[i-window]
		out = append(out, round(sum/float64(window), 2))
	}
	return out
}

func round(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
