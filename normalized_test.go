package tss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func constantSeries(n int, v float64) PowerSeries {
	s := make(PowerSeries, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestNormalizedPowerConstantSeries(t *testing.T) {
	// Every rolling average, 4th power, and 4th root round-trips to the
	// input value.
	np, err := NormalizedPower(constantSeries(40, 150))
	require.NoError(t, err)
	require.Equal(t, 150.0, np)
}

func TestNormalizedPowerShortSeries(t *testing.T) {
	_, err := NormalizedPower(constantSeries(29, 200))
	require.ErrorIs(t, err, ErrShortSeries)

	_, err = NormalizedPower(nil)
	require.ErrorIs(t, err, ErrShortSeries)

	// 30 samples fill exactly one window.
	np, err := NormalizedPower(constantSeries(30, 200))
	require.NoError(t, err)
	require.Equal(t, 200.0, np)
}

func TestRollingAveragesLength(t *testing.T) {
	series := make(PowerSeries, 35)
	for i := range series {
		series[i] = float64(100 + i)
	}
	averages := rollingAverages(series, 30)
	require.Len(t, averages, len(series)-29)
}

func TestNormalizedPowerMatchesDefinition(t *testing.T) {
	// Mixed steady/effort series checked against a literal rendering of the
	// algorithm: window means rounded to 2 digits, 4th power, mean, 4th root.
	series := append(constantSeries(45, 120), constantSeries(20, 260)...)

	var windows []float64
	for i := 0; i+30 <= len(series); i++ {
		sum := 0.0
		for _, v := range series[i : i+30] {
			sum += v
		}
		windows = append(windows, math.Round(sum/30*100)/100)
	}
	total := 0.0
	for _, w := range windows {
		total += math.Pow(w, 4)
	}
	want := math.Round(math.Pow(total/float64(len(windows)), 0.25)*100) / 100

	got, err := NormalizedPower(series)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-9)
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	require.Equal(t, 0.63, round(0.625, 2))
	require.Equal(t, 0.6, round(0.625, 1))
	require.Equal(t, -0.63, round(-0.625, 2))
	require.Equal(t, 150.0, round(150.0, 2))
}
