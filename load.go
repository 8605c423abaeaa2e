package tss

import "errors"

const secondsPerHour = 3600.0

// ErrZeroFTP guards the normalization divisions. The accepted FTP range keeps
// it out of reach in practice, but the arithmetic is never attempted on zero.
var ErrZeroFTP = errors.New("threshold power must be non-zero")

// LoadMetrics is the derived result triple. Purely computed, never mutated.
type LoadMetrics struct {
	NormalizedPower     float64
	IntensityFactor     float64
	TrainingStressScore float64
}

// IntensityFactor expresses Normalized Power as a fraction of FTP, rounded
// to 2 digits.
func IntensityFactor(np, ftp float64) (float64, error) {
	if ftp == 0 {
		return 0, ErrZeroFTP
	}
	return round(np/ftp, 2), nil
}

// TrainingStressScore scales duration, Normalized Power, and Intensity Factor
// against FTP so that one hour at FTP yields 100. Rounded to 1 digit.
func TrainingStressScore(durationSec, np, intensityFactor, ftp float64) (float64, error) {
	if ftp == 0 {
		return 0, ErrZeroFTP
	}
	return round(durationSec*np*intensityFactor/(ftp*secondsPerHour)*100, 1), nil
}

// ComputeLoad derives all load metrics for one merged ingestion result.
func ComputeLoad(durationSec float64, series PowerSeries, ftp float64) (LoadMetrics, error) {
	np, err := NormalizedPower(series)
	if err != nil {
		return LoadMetrics{}, err
	}
	intensity, err := IntensityFactor(np, ftp)
	if err != nil {
		return LoadMetrics{}, err
	}
	stress, err := TrainingStressScore(durationSec, np, intensity, ftp)
	if err != nil {
		return LoadMetrics{}, err
	}
	return LoadMetrics{
		NormalizedPower:     np,
		IntensityFactor:     intensity,
		TrainingStressScore: stress,
	}, nil
}
