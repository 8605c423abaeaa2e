package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tss "github.com/pbielenia/tss-calculator"
	"github.com/pbielenia/tss-calculator/activity"
	"github.com/pbielenia/tss-calculator/workout"
)

// Run validates the configuration, ingests every input file, computes the
// load metrics, and prints the report table. Configuration errors and numeric
// precondition violations are fatal: nothing is printed once one is detected.
func Run(opts Options) (*Result, error) {
	ext, err := validate(opts)
	if err != nil {
		return nil, err
	}

	parts := make([]tss.Totals, 0, len(opts.Files))
	for _, path := range opts.Files {
		var totals tss.Totals
		switch ext {
		case extFIT:
			totals, err = activity.ExtractFile(path)
		case extPlan:
			var wopts []workout.Option
			if opts.Logger != nil {
				wopts = append(wopts, workout.WithLogger(opts.Logger))
			}
			totals, err = workout.SynthesizeFile(path, float64(opts.FTPWatts), wopts...)
		}
		if err != nil {
			return nil, err
		}
		parts = append(parts, totals)
	}
	merged := tss.Merge(parts...)

	load, err := tss.ComputeLoad(merged.DurationSeconds, merged.Series, float64(opts.FTPWatts))
	if err != nil {
		return nil, err
	}

	res := &Result{Report: Report{
		FTPWatts:        opts.FTPWatts,
		DurationSeconds: merged.DurationSeconds,
		NormalizedPower: load.NormalizedPower,
		IntensityFactor: load.IntensityFactor,
		TrainingStress:  load.TrainingStressScore,
	}}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	if err := renderReport(out, res.Report); err != nil {
		return nil, err
	}

	if opts.OutDir != "" {
		if err := writeArtifacts(res, merged.Series, opts); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func validate(opts Options) (string, error) {
	if opts.FTPWatts < minFTPWatts || opts.FTPWatts > maxFTPWatts {
		return "", fmt.Errorf("FTP %d W outside accepted range %d..%d",
			opts.FTPWatts, minFTPWatts, maxFTPWatts)
	}
	if len(opts.Files) == 0 {
		return "", fmt.Errorf("at least one input file is required")
	}
	if f := strings.ToLower(strings.TrimSpace(opts.Format)); f != "" && f != "csv" && f != "parquet" {
		return "", fmt.Errorf("unsupported format %q (expected csv|parquet)", opts.Format)
	}

	ext := ""
	for _, path := range opts.Files {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("input file %s: %w", path, err)
		}
		e := strings.ToLower(filepath.Ext(path))
		if e != extFIT && e != extPlan {
			return "", fmt.Errorf("unsupported input extension %q (expected %s|%s)", e, extFIT, extPlan)
		}
		if ext == "" {
			ext = e
		} else if e != ext {
			return "", fmt.Errorf("mixed input extensions: %s and %s", ext, e)
		}
	}
	return ext, nil
}
