// Package pipeline orchestrates one calculator run: input validation, file
// ingestion, load metric computation, and report output.
package pipeline

import (
	"io"
	"log"
)

// Recognized input extensions. All files of one run must share one of them.
const (
	extFIT  = ".fit"
	extPlan = ".json"
)

// Accepted FTP range in watts.
const (
	minFTPWatts = 100
	maxFTPWatts = 400
)

// Options configures one calculator run.
type Options struct {
	FTPWatts int
	Files    []string
	OutDir   string      // when set, series and summary artifacts are written
	Format   string      // series artifact format: csv|parquet, default csv
	Stdout   io.Writer   // report destination, defaults to os.Stdout
	Logger   *log.Logger // block-skip diagnostics, defaults to stderr
}

// Result reports what a run produced.
type Result struct {
	Report      Report
	SeriesPath  string
	SummaryPath string
}

// Report is the presented metric set.
type Report struct {
	FTPWatts        int     `json:"ftp_w"`
	DurationSeconds float64 `json:"duration_s"`
	NormalizedPower float64 `json:"np_w"`
	IntensityFactor float64 `json:"if"`
	TrainingStress  float64 `json:"tss"`
}
