package workout

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	tss "github.com/pbielenia/tss-calculator"
)

// Option configures synthesis.
type Option func(*synthesizer)

// WithLogger routes skipped-block diagnostics to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *synthesizer) {
		s.logger = logger
	}
}

type synthesizer struct {
	ftp    float64
	logger *log.Logger
}

// Synthesize expands a plan into one power sample per second at the given
// FTP. Blocks that fail validation are skipped whole, never partially
// expanded; each skip logs one diagnostic and processing continues.
func Synthesize(blocks []Block, ftp float64, opts ...Option) tss.Totals {
	s := &synthesizer{
		ftp:    ftp,
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}

	var totals tss.Totals
	for i, block := range blocks {
		st, err := normalize(block)
		if err != nil {
			s.logger.Printf("skipping block %d: %v", i, err)
			continue
		}
		s.expand(&totals, st)
	}
	return totals
}

func (s *synthesizer) expand(totals *tss.Totals, st step) {
	switch v := st.(type) {
	case steadyStep:
		s.expandSegment(totals, v)
	case intervalStep:
		for r := 0; r < v.repeats; r++ {
			s.expandSegment(totals, v.work)
			s.expandSegment(totals, v.rest)
		}
	}
}

// expandSegment appends floor(minutes*60) constant samples. Fractional
// seconds are truncated, never rounded.
func (s *synthesizer) expandSegment(totals *tss.Totals, seg steadyStep) {
	target, err := tss.PowerAtZone(seg.zone, s.ftp)
	if err != nil {
		// The zone resolved during validation; skip rather than emit zeros.
		s.logger.Printf("skipping segment: %v", err)
		return
	}
	seconds := int(seg.minutes * 60)
	for i := 0; i < seconds; i++ {
		totals.Series = append(totals.Series, target)
	}
	totals.DurationSeconds += float64(seconds)
}

// SynthesizeFile reads a JSON plan file holding an array of blocks and
// synthesizes it.
func SynthesizeFile(path string, ftp float64, opts ...Option) (tss.Totals, error) {
	f, err := os.Open(path)
	if err != nil {
		return tss.Totals{}, fmt.Errorf("open workout plan: %w", err)
	}
	defer f.Close()

	var blocks []Block
	if err := json.NewDecoder(f).Decode(&blocks); err != nil {
		return tss.Totals{}, fmt.Errorf("decode workout plan %s: %w", path, err)
	}
	return Synthesize(blocks, ftp, opts...), nil
}
