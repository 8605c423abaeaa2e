// Package activity extracts duration and power readings from recorded FIT
// activity files.
package activity

import (
	"fmt"
	"math"
	"os"

	"github.com/tormoder/fit"

	tss "github.com/pbielenia/tss-calculator"
)

// ExtractFile decodes one FIT activity file into ingestion totals. The file
// is fully drained and closed on every exit path; each file yields its own
// independent totals and the caller merges across files.
func ExtractFile(path string) (tss.Totals, error) {
	f, err := os.Open(path)
	if err != nil {
		return tss.Totals{}, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return tss.Totals{}, fmt.Errorf("decode FIT file %s: %w", path, err)
	}
	act, err := decoded.Activity()
	if err != nil {
		return tss.Totals{}, fmt.Errorf("activity FIT expected: %w", err)
	}
	return Extract(act.Sessions, act.Records), nil
}

// Extract accumulates total elapsed time across session messages (multiple
// sessions sum) and appends each record message's power in delivered order.
// Fields carrying the FIT invalid sentinel are ignored without error, so the
// duration and the series are independently sourced and need not have equal
// cardinality.
func Extract(sessions []*fit.SessionMsg, records []*fit.RecordMsg) tss.Totals {
	var totals tss.Totals
	for _, session := range sessions {
		if session == nil || session.TotalElapsedTime == math.MaxUint32 {
			continue
		}
		totals.DurationSeconds += session.GetTotalElapsedTimeScaled()
	}
	for _, rec := range records {
		if rec == nil || rec.Power == math.MaxUint16 {
			continue
		}
		totals.Series = append(totals.Series, float64(rec.Power))
	}
	return totals
}
