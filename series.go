package tss

// PowerSeries holds one power sample in watts per elapsed second, in
// chronological order.
type PowerSeries []float64

// Totals is the handoff from ingestion to the load calculation. For
// synthesized workouts the two fields are generated together; for activity
// files duration comes from session summaries and the series from record
// messages, so they need not have equal cardinality.
type Totals struct {
	DurationSeconds float64
	Series          PowerSeries
}

// Merge concatenates per-file totals in argument order.
func Merge(parts ...Totals) Totals {
	var out Totals
	for _, p := range parts {
		out.DurationSeconds += p.DurationSeconds
		out.Series = append(out.Series, p.Series...)
	}
	return out
}
