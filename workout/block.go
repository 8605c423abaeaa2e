// Package workout expands declarative workout plans into per-second power
// series against a rider's FTP.
package workout

// Block is one raw plan entry as decoded from a plan file. Optional fields
// are pointers so a missing field is distinguishable from a zero value.
type Block struct {
	Type          string   `json:"type"`
	Duration      *float64 `json:"duration,omitempty"`
	PowerZone     *string  `json:"powerZone,omitempty"`
	Repeats       *int     `json:"repeats,omitempty"`
	WorkDuration  *float64 `json:"workDuration,omitempty"`
	WorkPowerZone *string  `json:"workPowerZone,omitempty"`
	RestDuration  *float64 `json:"restDuration,omitempty"`
	RestPowerZone *string  `json:"restPowerZone,omitempty"`
}

// step is the closed set of validated block shapes. A raw block either
// normalizes fully into one of these or is rejected whole.
type step interface {
	isStep()
}

type steadyStep struct {
	minutes float64
	zone    string
}

type intervalStep struct {
	repeats int
	work    steadyStep
	rest    steadyStep
}

func (steadyStep) isStep()   {}
func (intervalStep) isStep() {}
