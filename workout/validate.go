package workout

import (
	"fmt"

	tss "github.com/pbielenia/tss-calculator"
)

const (
	blockTypeSteady   = "steady"
	blockTypeInterval = "interval"

	maxDurationMinutes = 400
)

// MissingFieldError reports a required plan field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// InvalidValueError reports a present field whose value is out of range or
// unresolvable.
type InvalidValueError struct {
	Field  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %q: %s", e.Field, e.Reason)
}

// UnsupportedTypeError reports a block whose type tag is not recognized.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Type == "" {
		return "block has no type"
	}
	return fmt.Sprintf("unsupported block type %q", e.Type)
}

// normalize validates one raw block and converts it into its step shape,
// short-circuiting on the first missing or invalid field.
func normalize(b Block) (step, error) {
	switch b.Type {
	case blockTypeSteady:
		seg, err := normalizeSegment("duration", b.Duration, "powerZone", b.PowerZone)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case blockTypeInterval:
		if b.Repeats == nil {
			return nil, &MissingFieldError{Field: "repeats"}
		}
		if *b.Repeats <= 0 {
			return nil, &InvalidValueError{Field: "repeats", Reason: fmt.Sprintf("%d is not positive", *b.Repeats)}
		}
		work, err := normalizeSegment("workDuration", b.WorkDuration, "workPowerZone", b.WorkPowerZone)
		if err != nil {
			return nil, err
		}
		rest, err := normalizeSegment("restDuration", b.RestDuration, "restPowerZone", b.RestPowerZone)
		if err != nil {
			return nil, err
		}
		return intervalStep{repeats: *b.Repeats, work: work, rest: rest}, nil
	default:
		return nil, &UnsupportedTypeError{Type: b.Type}
	}
}

func normalizeSegment(durField string, duration *float64, zoneField string, zone *string) (steadyStep, error) {
	if duration == nil {
		return steadyStep{}, &MissingFieldError{Field: durField}
	}
	if *duration <= 0 || *duration >= maxDurationMinutes {
		return steadyStep{}, &InvalidValueError{
			Field:  durField,
			Reason: fmt.Sprintf("%g minutes outside (0, %d)", *duration, maxDurationMinutes),
		}
	}
	if zone == nil {
		return steadyStep{}, &MissingFieldError{Field: zoneField}
	}
	if !tss.KnownZone(*zone) {
		return steadyStep{}, &InvalidValueError{
			Field:  zoneField,
			Reason: fmt.Sprintf("unknown power zone %q", *zone),
		}
	}
	return steadyStep{minutes: *duration, zone: *zone}, nil
}
