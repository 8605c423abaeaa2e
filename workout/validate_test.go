package workout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }

func steadyBlock(minutes float64, zone string) Block {
	return Block{Type: blockTypeSteady, Duration: floatPtr(minutes), PowerZone: strPtr(zone)}
}

func intervalBlock(repeats int, workMin float64, workZone string, restMin float64, restZone string) Block {
	return Block{
		Type:          blockTypeInterval,
		Repeats:       intPtr(repeats),
		WorkDuration:  floatPtr(workMin),
		WorkPowerZone: strPtr(workZone),
		RestDuration:  floatPtr(restMin),
		RestPowerZone: strPtr(restZone),
	}
}

func TestNormalizeSteady(t *testing.T) {
	st, err := normalize(steadyBlock(20, "SST"))
	require.NoError(t, err)
	require.Equal(t, steadyStep{minutes: 20, zone: "SST"}, st)
}

func TestNormalizeInterval(t *testing.T) {
	st, err := normalize(intervalBlock(4, 4, "S5", 2, "S1"))
	require.NoError(t, err)
	require.Equal(t, intervalStep{
		repeats: 4,
		work:    steadyStep{minutes: 4, zone: "S5"},
		rest:    steadyStep{minutes: 2, zone: "S1"},
	}, st)
}

func TestNormalizeMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		block Block
		field string
	}{
		{"steady without duration", Block{Type: blockTypeSteady, PowerZone: strPtr("S2")}, "duration"},
		{"steady without zone", Block{Type: blockTypeSteady, Duration: floatPtr(10)}, "powerZone"},
		{"interval without repeats", Block{
			Type:          blockTypeInterval,
			WorkDuration:  floatPtr(4),
			WorkPowerZone: strPtr("S4"),
			RestDuration:  floatPtr(2),
			RestPowerZone: strPtr("S1"),
		}, "repeats"},
		{"interval without rest zone", Block{
			Type:          blockTypeInterval,
			Repeats:       intPtr(3),
			WorkDuration:  floatPtr(4),
			WorkPowerZone: strPtr("S4"),
			RestDuration:  floatPtr(2),
		}, "restPowerZone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := normalize(tc.block)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			require.Equal(t, tc.field, missing.Field)
		})
	}
}

func TestNormalizeInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		block Block
		field string
	}{
		{"zero duration", steadyBlock(0, "S1"), "duration"},
		{"negative duration", steadyBlock(-5, "S1"), "duration"},
		{"duration at limit", steadyBlock(400, "S1"), "duration"},
		{"unknown zone", steadyBlock(10, "S9"), "powerZone"},
		{"zero repeats", intervalBlock(0, 4, "S4", 2, "S1"), "repeats"},
		{"negative repeats", intervalBlock(-1, 4, "S4", 2, "S1"), "repeats"},
		{"bad work duration", intervalBlock(3, 0, "S4", 2, "S1"), "workDuration"},
		{"unknown rest zone", intervalBlock(3, 4, "S4", 2, "Z2"), "restPowerZone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := normalize(tc.block)
			var invalid *InvalidValueError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, tc.field, invalid.Field)
		})
	}
}

func TestNormalizeUnsupportedType(t *testing.T) {
	var unsupported *UnsupportedTypeError

	_, err := normalize(Block{Type: "ramp"})
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "ramp", unsupported.Type)

	_, err = normalize(Block{})
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "", unsupported.Type)
}
