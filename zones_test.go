package tss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPowerAtZoneScalesFTP(t *testing.T) {
	got, err := PowerAtZone("S1", 200)
	require.NoError(t, err)
	require.Equal(t, 100.0, got)

	got, err = PowerAtZone("S4", 250)
	require.NoError(t, err)
	require.Equal(t, 250.0, got)
}

func TestPowerAtZoneUnknownLabel(t *testing.T) {
	_, err := PowerAtZone("S9", 200)
	require.Error(t, err)

	var zoneErr *UnknownZoneError
	require.True(t, errors.As(err, &zoneErr))
	require.Equal(t, "S9", zoneErr.Zone)
}

func TestKnownZone(t *testing.T) {
	for _, label := range []string{"S1", "S2", "S3", "SST", "S4", "S5"} {
		require.True(t, KnownZone(label), "expected %s to resolve", label)
	}
	require.False(t, KnownZone("SST2"))
	require.False(t, KnownZone(""))
}
