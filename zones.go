package tss

import "fmt"

// zoneMultipliers maps a workout power zone label to its fraction of FTP.
var zoneMultipliers = map[string]float64{
	"S1":  0.50,
	"S2":  0.65,
	"S3":  0.80,
	"SST": 0.90,
	"S4":  1.00,
	"S5":  1.15,
}

// UnknownZoneError reports a power zone label outside the recognized set.
type UnknownZoneError struct {
	Zone string
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown power zone %q", e.Zone)
}

// KnownZone reports whether label resolves in the power-zone table.
func KnownZone(label string) bool {
	_, ok := zoneMultipliers[label]
	return ok
}

// PowerAtZone returns the target power in watts for riding the given zone at
// the given FTP. Unknown zones never resolve to a power value.
func PowerAtZone(zone string, ftp float64) (float64, error) {
	mult, ok := zoneMultipliers[zone]
	if !ok {
		return 0, &UnknownZoneError{Zone: zone}
	}
	return ftp * mult, nil
}
