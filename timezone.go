package chrono

import "time"

// Timezone identifies a zone by its IANA database name. The constants are
// the zones the package names directly; any other IANA name may be
// converted to a Timezone
type Timezone string

const (
	UTC Timezone = "UTC"
	PST Timezone = "America/Los_Angeles"
	CST Timezone = "America/Chicago"
	EST Timezone = "America/New_York"
)

// Timezones lists the named zones, UTC first and then west to east
var Timezones = []Timezone{UTC, PST, CST, EST}

func (tz Timezone) String() string {
	return string(tz)
}

// Location loads the zone from the embedded tz database. An unknown name
// returns an error wrapping ErrUnknownTimezone
func (tz Timezone) Location() (*time.Location, error) {
	return Default().engine.Zone(string(tz))
}
