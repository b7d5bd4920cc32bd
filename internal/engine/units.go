package engine

import (
	"strings"
	"time"
)

// Unit is a normalized calendar or clock unit name
type Unit string

const (
	Millisecond Unit = "millisecond"
	Second      Unit = "second"
	Minute      Unit = "minute"
	Hour        Unit = "hour"
	Day         Unit = "day"
	Date        Unit = "date"
	Week        Unit = "week"
	Month       Unit = "month"
	Quarter     Unit = "quarter"
	Year        Unit = "year"
)

const (
	msPerSecond = int64(time.Second / time.Millisecond)
	msPerMinute = int64(time.Minute / time.Millisecond)
	msPerHour   = int64(time.Hour / time.Millisecond)
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
)

var shortUnits = map[string]Unit{
	"ms": Millisecond,
	"s":  Second,
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"D":  Date,
	"w":  Week,
	"M":  Month,
	"Q":  Quarter,
	"y":  Year,
}

// NormalizeUnit maps a unit string onto its canonical Unit. Short aliases
// are case-sensitive ("m" is minute, "M" is month). Anything else is lower
// cased with a single trailing "s" removed, so "Days" becomes "day".
// Unrecognized names come back unchanged in that normalized form
func NormalizeUnit(unit string) Unit {
	if u, ok := shortUnits[unit]; ok {
		return u
	}
	u := strings.ToLower(unit)
	return Unit(strings.TrimSuffix(u, "s"))
}

func (u Unit) millis() (int64, bool) {
	switch u {
	case Millisecond:
		return 1, true
	case Second:
		return msPerSecond, true
	case Minute:
		return msPerMinute, true
	case Hour:
		return msPerHour, true
	default:
		return 0, false
	}
}
