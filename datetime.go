package chrono

import (
	"time"

	"github.com/kode4food/chrono/internal/engine"
)

// DateTime is an immutable point in time together with the timezone it is
// interpreted in. Operations that conceptually modify a date return a new
// DateTime and leave the receiver untouched. The zero DateTime is invalid.
//
// An invalid DateTime never panics. Its string renderings are InvalidDate,
// its numeric queries are InvalidValue or InvalidComponent, comparisons
// involving it are false, and everything derived from it is invalid too
type DateTime struct {
	engine  *engine.Engine
	instant engine.Instant
}

// Format renders the DateTime using template, which is passed unchanged to
// the configured Formatter. An empty template renders the default layout,
// e.g. "2023-11-14T22:13:20+00:00"
func (d DateTime) Format(template string) string {
	return d.eng().Format(d.instant, template)
}

// String renders the DateTime in the default layout
func (d DateTime) String() string {
	return d.Format("")
}

// ToDate exports the DateTime as a time.Time in its current location. An
// invalid DateTime exports the zero time
func (d DateTime) ToDate() time.Time {
	return d.instant.Time()
}

// ValueOf returns milliseconds since the Unix epoch
func (d DateTime) ValueOf() int64 {
	return d.eng().Millis(d.instant)
}

// IsValid reports whether the DateTime is a well-formed point in time
func (d DateTime) IsValid() bool {
	return d.instant.Valid()
}

// Err reports why the DateTime is invalid, or nil when it is valid
func (d DateTime) Err() error {
	return d.instant.Err()
}

// Date returns the day of the month, 1 through 31
func (d DateTime) Date() int {
	return d.eng().Date(d.instant)
}

// Weekday returns the day of the week counted from the configured week
// start. With the default configuration Sunday is 0 and Saturday is 6
func (d DateTime) Weekday() int {
	return d.eng().Weekday(d.instant)
}

// Hour returns the hour of the day, 0 through 23, in the DateTime's
// current timezone
func (d DateTime) Hour() int {
	return d.eng().Hour(d.instant)
}

// ToLocalTimeString renders the time of day as 24-hour HH:mm, regardless
// of the configured Formatter
func (d DateTime) ToLocalTimeString() string {
	return d.eng().LocalTime(d.instant)
}

// Timezone returns the name of the zone the DateTime is interpreted in. It
// is empty for an invalid DateTime, and also for one built from a string
// carrying a numeric offset that matches no named zone, since that offset
// has no IANA name
func (d DateTime) Timezone() Timezone {
	if !d.IsValid() {
		return ""
	}
	return Timezone(d.instant.Time().Location().String())
}

func (d DateTime) eng() *engine.Engine {
	if d.engine == nil {
		return Default().engine
	}
	return d.engine
}

func (d DateTime) derive(i engine.Instant) DateTime {
	return DateTime{
		engine:  d.eng(),
		instant: i,
	}
}
