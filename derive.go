package chrono

// Add returns a new DateTime advanced by value units. Units are forwarded
// to the engine: "millisecond", "second", "minute" and "hour" move the
// instant, "day" and "week" move the calendar date keeping the wall-clock
// time, and "month", "quarter" and "year" move the calendar month, clamping
// the day to the target month's length. Plurals and the short forms "ms",
// "s", "m", "h", "d", "w", "M", "Q" and "y" are accepted. A NaN or
// infinite value, or a result beyond MaxMillis, gives an invalid DateTime
func (d DateTime) Add(value float64, unit string) DateTime {
	return d.derive(d.eng().Add(d.instant, value, unit))
}

// Subtract returns a new DateTime moved back by value units
func (d DateTime) Subtract(value float64, unit string) DateTime {
	return d.Add(-value, unit)
}

// Set returns a new DateTime with one component overwritten. Components
// follow the engine's conventions: "month" is zero-based (0 is January),
// "date" is the day of the month, "day" selects a weekday (0 is Sunday)
// within the current week. Values outside a component's range carry into
// the next larger component. Unknown components return an equal DateTime
func (d DateTime) Set(unit string, value int) DateTime {
	next := d.derive(d.eng().Set(d.instant, unit, value))
	if !next.IsValid() {
		return next
	}
	return d.derive(toInstant(d.eng(), next.ToDate()))
}

// Clone returns a new DateTime for the same instant and timezone
func (d DateTime) Clone() DateTime {
	if !d.IsValid() {
		return d.derive(d.instant)
	}
	return d.derive(d.eng().FromTime(d.ToDate()))
}

// SetTimezone returns a new DateTime for the same instant, interpreted in
// zone. ValueOf is unchanged; Hour, Date, Weekday and formatting follow the
// new zone. A zone missing from the tz database yields an invalid DateTime
// reporting ErrUnknownTimezone
func (d DateTime) SetTimezone(zone Timezone) DateTime {
	return d.derive(d.eng().InZone(d.instant, string(zone)))
}
