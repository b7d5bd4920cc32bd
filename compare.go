package chrono

import "github.com/kode4food/chrono/internal/engine"

// IsBefore reports whether the DateTime is strictly earlier than value.
// value is either another DateTime or anything Create accepts
func (d DateTime) IsBefore(value any) bool {
	return d.eng().Before(d.instant, d.operand(value))
}

// IsAfter reports whether the DateTime is strictly later than value. value
// is either another DateTime or anything Create accepts
func (d DateTime) IsAfter(value any) bool {
	return d.eng().After(d.instant, d.operand(value))
}

// Diff returns the DateTime minus value in the given unit, truncated toward
// zero. value is either another DateTime or anything Create accepts. Units
// are forwarded to the engine unchecked; an empty unit means milliseconds
func (d DateTime) Diff(value any, unit string) int64 {
	return d.eng().Diff(d.instant, d.operand(value), unit)
}

// IsSame reports whether both DateTimes are the same point in time. Unlike
// IsBefore and IsAfter it accepts only a DateTime
func (d DateTime) IsSame(other DateTime) bool {
	return d.eng().Same(d.instant, fromAdapter(d.eng(), other))
}

// operand resolves the argument of a comparison. A DateTime is unwrapped
// through ToDate, anything else goes through the construction path
func (d DateTime) operand(value any) engine.Instant {
	e := d.eng()
	switch v := value.(type) {
	case DateTime:
		return fromAdapter(e, v)
	case *DateTime:
		if v != nil {
			return fromAdapter(e, *v)
		}
	}
	return toInstant(e, value)
}
