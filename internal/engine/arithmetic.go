package engine

import (
	"fmt"
	"math"
	"time"
)

const (
	maxYears     = 300_000
	maxMonths    = 12 * maxYears
	maxDays      = 2 * MaxMillis / 86_400_000
	maxShiftMs   = 2 * MaxMillis
	maxComponent = 2 * MaxMillis / 1000
)

// Add advances i by value units. Clock units move the absolute instant.
// Day and week move the calendar date in i's location by a rounded count,
// keeping the wall-clock time. Month, quarter and year move the calendar
// month by a truncated count and clamp the day to the target month's
// length. Unrecognized units are treated as milliseconds. Non-finite
// amounts and results beyond MaxMillis produce an invalid Instant
func (e *Engine) Add(i Instant, value float64, unit string) Instant {
	if !i.ok {
		return i
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return e.Invalid(fmt.Errorf("%w: cannot add %v", ErrUnsupportedInput, value))
	}
	t := i.time
	switch u := NormalizeUnit(unit); u {
	case Day, Date:
		return e.addDays(t, math.Floor(value+0.5))
	case Week:
		return e.addDays(t, math.Floor(value*7+0.5))
	case Month:
		return e.addMonths(t, math.Trunc(value))
	case Quarter:
		return e.addMonths(t, math.Trunc(value)*3)
	case Year:
		return e.addMonths(t, math.Trunc(value)*12)
	default:
		step, ok := u.millis()
		if !ok {
			step = 1
		}
		return e.addMillis(t, math.Trunc(value*float64(step)))
	}
}

// Set overwrites one component of i, leaving the others in place. Values
// outside a component's range carry over into the next larger one. "day"
// moves to the given weekday of the current Sunday-based week. Unknown
// units leave the instant unchanged
func (e *Engine) Set(i Instant, unit string, value int) Instant {
	if !i.ok {
		return i
	}
	u := NormalizeUnit(unit)
	switch u {
	case Date, Day, Month, Year, Hour, Minute, Second, Millisecond:
	default:
		return i
	}
	if math.Abs(float64(value)) > setLimit(u) {
		return e.Invalid(fmt.Errorf("%w: %s %d out of range",
			ErrUnsupportedInput, u, value,
		))
	}

	t := i.time
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	loc := t.Location()

	switch u {
	case Date:
		d = value
	case Day:
		d += value - int(t.Weekday())
	case Month:
		return e.bounded(withMonth(t, y, time.Month(value+1)))
	case Year:
		return e.bounded(withMonth(t, value, mo))
	case Hour:
		h = value
	case Minute:
		mi = value
	case Second:
		s = value
	case Millisecond:
		return e.addMillis(time.Date(y, mo, d, h, mi, s, 0, loc), float64(value))
	}
	return e.bounded(time.Date(y, mo, d, h, mi, s, t.Nanosecond(), loc))
}

func setLimit(u Unit) float64 {
	switch u {
	case Year:
		return maxYears
	case Month:
		return maxMonths
	default:
		return maxComponent
	}
}

func (e *Engine) addDays(t time.Time, days float64) Instant {
	if math.Abs(days) > maxDays {
		return e.Invalid(fmt.Errorf("%w: %v days out of range",
			ErrUnsupportedInput, days,
		))
	}
	return e.bounded(t.AddDate(0, 0, int(days)))
}

func (e *Engine) addMonths(t time.Time, months float64) Instant {
	if math.Abs(months) > maxMonths {
		return e.Invalid(fmt.Errorf("%w: %v months out of range",
			ErrUnsupportedInput, months,
		))
	}
	return e.bounded(shiftMonths(t, int(months)))
}

func (e *Engine) addMillis(t time.Time, ms float64) Instant {
	if math.Abs(ms) > maxShiftMs {
		return e.Invalid(fmt.Errorf("%w: %v ms out of range",
			ErrUnsupportedInput, ms,
		))
	}
	sum := t.UnixMilli() + int64(ms)
	if sum > MaxMillis || sum < -MaxMillis {
		return e.Invalid(fmt.Errorf("%w: %d out of range", ErrUnsupportedInput, sum))
	}
	return valid(time.UnixMilli(sum).In(t.Location()))
}

func shiftMonths(t time.Time, months int) time.Time {
	return withMonth(t, t.Year(), t.Month()+time.Month(months))
}

// withMonth moves t to the given year and month, clamping its day to the
// length of that month
func withMonth(t time.Time, year int, month time.Month) time.Time {
	h, mi, s := t.Clock()
	first := time.Date(year, month, 1, h, mi, s, t.Nanosecond(), t.Location())
	day := min(t.Day(), daysIn(first))
	return first.AddDate(0, 0, day-1)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
