package engine

import (
	"math"
	"time"
)

// Diff returns a minus b in the given unit, truncated toward zero. Day and
// week differences discount any change in UTC offset between the two, so
// crossing a daylight-saving boundary still counts whole days. Month,
// quarter and year differences are calendar based. An empty or unknown
// unit yields milliseconds
func (e *Engine) Diff(a, b Instant, unit string) int64 {
	if !a.ok || !b.ok {
		return InvalidValue
	}
	ms := a.time.UnixMilli() - b.time.UnixMilli()

	var res float64
	switch u := NormalizeUnit(unit); u {
	case Year:
		res = monthDiff(a.time, b.time) / 12
	case Quarter:
		res = monthDiff(a.time, b.time) / 3
	case Month:
		res = monthDiff(a.time, b.time)
	case Week:
		res = float64(ms-zoneDelta(a.time, b.time)) / float64(msPerWeek)
	case Day, Date:
		res = float64(ms-zoneDelta(a.time, b.time)) / float64(msPerDay)
	default:
		step, ok := u.millis()
		if !ok {
			step = 1
		}
		res = float64(ms) / float64(step)
	}
	return int64(math.Trunc(res))
}

func zoneDelta(a, b time.Time) int64 {
	_, ao := a.Zone()
	_, bo := b.Zone()
	return int64(bo-ao) * msPerSecond
}

// monthDiff measures a minus b in fractional months by anchoring b's
// position between the two whole-month offsets of a that surround it
func monthDiff(a, b time.Time) float64 {
	b = b.In(a.Location())
	if a.Day() < b.Day() {
		return -monthDiff(b, a)
	}
	wheel := (b.Year()-a.Year())*12 + int(b.Month()-a.Month())
	anchor := shiftMonths(a, wheel)
	offset := b.UnixMilli() - anchor.UnixMilli()

	var span int64
	if offset < 0 {
		span = anchor.UnixMilli() - shiftMonths(a, wheel-1).UnixMilli()
	} else {
		span = shiftMonths(a, wheel+1).UnixMilli() - anchor.UnixMilli()
	}
	res := -(float64(wheel) + float64(offset)/float64(span))
	if res == 0 || math.IsNaN(res) {
		return 0
	}
	return res
}
