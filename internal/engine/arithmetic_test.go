package engine_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/chrono/internal/engine"
)

func TestNormalizeUnit(t *testing.T) {
	for input, want := range map[string]engine.Unit{
		"ms":           engine.Millisecond,
		"milliseconds": engine.Millisecond,
		"s":            engine.Second,
		"Seconds":      engine.Second,
		"m":            engine.Minute,
		"minute":       engine.Minute,
		"h":            engine.Hour,
		"HOURS":        engine.Hour,
		"d":            engine.Day,
		"days":         engine.Day,
		"D":            engine.Date,
		"date":         engine.Date,
		"w":            engine.Week,
		"weeks":        engine.Week,
		"M":            engine.Month,
		"Month":        engine.Month,
		"Q":            engine.Quarter,
		"quarters":     engine.Quarter,
		"y":            engine.Year,
		"years":        engine.Year,
		"fortnight":    engine.Unit("fortnight"),
		"":             engine.Unit(""),
	} {
		assert.Equal(t, want, engine.NormalizeUnit(input), input)
	}
}

func TestAddClockUnits(t *testing.T) {
	e := newEngine()
	i := e.FromMillis(epochMillis)

	assert.Equal(t, epochMillis+250, e.Millis(e.Add(i, 250, "ms")))
	assert.Equal(t, epochMillis+30_000, e.Millis(e.Add(i, 30, "second")))
	assert.Equal(t, epochMillis+5*60_000, e.Millis(e.Add(i, 5, "minutes")))
	assert.Equal(t, epochMillis+90*60_000, e.Millis(e.Add(i, 1.5, "hour")))
	assert.Equal(t, epochMillis-3_600_000, e.Millis(e.Add(i, -1, "h")))
	assert.Equal(t, epochMillis+7, e.Millis(e.Add(i, 7, "bogus")))
}

func TestAddCalendarUnits(t *testing.T) {
	e := newEngine()
	at := func(y int, m time.Month, d int) engine.Instant {
		return e.FromTime(time.Date(y, m, d, 10, 30, 0, 0, time.UTC))
	}
	day := func(i engine.Instant) string {
		return e.Format(i, "2006-01-02 15:04")
	}

	assert.Equal(t, "2023-11-16 10:30", day(e.Add(at(2023, 11, 14), 2, "day")))
	assert.Equal(t, "2023-11-15 10:30", day(e.Add(at(2023, 11, 14), 0.5, "day")))
	assert.Equal(t, "2023-11-14 10:30", day(e.Add(at(2023, 11, 14), -0.5, "day")))
	assert.Equal(t, "2023-11-28 10:30", day(e.Add(at(2023, 11, 14), 2, "w")))
	assert.Equal(t, "2024-01-14 10:30", day(e.Add(at(2023, 11, 14), 2, "M")))
	assert.Equal(t, "2024-02-14 10:30", day(e.Add(at(2023, 11, 14), 1, "Q")))
	assert.Equal(t, "2021-11-14 10:30", day(e.Add(at(2023, 11, 14), -2, "y")))
}

func TestAddMonthClamps(t *testing.T) {
	e := newEngine()
	jan31 := e.FromTime(time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC))
	leap := e.FromTime(time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-02-29", e.Format(e.Add(jan31, 1, "month"), "2006-01-02"))
	assert.Equal(t, "2024-04-30", e.Format(e.Add(jan31, 3, "month"), "2006-01-02"))
	assert.Equal(t, "2023-11-30", e.Format(e.Add(jan31, -2, "month"), "2006-01-02"))
	assert.Equal(t, "2025-02-28", e.Format(e.Add(leap, 1, "year"), "2006-01-02"))
	assert.Equal(t, "2028-02-29", e.Format(e.Add(leap, 4, "year"), "2006-01-02"))
}

func TestAddDayAcrossDST(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	e := engine.New(engine.Options{Location: ny})
	before := e.FromTime(time.Date(2024, 3, 9, 12, 0, 0, 0, ny))

	next := e.Add(before, 1, "day")
	assert.Equal(t, 12, e.Hour(next))
	assert.Equal(t, int64(23), e.Diff(next, before, "hour"))
	assert.Equal(t, int64(1), e.Diff(next, before, "day"))

	later := e.Add(before, 24, "hour")
	assert.Equal(t, 13, e.Hour(later))
}

func TestSet(t *testing.T) {
	e := newEngine()
	i := e.FromMillis(epochMillis) // Tuesday 2023-11-14 22:13:20
	show := func(i engine.Instant) string {
		return e.Format(i, "2006-01-02 15:04:05.000")
	}

	assert.Equal(t, "2023-11-14 07:13:20.000", show(e.Set(i, "hour", 7)))
	assert.Equal(t, "2023-11-15 01:13:20.000", show(e.Set(i, "hour", 25)))
	assert.Equal(t, "2023-11-14 22:45:20.000", show(e.Set(i, "m", 45)))
	assert.Equal(t, "2023-11-14 22:13:05.000", show(e.Set(i, "second", 5)))
	assert.Equal(t, "2023-11-14 22:13:20.042", show(e.Set(i, "ms", 42)))
	assert.Equal(t, "2023-11-01 22:13:20.000", show(e.Set(i, "date", 1)))
	assert.Equal(t, "2023-11-12 22:13:20.000", show(e.Set(i, "day", 0)))
	assert.Equal(t, "2023-11-18 22:13:20.000", show(e.Set(i, "day", 6)))
	assert.Equal(t, "2023-01-14 22:13:20.000", show(e.Set(i, "month", 0)))
	assert.Equal(t, "2020-11-14 22:13:20.000", show(e.Set(i, "year", 2020)))
	assert.Equal(t, show(i), show(e.Set(i, "fortnight", 3)))
}

func TestSetClamps(t *testing.T) {
	e := newEngine()
	mar31 := e.FromTime(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	leap := e.FromTime(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-02-29", e.Format(e.Set(mar31, "month", 1), "2006-01-02"))
	assert.Equal(t, "2023-02-28", e.Format(e.Set(leap, "year", 2023), "2006-01-02"))
}

func TestSetKeepsLocation(t *testing.T) {
	e := newEngine()
	pst := e.InZone(e.FromMillis(epochMillis), "America/Los_Angeles")

	res := e.Set(pst, "hour", 9)
	assert.Equal(t, 9, e.Hour(res))
	assert.Equal(t, "America/Los_Angeles", res.Time().Location().String())
}

func TestAddRejectsNonFinite(t *testing.T) {
	e := newEngine()
	i := e.FromMillis(epochMillis)

	for _, unit := range []string{"ms", "hour", "day", "week", "month", "year"} {
		for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			res := e.Add(i, value, unit)
			assert.False(t, res.Valid(), unit)
			assert.ErrorIs(t, res.Err(), engine.ErrUnsupportedInput, unit)
		}
	}
}

func TestAddOutOfRange(t *testing.T) {
	e := newEngine()
	i := e.FromMillis(epochMillis)

	for unit, value := range map[string]float64{
		"ms":    1e20,
		"hour":  1e13,
		"day":   1e9,
		"week":  1e8,
		"month": 1e7,
		"Q":     1e7,
		"year":  1e15,
	} {
		res := e.Add(i, value, unit)
		assert.False(t, res.Valid(), unit)
		assert.ErrorIs(t, res.Err(), engine.ErrUnsupportedInput, unit)
		assert.Equal(t, engine.InvalidValue, e.Millis(res), unit)
	}

	edge := e.FromMillis(engine.MaxMillis)
	assert.True(t, edge.Valid())
	assert.False(t, e.Add(edge, 1, "ms").Valid())
	assert.False(t, e.Add(edge, 1, "day").Valid())
	assert.False(t, e.Add(edge, 1, "year").Valid())
	assert.True(t, e.Add(edge, -1, "year").Valid())

	floor := e.FromMillis(-engine.MaxMillis)
	assert.False(t, e.Add(floor, -1, "ms").Valid())
	assert.False(t, e.Add(floor, -1, "month").Valid())
}

func TestSetOutOfRange(t *testing.T) {
	e := newEngine()
	i := e.FromMillis(epochMillis)

	for unit, value := range map[string]int{
		"year":        1_000_000,
		"month":       100_000_000,
		"date":        1 << 50,
		"hour":        -(1 << 50),
		"millisecond": 1 << 60,
	} {
		res := e.Set(i, unit, value)
		assert.False(t, res.Valid(), unit)
		assert.ErrorIs(t, res.Err(), engine.ErrUnsupportedInput, unit)
	}

	assert.False(t, e.Set(i, "year", 280_000).Valid())
	assert.True(t, e.Set(i, "year", 270_000).Valid())
	assert.Equal(t, epochMillis, e.Millis(e.Set(i, "unknown", 1<<50)))
}
