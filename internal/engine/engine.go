// Package engine is the time-computation engine behind chrono's DateTime.
// It owns every call into the time package, so replacing the calendar
// implementation means replacing this package and nothing else
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type (
	// Engine constructs and operates on Instants
	Engine struct {
		clock     clockwork.Clock
		location  *time.Location
		formatter Formatter
		zones     *zoneCache
		logger    *zap.Logger
		weekStart time.Weekday
	}

	// Options configures an Engine. Zero fields take their defaults
	Options struct {
		Clock         clockwork.Clock
		Location      *time.Location
		Formatter     Formatter
		Logger        *zap.Logger
		ZoneCacheSize int
		WeekStart     time.Weekday
	}

	// Formatter renders a time according to a caller-supplied template
	Formatter interface {
		Format(t time.Time, template string) string
	}

	layoutFormatter struct{}
)

var (
	minTime = time.UnixMilli(-MaxMillis)
	maxTime = time.UnixMilli(MaxMillis)
)

const (
	// DefaultLayout renders an instant when no template is given
	DefaultLayout = "2006-01-02T15:04:05-07:00"

	// LocalTimeLayout renders the time-of-day portion of an instant
	LocalTimeLayout = "15:04"

	// MaxMillis bounds the epoch offsets the engine accepts (100 million
	// days either side of the epoch)
	MaxMillis = 8_640_000_000_000_000
)

// New returns an Engine configured by opts
func New(opts Options) *Engine {
	e := &Engine{
		clock:     opts.Clock,
		location:  opts.Location,
		formatter: opts.Formatter,
		zones:     newLRUCache[*time.Location](opts.ZoneCacheSize),
		logger:    opts.Logger,
		weekStart: opts.WeekStart % 7,
	}
	if e.clock == nil {
		e.clock = clockwork.NewRealClock()
	}
	if e.location == nil {
		e.location = time.Local
	}
	if e.formatter == nil {
		e.formatter = layoutFormatter{}
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.weekStart < 0 {
		e.weekStart += 7
	}
	return e
}

// Location returns the engine's default interpretation
func (e *Engine) Location() *time.Location {
	return e.location
}

// Now returns the current instant from the engine's clock
func (e *Engine) Now() Instant {
	return valid(e.clock.Now().In(e.location))
}

// FromMillis returns the instant at ms milliseconds since the Unix epoch.
// Values beyond MaxMillis in either direction produce an invalid Instant
func (e *Engine) FromMillis(ms int64) Instant {
	if ms > MaxMillis || ms < -MaxMillis {
		return e.Invalid(fmt.Errorf("%w: %d out of range", ErrUnsupportedInput, ms))
	}
	return valid(time.UnixMilli(ms).In(e.location))
}

// FromFloat returns the instant at ms milliseconds since the Unix epoch,
// truncating any fraction. NaN and infinities produce an invalid Instant
func (e *Engine) FromFloat(ms float64) Instant {
	if math.IsNaN(ms) || math.Abs(ms) > MaxMillis {
		return e.Invalid(fmt.Errorf("%w: %v", ErrUnsupportedInput, ms))
	}
	return e.FromMillis(int64(ms))
}

// FromTime returns the instant represented by t, keeping its location.
// Times beyond MaxMillis in either direction produce an invalid Instant
func (e *Engine) FromTime(t time.Time) Instant {
	return e.bounded(t)
}

func (e *Engine) bounded(t time.Time) Instant {
	if t.Before(minTime) || t.After(maxTime) {
		return e.Invalid(fmt.Errorf("%w: year %d out of range",
			ErrUnsupportedInput, t.Year(),
		))
	}
	return valid(t)
}

// Unsupported returns an invalid Instant for a value of unknown type
func (e *Engine) Unsupported(value any) Instant {
	return e.Invalid(fmt.Errorf("%w: %T", ErrUnsupportedInput, value))
}

// Invalid returns an invalid Instant carrying err
func (e *Engine) Invalid(err error) Instant {
	e.logger.Debug("invalid date constructed", zap.Error(err))
	return invalid(err)
}

// Format renders i using template, or DefaultLayout when template is empty
func (e *Engine) Format(i Instant, template string) string {
	if !i.ok {
		return InvalidDate
	}
	if template == "" {
		return i.time.Format(DefaultLayout)
	}
	return e.formatter.Format(i.time, template)
}

// LocalTime renders the 24-hour time-of-day of i as HH:mm
func (e *Engine) LocalTime(i Instant) string {
	if !i.ok {
		return InvalidDate
	}
	return i.time.Format(LocalTimeLayout)
}

// Millis returns i as milliseconds since the Unix epoch
func (e *Engine) Millis(i Instant) int64 {
	if !i.ok {
		return InvalidValue
	}
	return i.time.UnixMilli()
}

// Before reports whether a is strictly earlier than b
func (e *Engine) Before(a, b Instant) bool {
	return a.ok && b.ok && a.time.Before(b.time)
}

// After reports whether a is strictly later than b
func (e *Engine) After(a, b Instant) bool {
	return a.ok && b.ok && a.time.After(b.time)
}

// Same reports whether a and b are the same point in time
func (e *Engine) Same(a, b Instant) bool {
	return a.ok && b.ok && a.time.Equal(b.time)
}

// InZone reinterprets i under the named zone. The point in time does not
// change
func (e *Engine) InZone(i Instant, name string) Instant {
	if !i.ok {
		return i
	}
	loc, err := e.Zone(name)
	if err != nil {
		e.logger.Warn("timezone unavailable",
			zap.String("zone", name), zap.Error(err),
		)
		return invalid(err)
	}
	return valid(i.time.In(loc))
}

// Date returns the day of the month of i
func (e *Engine) Date(i Instant) int {
	if !i.ok {
		return InvalidComponent
	}
	return i.time.Day()
}

// Weekday returns the day of the week of i, counted from the engine's
// configured first day of the week
func (e *Engine) Weekday(i Instant) int {
	if !i.ok {
		return InvalidComponent
	}
	return (int(i.time.Weekday()) - int(e.weekStart) + 7) % 7
}

// Hour returns the hour of the day of i
func (e *Engine) Hour(i Instant) int {
	if !i.ok {
		return InvalidComponent
	}
	return i.time.Hour()
}

func (layoutFormatter) Format(t time.Time, layout string) string {
	return t.Format(layout)
}
