package engine

import (
	"errors"
	"math"
	"time"
)

// Instant is the engine's opaque handle on a single point in time. The
// zero Instant is invalid
type Instant struct {
	time time.Time
	err  error
	ok   bool
}

const (
	// InvalidValue is returned by numeric queries on an invalid Instant
	InvalidValue int64 = math.MinInt64

	// InvalidComponent is returned by component queries on an invalid
	// Instant
	InvalidComponent = -1

	// InvalidDate is the rendering of an invalid Instant
	InvalidDate = "Invalid Date"
)

var (
	// ErrInvalid is the reason carried by a zero Instant
	ErrInvalid = errors.New("invalid date")

	// ErrUnparsable indicates a string the engine could not read
	ErrUnparsable = errors.New("unparsable date string")

	// ErrUnsupportedInput indicates a value of a type the engine does not
	// accept
	ErrUnsupportedInput = errors.New("unsupported date input")

	// ErrUnknownTimezone indicates a zone name missing from the tz database
	ErrUnknownTimezone = errors.New("unknown timezone")
)

func valid(t time.Time) Instant {
	return Instant{
		time: t.Round(0).Truncate(time.Millisecond),
		ok:   true,
	}
}

func invalid(err error) Instant {
	return Instant{err: err}
}

// Valid reports whether the Instant is a well-formed point in time
func (i Instant) Valid() bool {
	return i.ok
}

// Err returns the reason the Instant is invalid, or nil
func (i Instant) Err() error {
	switch {
	case i.ok:
		return nil
	case i.err == nil:
		return ErrInvalid
	default:
		return i.err
	}
}

// Time returns the instant in its current location, or the zero time when
// the Instant is invalid
func (i Instant) Time() time.Time {
	if !i.ok {
		return time.Time{}
	}
	return i.time
}
