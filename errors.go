package chrono

import "github.com/kode4food/chrono/internal/engine"

const (
	// InvalidValue is what ValueOf and Diff return for an invalid DateTime.
	// It is the smallest int64, so invalid values sort first
	InvalidValue = engine.InvalidValue

	// InvalidComponent is what Date, Weekday and Hour return for an
	// invalid DateTime
	InvalidComponent = engine.InvalidComponent

	// InvalidDate is how an invalid DateTime renders as a string
	InvalidDate = engine.InvalidDate

	// MaxMillis bounds the epoch offsets a DateTime can hold, in either
	// direction
	MaxMillis = engine.MaxMillis
)

var (
	// ErrInvalid is reported by the zero DateTime
	ErrInvalid = engine.ErrInvalid

	// ErrUnparsable is reported when a string input could not be read
	ErrUnparsable = engine.ErrUnparsable

	// ErrUnsupportedInput is reported when Create receives a value of a
	// type it does not accept, or when construction or arithmetic lands
	// outside MaxMillis
	ErrUnsupportedInput = engine.ErrUnsupportedInput

	// ErrUnknownTimezone is reported when a zone name is not in the tz
	// database
	ErrUnknownTimezone = engine.ErrUnknownTimezone
)
