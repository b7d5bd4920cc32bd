package chrono

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Config controls how a Factory constructs and interprets DateTimes
type Config struct {
	// Clock supplies "now" for Create(nil)
	Clock clockwork.Clock

	// Location is the default interpretation for epoch values, partial
	// ISO strings and "now"
	Location *time.Location

	// Formatter renders Format templates
	Formatter Formatter

	// Logger receives engine diagnostics
	Logger *zap.Logger

	// ZoneCacheSize bounds the number of loaded timezones kept in memory
	ZoneCacheSize int

	// WeekStart is the day Weekday counts from
	WeekStart time.Weekday
}

const (
	DefaultZoneCacheSize = 32
	DefaultWeekStart     = time.Sunday
)

func DefaultConfig() Config {
	return Config{
		Clock:         clockwork.NewRealClock(),
		Location:      time.Local,
		Formatter:     StrftimeFormatter{},
		Logger:        zap.NewNop(),
		ZoneCacheSize: DefaultZoneCacheSize,
		WeekStart:     DefaultWeekStart,
	}
}
