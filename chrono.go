package chrono

import (
	"sync/atomic"
	"time"

	"github.com/kode4food/chrono/internal/engine"
)

// Factory is the single construction path for DateTimes. It owns the
// engine, and with it the clock that defines "now"
type Factory struct {
	config Config
	engine *engine.Engine
}

var defaultFactory atomic.Pointer[Factory]

func init() {
	defaultFactory.Store(NewFactory(DefaultConfig()))
}

// NewFactory creates a Factory with the given configuration. Zero fields
// take the values DefaultConfig would supply
func NewFactory(cfg Config) *Factory {
	def := DefaultConfig()
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	if cfg.Location == nil {
		cfg.Location = def.Location
	}
	if cfg.Formatter == nil {
		cfg.Formatter = def.Formatter
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	if cfg.ZoneCacheSize <= 0 {
		cfg.ZoneCacheSize = def.ZoneCacheSize
	}
	return &Factory{
		config: cfg,
		engine: engine.New(engine.Options{
			Clock:         cfg.Clock,
			Location:      cfg.Location,
			Formatter:     cfg.Formatter,
			Logger:        cfg.Logger,
			ZoneCacheSize: cfg.ZoneCacheSize,
			WeekStart:     cfg.WeekStart,
		}),
	}
}

// Default returns the Factory used by the package-level Create
func Default() *Factory {
	return defaultFactory.Load()
}

// SetDefault replaces the Factory used by the package-level Create and
// returns the previous one
func SetDefault(f *Factory) *Factory {
	return defaultFactory.Swap(f)
}

// Config returns the configuration the Factory was created with
func (f *Factory) Config() Config {
	return f.config
}

// Create constructs a DateTime using the default Factory
func Create(value any) DateTime {
	return Default().Create(value)
}

// Create constructs a DateTime from value. A nil value means now. Integers
// and floats are milliseconds since the Unix epoch, strings are parsed by
// the engine and a time.Time is taken as is, location included. Input that
// cannot be read produces a DateTime whose IsValid reports false; nothing
// is validated beyond that
func (f *Factory) Create(value any) DateTime {
	return DateTime{
		engine:  f.engine,
		instant: toInstant(f.engine, value),
	}
}

func toInstant(e *engine.Engine, value any) engine.Instant {
	switch v := value.(type) {
	case nil:
		return e.Now()
	case DateTime:
		return fromAdapter(e, v)
	case *DateTime:
		if v == nil {
			return e.Now()
		}
		return fromAdapter(e, *v)
	case string:
		return e.Parse(v)
	case time.Time:
		return e.FromTime(v)
	case *time.Time:
		if v == nil {
			return e.Now()
		}
		return e.FromTime(*v)
	case int:
		return e.FromMillis(int64(v))
	case int8:
		return e.FromMillis(int64(v))
	case int16:
		return e.FromMillis(int64(v))
	case int32:
		return e.FromMillis(int64(v))
	case int64:
		return e.FromMillis(v)
	case uint:
		return e.FromFloat(float64(v))
	case uint8:
		return e.FromMillis(int64(v))
	case uint16:
		return e.FromMillis(int64(v))
	case uint32:
		return e.FromMillis(int64(v))
	case uint64:
		return e.FromFloat(float64(v))
	case float32:
		return e.FromFloat(float64(v))
	case float64:
		return e.FromFloat(v)
	default:
		return e.Unsupported(value)
	}
}

// fromAdapter unwraps another DateTime through its exported time value,
// never through its engine handle
func fromAdapter(e *engine.Engine, d DateTime) engine.Instant {
	if !d.IsValid() {
		return d.instant
	}
	return e.FromTime(d.ToDate())
}
