package engine

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

type zoneCache = lruCache[*time.Location]

func loadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownTimezone, name, err)
	}
	return loc, nil
}

// Zone resolves an IANA zone name through the engine's location cache
func (e *Engine) Zone(name string) (*time.Location, error) {
	return e.zones.Get(name, loadZone)
}
