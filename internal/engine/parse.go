package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// year, then optional month, day, hour, minute, second and fraction.
	// Matched strings are read as wall-clock time in the default location
	partialISO = regexp.MustCompile(
		`(?i)^(\d{4})[-/]?(\d{1,2})?[-/]?(\d{0,2})[T\s]*` +
			`(\d{1,2})?:?(\d{1,2})?:?(\d{1,2})?[.:]?(\d+)?$`,
	)

	zonedLayouts = []string{
		time.RFC3339Nano,
		time.RFC1123Z,
		time.RFC1123,
	}

	localLayouts = []string{
		"01/02/2006",
		"01/02/2006 15:04:05",
		"Jan 2, 2006",
		"January 2, 2006",
		"02-Jan-2006",
	}
)

// Parse reads s into an Instant. Unreadable strings produce an invalid
// Instant wrapping ErrUnparsable
func (e *Engine) Parse(s string) Instant {
	if !strings.HasSuffix(strings.ToUpper(s), "Z") {
		if m := partialISO.FindStringSubmatch(s); m != nil {
			return valid(e.fromParts(m[1:]))
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return valid(t)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, e.location); err == nil {
			return valid(t)
		}
	}
	e.logger.Debug("unparsable date string", zap.String("input", s))
	return invalid(fmt.Errorf("%w: %q", ErrUnparsable, s))
}

func (e *Engine) fromParts(parts []string) time.Time {
	year := atoi(parts[0], 0)
	month := atoi(parts[1], 1)
	day := atoi(parts[2], 1)
	hour := atoi(parts[3], 0)
	minute := atoi(parts[4], 0)
	second := atoi(parts[5], 0)
	nanos := fraction(parts[6])
	return time.Date(
		year, time.Month(month), day, hour, minute, second, nanos, e.location,
	)
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// fraction reads up to millisecond precision from the digits that follow
// the seconds separator
func fraction(s string) int {
	if s == "" {
		return 0
	}
	if len(s) > 3 {
		s = s[:3]
	}
	s += strings.Repeat("0", 3-len(s))
	return atoi(s, 0) * int(time.Millisecond)
}
