// Package chrono wraps date and time computation behind a single immutable
// value type, DateTime, so application code never depends on the calendar
// engine that does the work. Every method returns a plain Go value or a
// new DateTime; the engine's own representation never leaves the package.
//
// Typical usage looks like:
//   - Create a DateTime from nothing (now), epoch milliseconds, a string or
//     a time.Time
//   - Derive new values with Add, Subtract, Set and SetTimezone
//   - Compare with IsBefore, IsAfter and Diff, passing either another
//     DateTime or any raw value Create accepts
//   - Render with Format, or export with ToDate and ValueOf
//
// Construction never fails. Unreadable input produces a DateTime whose
// IsValid reports false and whose Err says why; callers check validity
// before trusting derived values.
//
// A Factory holds the configuration: the clock that defines "now", the
// default location, the template Formatter and the first day of the week.
// The package-level Create uses a default Factory that SetDefault can
// replace.
//
// The examples/ directory contains a runnable scheduling example.
package chrono
