// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit local timezone is prohibited.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToMilli converts a time to the millisecond UNIX timestamp stored in the
// database.
func ToMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// ToMilliPtr converts an optional time, keeping nil as nil.
func ToMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// FromMilli converts a stored millisecond UNIX timestamp back to a UTC
// time.
func FromMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FromMilliPtr converts an optional stored timestamp, keeping nil as nil.
func FromMilliPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}
