// Package time contains time related helpers
package time

import "time"

// Micros returns d in whole microseconds, the unit run timings are stored in
func Micros(d time.Duration) int64 { return d.Microseconds() }

// Since returns now minus hours, clamping non-positive hours to def
func Since(now time.Time, hours, def int) time.Time {
	if hours <= 0 {
		hours = def
	}
	return now.Add(-time.Duration(hours) * time.Hour)
}

// UTC returns t in UTC truncated to microseconds, matching Postgres timestamptz precision
func UTC(t time.Time) time.Time { return t.UTC().Truncate(time.Microsecond) }
