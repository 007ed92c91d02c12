// internal/utils/clock.go
package utils

import "time"

// Clock — источник календарного времени.
type Clock interface {
	Now() time.Time
}

// WallClock читает системное время.
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

// FixedClock возвращает заданный момент; Advance сдвигает его вперёд.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Advance сдвигает часы на d.
func (c *FixedClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// Stamp сворачивает календарное время в сравнимое число вида YYYYMMDDhhmm.
func Stamp(t time.Time) int64 {
	return int64(t.Year())*100000000 +
		int64(t.Month())*1000000 +
		int64(t.Day())*10000 +
		int64(t.Hour())*100 +
		int64(t.Minute())
}
