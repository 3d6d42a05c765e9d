package util

import (
	"time"
)

// ISOLayout matches JavaScript's Date.prototype.toISOString output.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Clock is injected wherever wall time leaks into a response or prompt.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

func ParseISO(s string) (time.Time, error) {
	return time.ParseInLocation(ISOLayout, s, time.UTC)
}
