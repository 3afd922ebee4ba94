package clock

import "time"

// TimestampLayout formats the review start time.
const TimestampLayout = "2006-01-02 15:04:05"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Stamp returns the current local time in TimestampLayout.
func Stamp() string { return Now().Format(TimestampLayout) }
