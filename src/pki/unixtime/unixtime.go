// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package unixtime

import "time"

// UnixTime counts non-leap seconds since the Unix epoch,
// January 1, 1970 00:00:00 UTC.
//
// Values are arbitrary points in time, past or future; only [Now] is
// tied to the system clock. Ordering is the numeric ordering of the
// underlying integer and is total.
type UnixTime uint64

// Now returns the current time read fresh from the system clock.
// It cannot fail: the epoch has passed on every system this code runs on.
func Now() UnixTime {
	return UnixTime(time.Now().Unix())
}

// SinceEpoch converts a duration relative to the Unix epoch into a
// UnixTime, truncating sub-second precision (not rounding).
//
// A negative duration would denote a pre-epoch instant, which this
// design treats as a caller error; such values saturate at zero.
func SinceEpoch(d time.Duration) UnixTime {
	if d < 0 {
		return 0
	}
	return UnixTime(d / time.Second)
}

// AsSeconds returns the raw count of seconds since the epoch, for
// comparison against certificate validity bounds.
func (t UnixTime) AsSeconds() uint64 { return uint64(t) }
