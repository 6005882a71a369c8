package types

import "time"

// Clock supplies the current time for future-order filtering. Injectable so
// tests can pin "now".
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used outside tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
