package dashboard

import "time"

// Clock supplies the aggregation's notion of "now". Injecting it keeps
// every computation deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
