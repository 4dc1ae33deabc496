package cpu

import "time"

// epoch anchors the counter; time.Since reads the monotonic clock.
var epoch = time.Now()

// ReadCycleCounter returns a monotonic tick count in nanoseconds since
// package initialisation. It is meant for relative timing in benchmarks;
// absolute values carry no meaning.
func ReadCycleCounter() int64 {
	return int64(time.Since(epoch))
}

// CyclesSince returns the number of ticks elapsed since start.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToNanoseconds converts a tick count to nanoseconds. Ticks are
// nanoseconds already, so this is the identity; it keeps call sites
// independent of the counter's unit.
func CyclesToNanoseconds(cycles int64) int64 {
	return cycles
}
