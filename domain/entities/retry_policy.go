package entities

import "time"

// RetryPolicy bounds a click-and-confirm retry loop. Intervals are consumed
// in order between attempts; once the sequence is exhausted the last
// interval repeats until Timeout ends the whole loop.
type RetryPolicy struct {
	// Timeout is the overall budget for all attempts combined.
	Timeout time.Duration

	// AttemptTimeout is how long a single attempt waits for the
	// confirmation element before the attempt counts as dropped.
	AttemptTimeout time.Duration

	// Intervals are the delays inserted before retry attempts.
	Intervals []time.Duration
}

// DefaultSubmitRetryPolicy - retry budget for a submit whose first clicks
// may be dropped by a backend readiness race.
func DefaultSubmitRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Timeout:        5000 * time.Millisecond,
		AttemptTimeout: 300 * time.Millisecond,
		Intervals: []time.Duration{
			100 * time.Millisecond,
			100 * time.Millisecond,
			200 * time.Millisecond,
			300 * time.Millisecond,
			500 * time.Millisecond,
		},
	}
}

// IntervalAt - returns the delay before retry attempt n (zero-based).
func (p RetryPolicy) IntervalAt(n int) time.Duration {
	if len(p.Intervals) == 0 {
		return 0
	}
	if n >= len(p.Intervals) {
		return p.Intervals[len(p.Intervals)-1]
	}
	return p.Intervals[n]
}
