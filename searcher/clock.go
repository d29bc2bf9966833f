package searcher

import "time"

// clock tracks the budget of one search. A zero budget never runs out.
type clock struct {
	start  time.Time
	budget time.Duration
}

func startClock(budget time.Duration) clock {
	return clock{start: time.Now(), budget: budget}
}

func (c clock) expired() bool {
	return c.budget > 0 && time.Since(c.start) >= c.budget
}

func (c clock) elapsed() time.Duration {
	return time.Since(c.start)
}
