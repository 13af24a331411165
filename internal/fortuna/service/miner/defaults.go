package miner

import "time"

const (
	defaultPollInterval  = 10 * time.Second
	defaultRetryInterval = 10 * time.Second
	defaultCooldown      = 5 * time.Second

	historyRecordTimeout = 100 * time.Millisecond

	// validityWindow is the length of the settlement transaction validity interval.
	validityWindow = 180 * time.Second
	// validityMargin moves the window start before the current minute.
	validityMargin = time.Minute
)
