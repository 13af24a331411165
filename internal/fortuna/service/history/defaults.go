package history

import "time"

const (
	recorderFlushSize     = 100
	recorderFlushInterval = 10 * time.Second
	recorderRPS           = 10

	importChunkSize = 10_000
)
