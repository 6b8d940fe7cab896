package ports

import "time"

// StreamPolicy controls buffering between the sample producer and the sinks.
type StreamPolicy struct {
	MaxBufferLen  int
	MaxBatchSize  int
	FlushInterval time.Duration

	OnBufferFull string // "block", "drop"
}
