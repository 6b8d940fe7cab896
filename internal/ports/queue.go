package ports

import "github.com/ldurand/CardioFlow/internal/domain"

// SampleBuffer is the bounded FIFO that decouples the producing loop from the
// sinks when the runtime paces a live feed.
type SampleBuffer interface {
	Push(s domain.HeartData) bool
	PopBatch(max int) []domain.HeartData
	Len() int
}
