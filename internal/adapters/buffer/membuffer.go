package buffer

import (
	"sync"

	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
)

// MemBuffer is a bounded in-memory sample buffer that preserves FIFO ordering.
// It sits between the runtime's producing loop and the sinks so a slow sink
// never stalls sample generation.
type MemBuffer struct {
	mu   sync.Mutex
	data []domain.HeartData
	cap  int
}

func NewMemBuffer(capacity int) *MemBuffer {
	return &MemBuffer{
		data: make([]domain.HeartData, 0, capacity),
		cap:  capacity,
	}
}

func (b *MemBuffer) Push(s domain.HeartData) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.data) >= b.cap {
		return false
	}
	b.data = append(b.data, s)
	return true
}

func (b *MemBuffer) PopBatch(max int) []domain.HeartData {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.data) == 0 {
		return nil
	}
	if max <= 0 || max > len(b.data) {
		max = len(b.data)
	}
	out := make([]domain.HeartData, max)
	copy(out, b.data[:max])
	b.data = append(b.data[:0], b.data[max:]...)
	return out
}

func (b *MemBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

var _ ports.SampleBuffer = (*MemBuffer)(nil)
