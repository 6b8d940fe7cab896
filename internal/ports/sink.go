package ports

import "github.com/ldurand/CardioFlow/internal/domain"

// Sink consumes ordered batches of samples and delivers them to a downstream
// destination (console, database, broker). Sinks never feed back into the core.
type Sink interface {
	WriteBatch(samples []domain.HeartData) error
	Name() string
}
