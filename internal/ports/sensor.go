package ports

import (
	"time"

	"github.com/ldurand/CardioFlow/internal/domain"
)

// Sensor is the abstract cardiac data source. The simulated generator is one
// implementation; a real-hardware sensor can satisfy the same capability set
// without engine changes.
type Sensor interface {
	// Read produces exactly one sample and advances the sensor's simulated
	// clock by tick.
	Read(tick time.Duration) (domain.HeartData, error)

	// SetScenario begins a gradual transition toward the given targets on the
	// next Read. Setting the already-active scenario is a no-op.
	SetScenario(cfg domain.ScenarioConfig) error

	// Reset clears any pending transition, places the current values exactly
	// on the active scenario's targets, and rewinds the simulated clock to 0.
	Reset()

	// CurrentScenario reports the scenario currently considered active.
	CurrentScenario() domain.ScenarioConfig
}
