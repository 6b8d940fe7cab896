// Package transition provides the pure rate-limiting helpers that keep
// simulated vitals physiologically continuous. Every function here is
// stateless and deterministic.
package transition

import (
	"fmt"

	"github.com/ldurand/CardioFlow/internal/domain"
)

// StepToward moves current one bounded step toward target. When the remaining
// gap fits inside maxDelta the target is returned exactly, so repeated calls
// land on it without overshoot or oscillation.
func StepToward(current, target, maxDelta float64) (float64, error) {
	if maxDelta <= 0 {
		return 0, fmt.Errorf("%w: max delta must be > 0, got %g", domain.ErrInvalidArgument, maxDelta)
	}

	diff := target - current
	if diff <= maxDelta && diff >= -maxDelta {
		return target, nil
	}
	if diff > 0 {
		return current + maxDelta, nil
	}
	return current - maxDelta, nil
}

// Interpolate blends linearly between current and target. alpha is clamped to
// [0, 1], where 0 keeps current and 1 lands on target.
func Interpolate(current, target, alpha float64) float64 {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return current + (target-current)*alpha
}

// Progress maps elapsed time within a transition of the given total duration
// to [0, 1]. A non-positive duration counts as already complete.
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1.0
	}
	p := elapsed / duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// EaseInOut applies a smoothstep curve: slow at both ends, fast in the middle.
func EaseInOut(t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3.0 - 2.0*t)
}
