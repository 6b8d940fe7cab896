package domain

import "errors"

// Error taxonomy for the simulation core. All errors are raised synchronously
// to the immediate caller; nothing here is transient or retryable.
var (
	// ErrInvalidConfiguration indicates a scenario with non-positive numeric
	// fields. Raised at construction time, never later.
	ErrInvalidConfiguration = errors.New("cardioflow: invalid scenario configuration")

	// ErrInvalidArgument indicates a non-positive sampling rate, max delta,
	// or stream duration. Raised before any state mutation.
	ErrInvalidArgument = errors.New("cardioflow: invalid argument")

	// ErrUnsupportedScenario indicates a scenario name that is not in the
	// catalog and not a valid custom construction.
	ErrUnsupportedScenario = errors.New("cardioflow: unsupported scenario")
)
