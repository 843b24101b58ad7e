package fire

import "errors"

// All simulator errors are pre-flight: validation completes before the step
// loop executes, and a failed run produces no partial output.
var (
	// ErrInvalidIgnitionCell flags an ignition coordinate outside grid bounds.
	ErrInvalidIgnitionCell = errors.New("ignition cell outside grid bounds")

	// ErrInvalidVegetationIndex flags a burnable vegetation class with no
	// corresponding intercept entry.
	ErrInvalidVegetationIndex = errors.New("vegetation class has no intercept entry")

	// ErrMalformedCoefficients flags a coefficient set missing required
	// entries or containing non-finite values.
	ErrMalformedCoefficients = errors.New("malformed spread coefficients")
)
