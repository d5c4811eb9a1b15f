package internal

import "github.com/pkg/errors"

// Threading errors up through the location walk, the splits, and the flip
// cascade would add a ton of complexity to the code. Instead, we use panics,
// and the public API recovers to convert to an error.

// The error kinds the engine can surface. Everything that aborts a batch
// wraps exactly one of these, so callers discriminate with errors.Cause.
var (
	// An inserted point coincides with an already-inserted point, either
	// exactly or within Tolerance. Duplicates are rejected rather than
	// merged so that input indices and mesh vertices stay in bijection.
	ErrDuplicatePoint = errors.New("duplicate point")

	// Fewer than three non-collinear points were supplied, so there is no
	// triangle to output.
	ErrDegenerateInput = errors.New("degenerate input")

	// A predicate or mesh invariant was violated. With exact arithmetic this
	// should be unreachable; if it fires, it is a bug, not a bad input.
	ErrNumericalInconsistency = errors.New("numerical inconsistency")
)

// delaunayError marks panics raised by fatal, so that the recover handler
// can tell them apart from genuine panics, which are re-raised.
type delaunayError struct {
	error
}

// Panic with an error wrapping one of the kinds above.
func fatal(kind error, format string, args ...interface{}) {
	panic(delaunayError{errors.Wrapf(kind, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if derr, ok := r.(delaunayError); ok {
			return derr.error
		}
		panic(r)
	}
	return nil
}
