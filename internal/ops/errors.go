package ops

import "errors"

var (
	// ErrSemiringType is returned when an operator's declared type
	// signature does not match its function domain, or when a lookup
	// requests an operator under the wrong domain.
	ErrSemiringType = errors.New("ops: operator type signature mismatch")

	// ErrUninitializedOperator is returned when an operator is used
	// before registration completed.
	ErrUninitializedOperator = errors.New("ops: operator not registered")

	// ErrOperatorExists is returned when registering a name that is
	// already taken. The registry is append-only.
	ErrOperatorExists = errors.New("ops: operator already registered")
)
