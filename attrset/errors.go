package attrset

import "errors"

// Sentinel errors for the attrset package.
var (
	// ErrUnhashableValue indicates a Value carries a Kind this package
	// does not know how to encode deterministically.
	ErrUnhashableValue = errors.New("attrset: value is not hashable/comparable")
)
