// File: errors.go — sentinel errors for the canon package.
//
// Error policy: sentinels are never stringified with call-site detail at
// definition; context is always attached with fmt.Errorf's %w, following
// the teacher's builder package convention. Callers branch with errors.Is.

package canon

import "errors"

// ErrInvalidAttribute indicates an attribute value could not be encoded
// (not hashable/comparable), surfaced from attrset.Set.Encode.
var ErrInvalidAttribute = errors.New("canon: attribute value not hashable/comparable")

// ErrInvalidVertex indicates the input graph's vertex identifiers are not
// drawn from an ordered, hashable domain, preventing a stable zero-indexing.
var ErrInvalidVertex = errors.New("canon: vertex identifiers not totally ordered")

// ErrSGCFailure indicates the underlying simple-graph canonicalizer (package
// sgc) failed or returned a malformed result; its diagnostic is wrapped.
var ErrSGCFailure = errors.New("canon: simple-graph canonicalizer failed")

// ErrInternal indicates an invariant this package relies on was violated
// (e.g. a restricted automorphism was not a bijection on [0,n)). Never
// raised by user input alone; treated as a bug.
var ErrInternal = errors.New("canon: invariant violated")
