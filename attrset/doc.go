// Package attrset models the "colors" attached to vertices, edges, and
// graphs throughout diagcanon: unordered string-keyed maps of scalar
// values ("attribute sets"), plus a canonical byte encoding that makes two
// attribute sets with identical key/value pairs compare and hash equal
// regardless of insertion order.
//
// The source this package generalizes from used Python's native runtime
// dictionaries, whose values can be any hashable object. Go has no
// built-in sum type, so Value is a small tagged union over the scalar
// kinds diagcanon actually needs: strings, integers, floats, and bools.
// Set is a map from string keys to Value; Encode produces a deterministic,
// key-sorted byte string used both for equality/ordering and as a map key
// substitute (Go maps cannot key on other maps).
//
// Errors:
//
//	ErrUnhashableValue - a Value was constructed with an unsupported Kind.
package attrset
