// File: set.go
// Role: Set is the unordered key->Value attribute bag attached to every
// vertex, edge, and graph. Its canonical byte encoding (Encode) is the
// single source of truth for equality, ordering, and hashing throughout
// diagcanon - two Sets with identical pairs produce byte-identical
// encodings regardless of map iteration order.

package attrset

import (
	"bytes"
	"sort"
	"strconv"
)

// Set is an unordered mapping from string keys to Value. The zero value
// is a valid empty set.
type Set map[string]Value

// New returns an empty Set with capacity hint n.
func New(n int) Set {
	return make(Set, n)
}

// Clone returns a shallow copy of s; Values are immutable so a shallow
// copy is a full logical copy.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Has reports whether key is present.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Matches reports whether s has key set to exactly value - the predicate
// behind a partition.SortCondition.
func (s Set) Matches(key string, value Value) bool {
	v, ok := s[key]
	return ok && v.Equal(value)
}

// sortedKeys returns s's keys in ascending order.
func (s Set) sortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode produces s's canonical byte string: key-sorted (key,value) pairs,
// each self-delimiting. Equal sets (regardless of iteration order) always
// produce identical output; this is the hash/equality key used everywhere
// a Set must be compared or stored as a map key.
func (s Set) Encode() ([]byte, error) {
	var buf bytes.Buffer
	keys := s.sortedKeys()
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(k))
		buf.WriteByte(':')
		enc, err := s[k].encode(nil)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MustEncode is Encode without the error return, for call sites that have
// already validated every Value's Kind (e.g. values constructed solely via
// this package's own constructors).
func (s Set) MustEncode() []byte {
	b, err := s.Encode()
	if err != nil {
		panic(err)
	}
	return b
}

// Equal reports whether s and o encode identically.
func (s Set) Equal(o Set) bool {
	sb, err := s.Encode()
	if err != nil {
		return false
	}
	ob, err := o.Encode()
	if err != nil {
		return false
	}
	return bytes.Equal(sb, ob)
}

// Less defines the total order over Sets used to rank color cells within
// an order tier (spec: "compare by key-sorted (key,value) tuples
// lexicographically"). It is exactly lexicographic comparison of Encode's
// output.
func (s Set) Less(o Set) bool {
	sb, _ := s.Encode()
	ob, _ := o.Encode()
	return bytes.Compare(sb, ob) < 0
}

// With returns a copy of s with key set to value, leaving s unmodified.
func (s Set) With(key string, value Value) Set {
	out := s.Clone()
	if out == nil {
		out = make(Set, 1)
	}
	out[key] = value
	return out
}

// Merge returns a new Set containing every pair of s, overridden/extended
// by every pair of o. Neither input is mutated.
func (s Set) Merge(o Set) Set {
	out := make(Set, len(s)+len(o))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range o {
		out[k] = v
	}
	return out
}
