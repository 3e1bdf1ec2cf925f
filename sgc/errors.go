package sgc

import "errors"

// ErrMalformedRequest indicates a Request violates the §6 calling
// convention invariants (e.g. len(Lab) != Nv, or Ptn's final entry isn't 0).
var ErrMalformedRequest = errors.New("sgc: malformed request")
