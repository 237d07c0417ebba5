package state

import "fmt"

// InvariantBreach indicates a bug, not a caller-facing error: combat
// referencing a missing permanent id, a block assignment keyed off an
// unknown attacker, and similar "this cannot happen in correct use"
// conditions (§7). Recovered only in tests that exercise Breach itself.
type InvariantBreach struct {
	Message string
}

func (b InvariantBreach) Error() string { return b.Message }

// Breach panics with an InvariantBreach built from a printf-style
// message, mirroring the teacher's pattern of surfacing "should never
// happen" conditions loudly rather than masking them with a zero value.
func Breach(format string, args ...any) {
	panic(InvariantBreach{Message: fmt.Sprintf(format, args...)})
}
