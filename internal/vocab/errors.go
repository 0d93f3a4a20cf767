package vocab

import "fmt"

// ConflictError reports an inconsistency discovered while assembling a
// vocabulary: a byte vocabulary that isn't a bijection, a pair table that
// disagrees with the span table it was derived from, or a special token
// that collides with an ordinary one.
type ConflictError struct {
	Component string // "byte", "span", "pair", "special", "unified"
	Reason    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("vocab conflict in %s vocabulary: %s", e.Component, e.Reason)
}

// OutOfRangeError reports a token ID loaded from a vocabulary file that
// does not fit in the Token type's range.
type OutOfRangeError struct {
	ID uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("token id %d exceeds token range", e.ID)
}
