// Package spanner implements text spanning (pre-tokenization): segmenting
// input text into Word/Special/Gap spans, either via a regex backend
// (the standard library's regexp, or regexp2 for backtracking) or an
// accelerated DFA backend.
package spanner

// Role tags a span with how it should be handled downstream.
type Role int

const (
	// RoleWord spans feed the BPE span encoder.
	RoleWord Role = iota
	// RoleSpecial spans are looked up directly in the special vocabulary.
	RoleSpecial
	// RoleGap spans are bytes the pattern did not match; no tokens emitted.
	RoleGap
)

func (r Role) String() string {
	switch r {
	case RoleWord:
		return "word"
	case RoleSpecial:
		return "special"
	case RoleGap:
		return "gap"
	default:
		return "unknown"
	}
}

// Span is a tagged, contiguous byte range of the input text.
type Span struct {
	Role       Role
	Start, End int // byte offsets into the original text, End exclusive
}

// Bytes returns the span's slice of text.
func (s Span) Bytes(text string) string { return text[s.Start:s.End] }

// Len returns the span's byte length.
func (s Span) Len() int { return s.End - s.Start }
