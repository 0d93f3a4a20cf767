// Package lexer implements the span-lexer post-processing engine: it turns
// a longest-match DFA token stream, each token tagged with a Role, into
// the same Word/Gap span sequence the reference lookaround regex would
// produce. This is spec §4.2, "the subtle part of the fast path" — DFAs
// can't express `\s+(?!\S)` directly, so the engine reconstructs it from a
// one-token lookahead buffer and a handful of role-dependent splitting
// rules.
package lexer

// Role classifies a single DFA match so the post-processing engine knows
// how it interacts with a preceding buffered whitespace run.
type Role int

const (
	// RoleWhitespace is a horizontal-whitespace run; may need splitting.
	RoleWhitespace Role = iota
	// RolePunctuation is ` ?[^…]+…`; always absorbs one preceding space.
	RolePunctuation
	// RoleWord is a letter run; absorbs a preceding space only if the
	// first character of the run is itself a letter.
	RoleWord
	// RoleWordContraction is RoleWord plus contraction-prefix splitting
	// (cl100k/o200k family: 's/'t/'d/'m/'re/'ve/'ll).
	RoleWordContraction
	// RoleStandalone never absorbs whitespace (digits, contractions,
	// newlines).
	RoleStandalone
	// RoleGap is unrecognized bytes between DFA matches.
	RoleGap
)

// SpanRole is the role attached to engine output: every emitted span is
// either a word (participates in BPE) or a gap (unmatched bytes).
type SpanRole int

const (
	// Word spans feed the BPE span encoder.
	Word SpanRole = iota
	// Gap spans are bytes no DFA rule matched.
	Gap
)

// Span is one output span of the post-processing engine.
type Span struct {
	Start, End int
	Role       SpanRole
}

// Token is one match from the underlying DFA, already classified by role.
type Token struct {
	Start, End int
	Role       Role
}
