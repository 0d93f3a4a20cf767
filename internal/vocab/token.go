// Package vocab implements the unified vocabulary data model: a
// byte<->token bijection, a span->token dictionary, a pair merge table, and
// a set of special tokens, with the invariants that tie them together.
package vocab

// Token is a BPE token identifier. 32 bits is the typical width for the
// tiktoken-family vocabularies (cl100k_base tops out around 100k entries,
// o200k_base around 200k).
type Token uint32

// NoToken is the sentinel for "no token" — reserved, never assigned to a
// real vocabulary entry.
const NoToken Token = ^Token(0)

// Pair is an adjacent pair of tokens considered for merging.
type Pair struct {
	Left, Right Token
}
