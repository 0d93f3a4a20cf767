package vocab

// SpanningConfig describes how a unified vocabulary's text should be cut
// into spans before BPE: a pattern descriptor (regex source, tagged basic
// or fancy/backtracking) or a named accelerated-lexer identifier.
type SpanningConfig struct {
	// PatternSource is the regex alternation used by the regex backend.
	PatternSource string
	// Fancy records that the backtracking engine was forced for this
	// vocabulary. It is not derived from the pattern: the regex backend
	// picks the backtracking engine on its own when PatternSource uses
	// lookaround.
	Fancy bool
	// AcceleratedLexer, if non-empty, names the registered encoding whose
	// compile-time DFA lexer stands in for PatternSource (r50k_base,
	// p50k_base and p50k_edit share the r50k pattern set).
	AcceleratedLexer string
}

// Unified is the aggregate vocabulary: byte, span, pair and special
// vocabularies plus the spanning configuration, verified internally
// consistent at construction and immutable afterward.
type Unified struct {
	Byte     *ByteVocab
	Span     *SpanVocab
	Pair     *PairVocab
	Special  *SpecialVocab
	Spanning SpanningConfig

	// dict is the unified T -> []byte dictionary used by the decoder:
	// byte entries, multi-byte span entries, and special entries. Pair
	// vocabulary entries are reconstructed on demand by the decoder's
	// stack-based unfolder rather than precomputed here, since most of
	// them are never looked up directly during a given decode.
	dict map[Token][]byte
}

// New assembles and validates a Unified vocabulary.
func New(byteVocab *ByteVocab, span *SpanVocab, pair *PairVocab, special *SpecialVocab, spanning SpanningConfig) (*Unified, error) {
	if span.Bytes() != byteVocab && !sameByteVocab(span.Bytes(), byteVocab) {
		return nil, &ConflictError{Component: "unified", Reason: "span vocabulary byte vocab does not match"}
	}
	if pair.Bytes() != byteVocab && !sameByteVocab(pair.Bytes(), byteVocab) {
		return nil, &ConflictError{Component: "unified", Reason: "pair vocabulary byte vocab does not match"}
	}

	pairTokens := pair.Tokens()
	var spanCount int
	span.SpanPairs(func(_ []byte, tok Token) bool {
		spanCount++
		if !pairTokens[tok] {
			return false
		}
		return true
	})
	if spanCount != span.Len() {
		return nil, &ConflictError{Component: "unified", Reason: "span and pair vocabularies disagree on token set"}
	}

	specialTokens := special.Tokens()
	for t := range specialTokens {
		if _, ok := span.Expansion(t); ok {
			return nil, &ConflictError{Component: "unified", Reason: "special token id collides with an ordinary token"}
		}
	}

	dict := make(map[Token][]byte, span.Len()+special.Len())
	span.SpanPairs(func(s []byte, tok Token) bool {
		cp := make([]byte, len(s))
		copy(cp, s)
		dict[tok] = cp
		return true
	})
	for t, s := range special.toSpan {
		dict[t] = []byte(s)
	}

	return &Unified{
		Byte:     byteVocab,
		Span:     span,
		Pair:     pair,
		Special:  special,
		Spanning: spanning,
		dict:     dict,
	}, nil
}

// sameByteVocab compares two byte vocabularies by content rather than
// identity, since callers may legitimately construct the "same" byte
// vocabulary twice (e.g. once for the span vocab, once for a pair vocab
// loaded from a separate file section).
func sameByteVocab(a, b *ByteVocab) bool {
	if a == b {
		return true
	}
	for i := 0; i < 256; i++ {
		if a.byteToToken[i] != b.byteToToken[i] {
			return false
		}
	}
	return true
}

// Dictionary returns the direct (non-merge) T -> []byte mapping: byte
// tokens, multi-byte span tokens, and special tokens. The decoder falls
// back to the pair vocabulary for anything not found here.
func (u *Unified) Dictionary() map[Token][]byte { return u.dict }

// Expand returns the byte expansion of a single token from the unified
// dictionary (byte, span and special tokens). It does not consult the
// pair table: a token missing from the dictionary reports false.
func (u *Unified) Expand(t Token) ([]byte, bool) {
	if b, ok := u.dict[t]; ok {
		return b, true
	}
	return nil, false
}
