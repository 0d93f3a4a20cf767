package vocab

import "bytes"

// SpanVocab maps non-empty byte spans to tokens and owns the byte
// vocabulary it was built from. It holds, at minimum, the 256 single-byte
// entries plus every multi-byte vocabulary entry.
type SpanVocab struct {
	bytes *ByteVocab
	toTok map[string]Token
	toSpan map[Token][]byte
}

// NewSpanVocab builds a SpanVocab from a raw span->token map. Any of the
// 256 single-byte entries missing from spans is filled in with the
// ordinal mapping b -> byteVocab.GetToken(b), per spec §4.4.
func NewSpanVocab(spans map[string]Token, byteVocab *ByteVocab) (*SpanVocab, error) {
	toTok := make(map[string]Token, len(spans)+256)
	toSpan := make(map[Token][]byte, len(spans)+256)
	for span, tok := range spans {
		if span == "" {
			return nil, &ConflictError{Component: "span", Reason: "empty byte span"}
		}
		toTok[span] = tok
		toSpan[tok] = []byte(span)
	}
	for b := 0; b < 256; b++ {
		key := string([]byte{byte(b)})
		if _, ok := toTok[key]; ok {
			continue
		}
		tok := byteVocab.GetToken(byte(b))
		toTok[key] = tok
		toSpan[tok] = []byte{byte(b)}
	}
	return &SpanVocab{bytes: byteVocab, toTok: toTok, toSpan: toSpan}, nil
}

// Bytes returns the byte vocabulary this span vocabulary is consistent with.
func (v *SpanVocab) Bytes() *ByteVocab { return v.bytes }

// LookupToken returns the token for an exact byte span, if present.
func (v *SpanVocab) LookupToken(span []byte) (Token, bool) {
	t, ok := v.toTok[string(span)]
	return t, ok
}

// Expansion returns the canonical byte expansion of a token, if it is a
// member of this span vocabulary.
func (v *SpanVocab) Expansion(t Token) ([]byte, bool) {
	b, ok := v.toSpan[t]
	return b, ok
}

// Len returns the number of distinct tokens in the span vocabulary
// (256 byte tokens plus every multi-byte entry).
func (v *SpanVocab) Len() int { return len(v.toSpan) }

// SpanPairs streams every (span, token) pair, including the 256 byte
// entries, in no particular order.
func (v *SpanVocab) SpanPairs(yield func(span []byte, tok Token) bool) {
	for span, tok := range v.toTok {
		if !yield([]byte(span), tok) {
			return
		}
	}
}

// DerivePairVocab builds the (token, token) -> token merge table implied by
// this span vocabulary, per spec §4.4's "Derivation of a pair vocabulary":
// for each non-byte token c with expansion s, the first split point
// p = 1..len(s)-1 where both s[:p] and s[p:] are themselves tokens fixes
// the merge rule (token(s[:p]), token(s[p:])) -> c.
func (v *SpanVocab) DerivePairVocab() (*PairVocab, error) {
	pairs := make(map[Pair]Token, v.Len())
	for tok, span := range v.toSpan {
		if v.bytes.IsByteToken(tok) {
			continue
		}
		left, right, ok := v.splitPoint(span)
		if !ok {
			return nil, &ConflictError{
				Component: "pair",
				Reason:    "no valid split found for token " + string(span),
			}
		}
		pairs[Pair{Left: left, Right: right}] = tok
	}
	return newPairVocab(pairs, v.bytes)
}

// splitPoint finds the first p in 1..len(span)-1 such that both halves are
// themselves tokens in this vocabulary, and returns their token IDs.
func (v *SpanVocab) splitPoint(span []byte) (left, right Token, ok bool) {
	for p := 1; p < len(span); p++ {
		l, lok := v.LookupToken(span[:p])
		if !lok {
			continue
		}
		r, rok := v.LookupToken(span[p:])
		if !rok {
			continue
		}
		return l, r, true
	}
	return 0, 0, false
}

// equalBytes reports whether a and b hold the same bytes.
func equalBytes(a, b []byte) bool { return bytes.Equal(a, b) }
