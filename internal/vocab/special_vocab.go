package vocab

import "bitbucket.org/creachadair/stringset"

// SpecialVocab is the span<->token mapping for markers that bypass BPE
// entirely, such as "<|endoftext|>". It is disjoint from the ordinary
// span vocabulary: construction of a UnifiedVocab rejects any overlap.
type SpecialVocab struct {
	toTok  map[string]Token
	toSpan map[Token]string
	strs   stringset.Set
}

// NewSpecialVocab builds a SpecialVocab from a string->token map.
func NewSpecialVocab(specials map[string]Token) (*SpecialVocab, error) {
	toTok := make(map[string]Token, len(specials))
	toSpan := make(map[Token]string, len(specials))
	strs := stringset.New()
	for s, t := range specials {
		if s == "" {
			return nil, &ConflictError{Component: "special", Reason: "empty special token string"}
		}
		if _, dup := toSpan[t]; dup {
			return nil, &ConflictError{Component: "special", Reason: "duplicate special token id"}
		}
		toTok[s] = t
		toSpan[t] = s
		strs.Add(s)
	}
	return &SpecialVocab{toTok: toTok, toSpan: toSpan, strs: strs}, nil
}

// LookupToken returns the token for a special string, if present.
func (v *SpecialVocab) LookupToken(s string) (Token, bool) {
	t, ok := v.toTok[s]
	return t, ok
}

// LookupSpan returns the special string for a token, if present.
func (v *SpecialVocab) LookupSpan(t Token) (string, bool) {
	s, ok := v.toSpan[t]
	return s, ok
}

// Strings returns the set of special-token strings, for building the
// spanner's special-matching lexer.
func (v *SpecialVocab) Strings() stringset.Set { return v.strs }

// Tokens returns the set of all special token IDs.
func (v *SpecialVocab) Tokens() map[Token]bool {
	set := make(map[Token]bool, len(v.toSpan))
	for t := range v.toSpan {
		set[t] = true
	}
	return set
}

// Len returns the number of special tokens.
func (v *SpecialVocab) Len() int { return len(v.toTok) }
