package vocab

// PairVocab is the merge table (token, token) -> token learned by BPE
// training. Rank is the target token's ID: lower rank merges earlier.
type PairVocab struct {
	bytes *ByteVocab
	merge map[Pair]Token
	// isMergeResult records every token that is the target of some merge;
	// construction uses it for the acyclicity check.
	isMergeResult map[Token]bool
	// reverse supports the stack-based decoder: given a merge result,
	// recover the pair it folds.
	reverse map[Token]Pair
}

// newPairVocab validates and wraps a raw pair map. Invariants enforced
// (spec §3, Pair vocabulary):
//
//   - no entry's target c also appears in the byte vocabulary;
//   - the map is acyclic: every target's rank (its own token ID) is
//     greater than the rank of either operand that is itself a merge
//     result — equivalently, no entry's left/right operand is a c from a
//     *later* entry, since ranks here are just token IDs.
func newPairVocab(merge map[Pair]Token, byteVocab *ByteVocab) (*PairVocab, error) {
	isMergeResult := make(map[Token]bool, len(merge))
	for _, c := range merge {
		if byteVocab.IsByteToken(c) {
			return nil, &ConflictError{Component: "pair", Reason: "merge target collides with a byte token"}
		}
		isMergeResult[c] = true
	}
	for pair, c := range merge {
		if isMergeResult[pair.Left] && pair.Left >= c {
			return nil, &ConflictError{Component: "pair", Reason: "merge table is cyclic: left operand outranks its target"}
		}
		if isMergeResult[pair.Right] && pair.Right >= c {
			return nil, &ConflictError{Component: "pair", Reason: "merge table is cyclic: right operand outranks its target"}
		}
	}
	cp := make(map[Pair]Token, len(merge))
	reverse := make(map[Token]Pair, len(merge))
	for k, v := range merge {
		cp[k] = v
		reverse[v] = k
	}
	return &PairVocab{bytes: byteVocab, merge: cp, isMergeResult: isMergeResult, reverse: reverse}, nil
}

// NewPairVocab builds and validates a PairVocab from a raw (token,token)->token
// map supplied directly (as opposed to derived from a span vocabulary).
func NewPairVocab(merge map[Pair]Token, byteVocab *ByteVocab) (*PairVocab, error) {
	return newPairVocab(merge, byteVocab)
}

// Bytes returns the byte vocabulary this pair vocabulary is consistent with.
func (v *PairVocab) Bytes() *ByteVocab { return v.bytes }

// LookupPair returns the merge result for an adjacent token pair, if any.
func (v *PairVocab) LookupPair(p Pair) (Token, bool) {
	t, ok := v.merge[p]
	return t, ok
}

// Len returns the number of merge rules.
func (v *PairVocab) Len() int { return len(v.merge) }

// Unfold returns the pair that folds into merge result t, if t is in fact
// a merge result. Used by the stack-based token decoder to expand a token
// one merge level at a time down to byte tokens.
func (v *PairVocab) Unfold(t Token) (Pair, bool) {
	p, ok := v.reverse[t]
	return p, ok
}

// Tokens returns the full token set reachable via this pair vocabulary:
// every byte token plus every merge target. Used by unified-vocabulary
// construction to check that span and pair vocabularies agree.
func (v *PairVocab) Tokens() map[Token]bool {
	set := make(map[Token]bool, len(v.merge)+256)
	for b := 0; b < 256; b++ {
		set[v.bytes.GetToken(byte(b))] = true
	}
	for _, c := range v.merge {
		set[c] = true
	}
	return set
}
