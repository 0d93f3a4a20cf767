package bpe

import "github.com/agentstation/tiktoken/internal/vocab"

// acBacktrackEncode is a trie-follow encoder with rank-aware backtracking,
// ported from the Aho-Corasick + backtracking span encoder of
// original_source's crates/wordchipper/src/encoders/token_span_encoder/
// span_encoders/bpe_backtrack_encoder.rs (itself credited there to
// github/rust-gems' bpe crate). No multi-pattern automaton library exists
// in the retrieved corpus, so the ground truth's AC-driven "longest token
// starting here" lookup is replaced by foldChain, which reconstructs the
// same answer directly from the pair vocabulary: the input is already
// exploded to one token per byte, so greedily folding forward from a
// position recovers every valid token reachable there, shortest to
// longest.
//
// A candidate is only accepted once isValidTokenPair confirms no
// lower-rank merge would have fired across the boundary with the token
// already on the stack. A rejected candidate first tries a shorter
// prefix from the same fold chain; once the chain is exhausted the
// position itself is marked unreachable and the previously accepted
// token is popped and retried, exactly mirroring the ground truth's
// bitfield-guided backtrack loop (tracked here in input-token units
// rather than byte offsets, since the input is already byte-exploded).
func acBacktrackEncode(tokens []vocab.Token, pairs *vocab.PairVocab) []vocab.Token {
	n := len(tokens)
	if n == 0 {
		return tokens
	}

	type placed struct {
		tok   vocab.Token
		pos   int
		chain []vocab.Token
		step  int
	}

	blocked := make([]bool, n+1)
	stack := make([]placed, 0, n)

	pos := 0
	chain := foldChain(tokens, pos, pairs)
	step := len(chain) - 1

	for pos < n {
		width := step + 1
		cand := chain[step]
		endPos := pos + width

		ok := !blocked[endPos]
		if ok && len(stack) > 0 {
			ok = isValidTokenPair(pairs, stack[len(stack)-1].tok, cand)
		}

		if ok {
			stack = append(stack, placed{tok: cand, pos: pos, chain: chain, step: step})
			pos = endPos
			if pos < n {
				chain = foldChain(tokens, pos, pairs)
				step = len(chain) - 1
			}
			continue
		}

		if step > 0 {
			step--
			continue
		}

		// No shorter candidate at this position: it is unreachable, and
		// the token that used to end here must be retried.
		blocked[pos] = true
		if len(stack) == 0 {
			break
		}
		prev := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pos = prev.pos
		chain = prev.chain
		step = prev.step
	}

	out := make([]vocab.Token, len(stack))
	for i, p := range stack {
		out[i] = p.tok
	}
	return out
}

// foldChain returns every token reachable by greedily merging
// tokens[pos:pos+k] left to right, for k = 1 up to the longest reachable
// merge starting at pos, in increasing-width order.
func foldChain(tokens []vocab.Token, pos int, pairs *vocab.PairVocab) []vocab.Token {
	chain := make([]vocab.Token, 1, 4)
	chain[0] = tokens[pos]
	cur := tokens[pos]
	for i := pos + 1; i < len(tokens); i++ {
		merged, ok := pairs.LookupPair(vocab.Pair{Left: cur, Right: tokens[i]})
		if !ok {
			break
		}
		cur = merged
		chain = append(chain, cur)
	}
	return chain
}

// isValidTokenPair checks whether token1 and token2 may sit adjacent to
// each other in a canonical BPE tokenization: it recursively unwinds both
// tokens' merge history looking for a pair rule that would have combined
// bytes across the token1/token2 boundary at a lower rank than any merge
// already reflected in either token, which would mean the boundary itself
// is not one canonical BPE would ever produce.
func isValidTokenPair(pairs *vocab.PairVocab, token1, token2 vocab.Token) bool {
	limit := vocab.NoToken
	for {
		if combined, ok := pairs.LookupPair(vocab.Pair{Left: token1, Right: token2}); ok && combined < limit {
			return false
		}
		if token1 > token2 {
			limit = token1
			token1 = splitSuffix(pairs, token1)
			if token1 == limit {
				limit = token2 + 1
				token2 = splitPrefix(pairs, token2)
				if token2+1 == limit {
					return true
				}
			}
		} else {
			limit = token2 + 1
			token2 = splitPrefix(pairs, token2)
			if token2+1 == limit {
				limit = token1
				token1 = splitSuffix(pairs, token1)
				if token1 == limit {
					return true
				}
			}
		}
	}
}

// splitSuffix returns the right half of t's recorded merge, or t itself
// if t is a leaf (a byte token, or one with no recorded split).
func splitSuffix(pairs *vocab.PairVocab, t vocab.Token) vocab.Token {
	if p, ok := pairs.Unfold(t); ok {
		return p.Right
	}
	return t
}

// splitPrefix returns the left half of t's recorded merge, or t itself if
// t is a leaf.
func splitPrefix(pairs *vocab.PairVocab, t vocab.Token) vocab.Token {
	if p, ok := pairs.Unfold(t); ok {
		return p.Left
	}
	return t
}
