// Package bpe implements the span encoder: the algorithm that merges a
// byte-exploded span into its final token sequence by repeatedly applying
// the lowest-rank pair merge, per spec §5. It offers five interchangeable
// strategies; the tail-sweep and both heap strategies share the doubly
// linked merge list below, grounded on the reference merge loop.
package bpe

import "github.com/agentstation/tiktoken/internal/vocab"

// node is one position in the merge list. generation is bumped every time
// a node is folded into a merge result, so a stale heap entry referring to
// an old node can be detected and discarded in O(1) without scanning.
type node struct {
	tok        vocab.Token
	prev, next *node
	generation int
}

// buildList explodes tokens into a doubly linked list and returns its head.
func buildList(tokens []vocab.Token) *node {
	var head, prev *node
	for _, t := range tokens {
		n := &node{tok: t}
		if head == nil {
			head = n
		} else {
			n.prev = prev
			prev.next = n
		}
		prev = n
	}
	return head
}

// collect walks a merge list from its (possibly stale) head to the true
// first node, then reads off token values left to right.
func collect(head *node) []vocab.Token {
	for head != nil && head.prev != nil {
		head = head.prev
	}
	out := make([]vocab.Token, 0)
	for n := head; n != nil; n = n.next {
		out = append(out, n.tok)
	}
	return out
}

// rankPair looks up the merge rank (the resulting token's ID — lower IDs
// were learned earlier and always win ties, matching tiktoken's merge
// order) for the pair at left/left.next. ok is false if no merge applies.
func rankPair(pairs *vocab.PairVocab, left *node) (result vocab.Token, ok bool) {
	if left == nil || left.next == nil {
		return 0, false
	}
	return pairs.LookupPair(vocab.Pair{Left: left.tok, Right: left.next.tok})
}
