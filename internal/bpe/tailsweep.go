package bpe

import "github.com/agentstation/tiktoken/internal/vocab"

// tailSweep is the single-thread default. It runs the same repeated
// lowest-rank scan as bufferSweep but over the doubly linked node list, so
// a merge is an O(1) splice instead of an O(n) slice rebuild — the scan
// itself stays O(n) per merge, same asymptotic cost as the reference
// linked-list merge loop, minus its priority queue.
func tailSweep(tokens []vocab.Token, pairs *vocab.PairVocab) []vocab.Token {
	head := buildList(tokens)
	for {
		var best *node
		var bestRank vocab.Token
		for n := head; n != nil && n.next != nil; n = n.next {
			result, ok := rankPair(pairs, n)
			if !ok {
				continue
			}
			if best == nil || result < bestRank {
				best, bestRank = n, result
			}
		}
		if best == nil {
			break
		}
		right := best.next
		best.tok = bestRank
		best.next = right.next
		if right.next != nil {
			right.next.prev = best
		}
		best.generation++
	}
	return collect(head)
}
