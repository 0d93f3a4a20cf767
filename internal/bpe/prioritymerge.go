package bpe

import (
	"container/heap"

	"github.com/agentstation/tiktoken/internal/vocab"
)

// priEntry records the pair's token values at enqueue time instead of a
// generation counter: a popped entry is valid iff the left node and its
// current right neighbor still carry those exact values. This makes
// validity a pure read of each node's current state rather than a
// counter that a concurrent encode of the same list would need to
// serialize — the concurrent default encodes many independent spans in
// parallel goroutines, each with its own list, so the pair vocabulary
// (read-only) is the only state actually shared.
type priEntry struct {
	left      *node
	leftTok   vocab.Token
	rightTok  vocab.Token
	result    vocab.Token
	heapIndex int
}

type priPQ []*priEntry

func (pq priPQ) Len() int           { return len(pq) }
func (pq priPQ) Less(i, j int) bool { return pq[i].result < pq[j].result }
func (pq priPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIndex, pq[j].heapIndex = i, j
}
func (pq *priPQ) Push(x interface{}) {
	e := x.(*priEntry)
	e.heapIndex = len(*pq)
	*pq = append(*pq, e)
}
func (pq *priPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return e
}

func priorityMergeEncode(tokens []vocab.Token, pairs *vocab.PairVocab) []vocab.Token {
	head := buildList(tokens)
	pq := &priPQ{}
	heap.Init(pq)

	push := func(n *node) {
		result, ok := rankPair(pairs, n)
		if !ok {
			return
		}
		heap.Push(pq, &priEntry{left: n, leftTok: n.tok, rightTok: n.next.tok, result: result})
	}

	for n := head; n != nil && n.next != nil; n = n.next {
		push(n)
	}

	for pq.Len() > 0 {
		e := heap.Pop(pq).(*priEntry)
		left := e.left
		if left.next == nil || left.tok != e.leftTok || left.next.tok != e.rightTok {
			continue
		}
		right := left.next
		left.tok = e.result
		left.next = right.next
		if right.next != nil {
			right.next.prev = left
		}
		// Detach the folded node so entries that still name it as their
		// left side fail the adjacency check above.
		right.prev, right.next = nil, nil

		if left.prev != nil {
			push(left.prev)
		}
		if left.next != nil {
			push(left)
		}
	}

	return collect(head)
}
