package bpe

import (
	"container/heap"

	"github.com/agentstation/tiktoken/internal/vocab"
)

// heapEntry is a candidate merge, grounded on the reference mergeNode:
// the node to its left records its own generation at enqueue time so a
// pop can cheaply tell whether either side of the pair has since been
// folded into a different merge.
type heapEntry struct {
	left        *node
	leftGen     int
	rightGen    int
	result      vocab.Token
	heapIndex   int
}

type mergePQ []*heapEntry

func (pq mergePQ) Len() int            { return len(pq) }
func (pq mergePQ) Less(i, j int) bool  { return pq[i].result < pq[j].result }
func (pq mergePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIndex, pq[j].heapIndex = i, j
}
func (pq *mergePQ) Push(x interface{}) {
	e := x.(*heapEntry)
	e.heapIndex = len(*pq)
	*pq = append(*pq, e)
}
func (pq *mergePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return e
}

// mergeHeapEncode pushes every valid adjacent pair into a min-heap keyed
// by merge rank, then pops the best merge each round. A popped entry is
// skipped if either neighbor's generation has advanced since it was
// queued — the left node was folded into an earlier merge, or its right
// neighbor was replaced.
func mergeHeapEncode(tokens []vocab.Token, pairs *vocab.PairVocab) []vocab.Token {
	head := buildList(tokens)
	pq := &mergePQ{}
	heap.Init(pq)

	push := func(n *node) {
		result, ok := rankPair(pairs, n)
		if !ok {
			return
		}
		heap.Push(pq, &heapEntry{left: n, leftGen: n.generation, rightGen: n.next.generation, result: result})
	}

	for n := head; n != nil && n.next != nil; n = n.next {
		push(n)
	}

	for pq.Len() > 0 {
		e := heap.Pop(pq).(*heapEntry)
		left := e.left
		if left.next == nil || left.generation != e.leftGen || left.next.generation != e.rightGen {
			continue
		}
		right := left.next
		left.tok = e.result
		left.next = right.next
		if right.next != nil {
			right.next.prev = left
		}
		right.generation++
		left.generation++

		if left.prev != nil {
			push(left.prev)
		}
		if left.next != nil {
			push(left)
		}
	}

	return collect(head)
}
