package bpe

import "github.com/agentstation/tiktoken/internal/vocab"

// Strategy selects which span-encoder algorithm Encode runs. All five
// produce identical output for any valid pair vocabulary; they trade off
// allocation pattern and concurrency behavior.
type Strategy int

const (
	// BufferSweep rescans the whole buffer for the best merge every
	// iteration. Simplest, quadratic, useful mainly as the reference
	// implementation other strategies are checked against.
	BufferSweep Strategy = iota
	// TailSweep is BufferSweep over the linked-list representation
	// instead of a slice; the single-thread default.
	TailSweep
	// MergeHeap uses a container/heap priority queue with generation
	// counters for lazy invalidation of stale entries.
	MergeHeap
	// PriorityMerge is MergeHeap's heap entries validated by comparing
	// recorded neighbor tokens instead of a mutable generation counter,
	// so a read-only heap view stays valid across concurrent encodes of
	// independent spans; the concurrent default.
	PriorityMerge
	// ACBacktrack places the longest candidate token at each position and
	// backtracks to shorter candidates when a boundary is not canonical.
	// It builds no Aho-Corasick automaton: candidates come only from
	// folding the input left to right through the pair vocabulary.
	ACBacktrack
)

func (s Strategy) String() string {
	switch s {
	case BufferSweep:
		return "buffer-sweep"
	case TailSweep:
		return "tail-sweep"
	case MergeHeap:
		return "merge-heap"
	case PriorityMerge:
		return "priority-merge"
	case ACBacktrack:
		return "ac-backtrack"
	default:
		return "unknown"
	}
}

// Encode merges an exploded byte-token sequence into its final token
// sequence using the given pair vocabulary and strategy.
func Encode(tokens []vocab.Token, pairs *vocab.PairVocab, strategy Strategy) []vocab.Token {
	if len(tokens) <= 1 {
		return tokens
	}
	switch strategy {
	case BufferSweep:
		return bufferSweep(tokens, pairs)
	case TailSweep:
		return tailSweep(tokens, pairs)
	case MergeHeap:
		return mergeHeapEncode(tokens, pairs)
	case PriorityMerge:
		return priorityMergeEncode(tokens, pairs)
	case ACBacktrack:
		return acBacktrackEncode(tokens, pairs)
	default:
		return tailSweep(tokens, pairs)
	}
}
