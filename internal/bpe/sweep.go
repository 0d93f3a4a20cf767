package bpe

import "github.com/agentstation/tiktoken/internal/vocab"

// bufferSweep repeatedly scans the whole slice for the lowest-rank
// adjacent pair and merges it in place, shrinking the slice by one each
// time, until no pair in the pair vocabulary applies.
func bufferSweep(tokens []vocab.Token, pairs *vocab.PairVocab) []vocab.Token {
	buf := append([]vocab.Token(nil), tokens...)
	for {
		bestIdx := -1
		var bestRank vocab.Token
		for i := 0; i < len(buf)-1; i++ {
			result, ok := pairs.LookupPair(vocab.Pair{Left: buf[i], Right: buf[i+1]})
			if !ok {
				continue
			}
			if bestIdx == -1 || result < bestRank {
				bestIdx, bestRank = i, result
			}
		}
		if bestIdx == -1 {
			return buf
		}
		merged := append([]vocab.Token(nil), buf[:bestIdx]...)
		merged = append(merged, bestRank)
		merged = append(merged, buf[bestIdx+2:]...)
		buf = merged
	}
}
