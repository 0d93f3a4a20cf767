package bpe

import (
	"testing"

	"github.com/agentstation/tiktoken/internal/vocab"
)

// buildMergeVocab builds the 256 identity byte tokens plus a small merge chain:
// "th" = 300, "the" = 301, so Encode on "the" should fold down to a
// single token regardless of strategy.
func buildMergeVocab(t *testing.T) *vocab.PairVocab {
	t.Helper()
	var arr [256]vocab.Token
	for b := 0; b < 256; b++ {
		arr[b] = vocab.Token(b)
	}
	byteVocab, err := vocab.NewByteVocabFromArray(arr)
	if err != nil {
		t.Fatalf("NewByteVocabFromArray: %v", err)
	}
	merge := map[vocab.Pair]vocab.Token{
		{Left: vocab.Token('t'), Right: vocab.Token('h')}: 300,
		{Left: vocab.Token(300), Right: vocab.Token('e')}: 301,
	}
	pairVocab, err := vocab.NewPairVocab(merge, byteVocab)
	if err != nil {
		t.Fatalf("NewPairVocab: %v", err)
	}
	return pairVocab
}

// buildCompetingRankVocab builds the 256 identity byte tokens plus two
// merges that compete for the same middle byte: (a,b) -> 310 and
// (b,d) -> 305. Since 305 < 310, canonical BPE always merges (b,d) first
// regardless of scan order, so "abd" must fold to [a, 305], never [310, d].
func buildCompetingRankVocab(t *testing.T) *vocab.PairVocab {
	t.Helper()
	var arr [256]vocab.Token
	for b := 0; b < 256; b++ {
		arr[b] = vocab.Token(b)
	}
	byteVocab, err := vocab.NewByteVocabFromArray(arr)
	if err != nil {
		t.Fatalf("NewByteVocabFromArray: %v", err)
	}
	merge := map[vocab.Pair]vocab.Token{
		{Left: vocab.Token('a'), Right: vocab.Token('b')}: 310,
		{Left: vocab.Token('b'), Right: vocab.Token('d')}: 305,
	}
	pairVocab, err := vocab.NewPairVocab(merge, byteVocab)
	if err != nil {
		t.Fatalf("NewPairVocab: %v", err)
	}
	return pairVocab
}

func TestEncodeStrategiesAgreeUnderCompetingRanks(t *testing.T) {
	// acBacktrackEncode used to greedily take the first valid adjacent
	// pair it saw scanning left to right, which would fold (a,b) before
	// ever considering the lower-rank (b,d) — producing [310, d] instead
	// of the canonical [a, 305]. This pins all five strategies to the
	// same, rank-correct answer.
	pairVocab := buildCompetingRankVocab(t)
	strategies := []Strategy{BufferSweep, TailSweep, MergeHeap, PriorityMerge, ACBacktrack}
	want := []vocab.Token{vocab.Token('a'), 305}

	for _, strat := range strategies {
		got := Encode(explode("abd"), pairVocab, strat)
		if !tokensEqual(got, want) {
			t.Errorf("%s.Encode(%q) = %v, want %v", strat, "abd", got, want)
		}
	}
}

func explode(s string) []vocab.Token {
	out := make([]vocab.Token, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = vocab.Token(s[i])
	}
	return out
}

func TestEncodeStrategiesAgree(t *testing.T) {
	pairVocab := buildMergeVocab(t)
	strategies := []Strategy{BufferSweep, TailSweep, MergeHeap, PriorityMerge, ACBacktrack}

	cases := []struct {
		input string
		want  []vocab.Token
	}{
		{input: "the", want: []vocab.Token{301}},
		{input: "them", want: []vocab.Token{301, vocab.Token('m')}},
		{input: "cat", want: explode("cat")},
	}

	for _, tc := range cases {
		for _, strat := range strategies {
			got := Encode(explode(tc.input), pairVocab, strat)
			if !tokensEqual(got, tc.want) {
				t.Errorf("%s.Encode(%q) = %v, want %v", strat, tc.input, got, tc.want)
			}
		}
	}
}

func tokensEqual(a, b []vocab.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
