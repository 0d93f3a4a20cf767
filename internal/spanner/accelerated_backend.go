package spanner

import (
	"bitbucket.org/creachadair/stringset"

	"github.com/agentstation/tiktoken/internal/lexer"
)

// acceleratedBackend adapts the DFA + post-processing engine of
// internal/lexer to the wordBackend interface. The engine already emits a
// complete, gap-aware Word/Gap partition of the segment, so matches only
// needs to filter the Word spans back out — wordsAndGaps' own gap
// synthesis reconstructs the rest identically because the two partitions
// agree by construction.
type acceleratedBackend struct {
	dfa *lexer.DFA
}

func (b *acceleratedBackend) matches(segment string) ([][2]int, error) {
	tokens, err := b.dfa.Lex(segment)
	if err != nil {
		return nil, err
	}
	spans := lexer.Run(segment, tokens)
	out := make([][2]int, 0, len(spans))
	for _, sp := range spans {
		if sp.Role == lexer.Word {
			out = append(out, [2]int{sp.Start, sp.End})
		}
	}
	return out, nil
}

// NewAccelerated builds a Spanner whose word phase runs the compiled DFA
// lexer instead of a regex engine.
func NewAccelerated(dfa *lexer.DFA, specials stringset.Set) *Spanner {
	return NewFromWordBackend(&acceleratedBackend{dfa: dfa}, specials)
}
