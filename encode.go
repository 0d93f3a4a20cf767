package tiktoken

import (
	"github.com/agentstation/tiktoken/internal/bpe"
	"github.com/agentstation/tiktoken/internal/spanner"
	"github.com/agentstation/tiktoken/internal/vocab"
)

// EncodeResult is the result of Encode. A disallowed special token is not
// silently folded into the word phase: it stops encoding where it starts,
// the way a caller enforcing an allow-list expects. Stop is -1 when every
// byte of the input was consumed; otherwise it is the byte offset of the
// special token that halted encoding, and Tokens holds everything encoded
// before it.
type EncodeResult struct {
	Tokens []vocab.Token
	Stop   int
}

// IsComplete reports whether Encode consumed the whole input.
func (r EncodeResult) IsComplete() bool { return r.Stop < 0 }

// Encode tokenizes text. allowedSpecial names the special strings that
// may appear literally in text and be encoded as their special token. Any
// other occurrence of a registered special string is disallowed: encoding
// stops at that offset and returns everything encoded so far, rather than
// running the disallowed special's bytes through the word phase — the
// caller asked for that string to not appear, and silently re-tokenizing
// it as ordinary text would let it slip through anyway under a different
// token sequence.
func (tz *Tokenizer) Encode(text string, allowedSpecial map[string]bool) (EncodeResult, error) {
	out := make([]vocab.Token, 0, len(text)/3)
	stop := -1
	err := tz.span.ForEachSplitSpan(text, func(sp spanner.Span) bool {
		switch sp.Role {
		case spanner.RoleSpecial:
			s := sp.Bytes(text)
			if allowedSpecial[s] {
				if t, ok := tz.uni.Special.LookupToken(s); ok {
					out = append(out, t)
					return true
				}
			}
			stop = sp.Start
			return false
		case spanner.RoleWord:
			out = append(out, tz.encodeWord(sp.Bytes(text))...)
		case spanner.RoleGap:
			// Unmatched bytes carry no token: spec §4.1's Gap role.
		}
		return true
	})
	if err != nil {
		return EncodeResult{}, err
	}
	return EncodeResult{Tokens: out, Stop: stop}, nil
}

// encodeWord runs the span encoder over one word span, consulting and
// populating the result cache first.
func (tz *Tokenizer) encodeWord(span string) []vocab.Token {
	if cached, ok := tz.cache.get(span); ok {
		return cached
	}
	if t, ok := tz.uni.Span.LookupToken([]byte(span)); ok {
		result := []vocab.Token{t}
		tz.cache.put(span, result)
		return result
	}

	exploded := tz.uni.Byte.AppendTokens([]byte(span), make([]vocab.Token, 0, len(span)))
	result := bpe.Encode(exploded, tz.uni.Pair, tz.strategy)
	tz.cache.put(span, result)
	return result
}

// EstimateCount returns a fast, approximate token count for text without
// running BPE: special spans count as one token each, gap spans count as
// none, and a word span of n bytes counts as n/4+1 tokens, after the
// one-token-per-four-bytes rule of thumb the reference byte-pair
// vocabularies converge to in practice for English text. It is meant for UIs that need a responsive running counter, not
// an exact count — callers that need the real count must call Encode.
func (tz *Tokenizer) EstimateCount(text string) (int, error) {
	count := 0
	err := tz.span.ForEachSplitSpan(text, func(sp spanner.Span) bool {
		switch sp.Role {
		case spanner.RoleWord:
			n := sp.Len()/4 + 1
			count += n
		case spanner.RoleSpecial:
			count++
		}
		return true
	})
	return count, err
}
