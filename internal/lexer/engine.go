package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Run executes the post-processing algorithm of spec §4.2 over a DFA token
// stream, reconstructing the lookaround-sensitive regex spans from a
// one-token pending-whitespace buffer. It is a direct Go port of
// for_each_classified_span in original_source's
// crates/wordchipper/src/spanners/span_lexers/logos/engine.rs: the same
// whitespace-splitting, prefix-absorption and contraction-splitting rules,
// branch for branch.
func Run(text string, tokens []Token) []Span {
	out := make([]Span, 0, len(tokens))
	pendingStart, pendingEnd := 0, 0
	hasPending := false

	flushPending := func() {
		if hasPending {
			out = append(out, Span{Start: pendingStart, End: pendingEnd, Role: Word})
			hasPending = false
		}
	}

	lastEnd := 0
	for _, tok := range tokens {
		if tok.Start > lastEnd {
			flushPending()
			out = append(out, Span{Start: lastEnd, End: tok.Start, Role: Gap})
		}

		switch tok.Role {
		case RoleGap:
			flushPending()
			out = append(out, Span{Start: tok.Start, End: tok.End, Role: Gap})

		case RoleWhitespace:
			flushPending()
			pendingStart, pendingEnd = tok.Start, tok.End
			hasPending = true

		case RolePunctuation:
			// ` ?[^\s\p{L}\p{N}]+` always absorbs a preceding ASCII space;
			// non-space whitespace (NBSP, tab) is never absorbed.
			if !hasPending {
				out = append(out, Span{Start: tok.Start, End: tok.End, Role: Word})
				break
			}
			wsStart, wsEnd := pendingStart, pendingEnd
			hasPending = false
			trim := flushWsSplit(&out, text, wsStart, wsEnd)
			if text[trim] != ' ' {
				out = append(out, Span{Start: trim, End: wsEnd, Role: Word})
				out = append(out, Span{Start: tok.Start, End: tok.End, Role: Word})
			} else {
				out = append(out, Span{Start: trim, End: tok.End, Role: Word})
			}

		case RoleWord, RoleWordContraction:
			checkContraction := tok.Role == RoleWordContraction
			if !hasPending {
				emitAbsorbing(&out, text, tok.Start, tok.End, checkContraction)
				break
			}
			wsStart, wsEnd := pendingStart, pendingEnd
			hasPending = false
			trim := flushWsSplit(&out, text, wsStart, wsEnd)
			singleChar := trim == wsStart

			if startsWithLetter(text, tok.Start) {
				// Token has no existing prefix; merge last ws char.
				emitAbsorbing(&out, text, trim, tok.End, checkContraction)
			} else if singleChar {
				// Single ws char: emit standalone, token as-is.
				out = append(out, Span{Start: trim, End: wsEnd, Role: Word})
				emitAbsorbing(&out, text, tok.Start, tok.End, checkContraction)
			} else {
				// 2+ ws chars: merge last ws char + non-letter prefix into
				// one span (like Punctuation ` ?X`), then emit the
				// remaining letters separately.
				_, prefixLen := firstRuneRange(text, tok.Start, tok.End)
				out = append(out, Span{Start: trim, End: tok.Start + prefixLen, Role: Word})
				emitAbsorbing(&out, text, tok.Start+prefixLen, tok.End, checkContraction)
			}

		case RoleStandalone:
			if hasPending {
				wsStart, wsEnd := pendingStart, pendingEnd
				hasPending = false
				trim := flushWsSplit(&out, text, wsStart, wsEnd)
				out = append(out, Span{Start: trim, End: wsEnd, Role: Word})
			}
			out = append(out, Span{Start: tok.Start, End: tok.End, Role: Word})
		}

		lastEnd = tok.End
	}

	flushPending()
	if lastEnd < len(text) {
		out = append(out, Span{Start: lastEnd, End: len(text), Role: Gap})
	}
	return out
}

// flushWsSplit locates the start of the last UTF-8 scalar in
// text[wsStart:wsEnd], emits everything before it as its own Word span (if
// non-empty), and returns the scalar's start offset ("trim").
func flushWsSplit(out *[]Span, text string, wsStart, wsEnd int) int {
	trim := wsEnd - 1
	for trim > wsStart && isUTF8Continuation(text[trim]) {
		trim--
	}
	if wsStart < trim {
		*out = append(*out, Span{Start: wsStart, End: trim, Role: Word})
	}
	return trim
}

func isUTF8Continuation(b byte) bool { return b&0xC0 == 0x80 }

// firstRuneRange returns the byte range of the first rune in text[start:end).
func firstRuneRange(text string, start, end int) (int, int) {
	_, size := utf8.DecodeRuneInString(text[start:end])
	return start, size
}

func startsWithLetter(text string, pos int) bool {
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsLetter(r)
}

// emitAbsorbing emits a Letters/Word span, splitting off a contraction
// prefix first when checkContraction is set. Grounded on engine.rs's
// emit_absorbing! macro: it is always called with the already-trimmed
// range, so contraction_split never re-examines bytes absorbed into a
// preceding span.
func emitAbsorbing(out *[]Span, text string, start, end int, checkContraction bool) {
	if checkContraction {
		if split, ok := contractionSplit(text[start:end]); ok {
			*out = append(*out, Span{Start: start, End: start + split, Role: Word})
			*out = append(*out, Span{Start: start + split, End: end, Role: Word})
			return
		}
	}
	*out = append(*out, Span{Start: start, End: end, Role: Word})
}

// contractionSplit checks whether bytes starts with a cl100k/o200k
// contraction prefix ('s/'t/'d/'m or 're/'ve/'ll, case-insensitive)
// followed by at least one more byte, and if so returns the split point
// (the contraction's own length). A direct port of token_role.rs's
// contraction_split.
func contractionSplit(bytes string) (int, bool) {
	if len(bytes) < 3 || bytes[0] != '\'' {
		return 0, false
	}
	c1 := bytes[1]
	switch c1 {
	case 's', 'S', 't', 'T', 'd', 'D', 'm', 'M':
		if len(bytes) > 2 {
			return 2, true
		}
		return 0, false
	}
	if len(bytes) >= 4 {
		c2 := bytes[2]
		isTwo := (c1 == 'r' || c1 == 'R') && (c2 == 'e' || c2 == 'E') ||
			(c1 == 'v' || c1 == 'V') && (c2 == 'e' || c2 == 'E') ||
			(c1 == 'l' || c1 == 'L') && (c2 == 'l' || c2 == 'L')
		if isTwo && len(bytes) > 3 {
			return 3, true
		}
	}
	return 0, false
}
