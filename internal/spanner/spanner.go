package spanner

import "bitbucket.org/creachadair/stringset"

// Spanner implements spec §4.1: given text, produce an ordered sequence of
// Word/Special/Gap spans covering the whole input with no overlaps.
type Spanner struct {
	specials *specialMatcher
	word     wordBackend
	fancy    bool
}

// Option configures New.
type Option func(*config)

type config struct {
	forceFancy bool
}

// WithForceFancy forces the backtracking regex backend even when the
// pattern has no lookaround.
func WithForceFancy() Option {
	return func(c *config) { c.forceFancy = true }
}

// New builds a regex-backed Spanner for the given word pattern and special
// strings.
func New(pattern string, specials stringset.Set, opts ...Option) (*Spanner, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	be, fancy, err := newWordBackend(pattern, cfg.forceFancy)
	if err != nil {
		return nil, err
	}
	return &Spanner{specials: newSpecialMatcher(specials), word: be, fancy: fancy}, nil
}

// NewFromWordBackend builds a Spanner around an already-constructed word
// backend, used to plug in the accelerated DFA + post-processing engine
// (internal/lexer) in place of the regex engine.
func NewFromWordBackend(be wordBackend, specials stringset.Set) *Spanner {
	return &Spanner{specials: newSpecialMatcher(specials), word: be}
}

// Fancy reports whether the regex word backend is the backtracking engine.
func (s *Spanner) Fancy() bool { return s.fancy }

// ForEachSplitSpan visits every span of text in document order. The
// callback may return false to stop early (short-circuit).
func (s *Spanner) ForEachSplitSpan(text string, yield func(Span) bool) error {
	pos := 0
	for pos < len(text) {
		specStart, specEnd, ok := s.specials.find(text, pos)
		segmentEnd := len(text)
		if ok {
			segmentEnd = specStart
		}

		if segmentEnd > pos {
			if !s.wordsAndGaps(text[pos:segmentEnd], pos, yield) {
				return nil
			}
		}

		if !ok {
			break
		}
		if !yield(Span{Role: RoleSpecial, Start: specStart, End: specEnd}) {
			return nil
		}
		pos = specEnd
	}
	return nil
}

// wordsAndGaps runs the word backend over a special-free segment and
// emits Word spans plus the Gap spans between/around them. offset is the
// segment's start position in the original text.
func (s *Spanner) wordsAndGaps(segment string, offset int, yield func(Span) bool) bool {
	matches, err := s.word.matches(segment)
	if err != nil {
		// A malformed segment still needs total coverage: treat the whole
		// thing as a gap rather than losing bytes.
		return yield(Span{Role: RoleGap, Start: offset, End: offset + len(segment)})
	}

	cursor := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > cursor {
			if !yield(Span{Role: RoleGap, Start: offset + cursor, End: offset + start}) {
				return false
			}
		}
		if !yield(Span{Role: RoleWord, Start: offset + start, End: offset + end}) {
			return false
		}
		cursor = end
	}
	if cursor < len(segment) {
		if !yield(Span{Role: RoleGap, Start: offset + cursor, End: offset + len(segment)}) {
			return false
		}
	}
	return true
}

// SplitSpans materializes ForEachSplitSpan's visitor into a slice.
func (s *Spanner) SplitSpans(text string) ([]Span, error) {
	var spans []Span
	err := s.ForEachSplitSpan(text, func(sp Span) bool {
		spans = append(spans, sp)
		return true
	})
	return spans, err
}
