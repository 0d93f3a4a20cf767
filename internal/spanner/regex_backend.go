package spanner

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// wordBackend produces word-phase matches over a special-free segment.
type wordBackend interface {
	// matches returns the [start,end) byte ranges of every non-overlapping
	// word match in segment, in document order.
	matches(segment string) ([][2]int, error)
}

// basicRegexBackend wraps the standard library's RE2 engine, used when the
// pattern contains no lookaround and can run in guaranteed-linear time.
type basicRegexBackend struct {
	re *regexp.Regexp
}

func newBasicRegexBackend(pattern string) (*basicRegexBackend, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &basicRegexBackend{re: re}, nil
}

func (b *basicRegexBackend) matches(segment string) ([][2]int, error) {
	return b.re.FindAllStringIndex(segment, -1), nil
}

// fancyRegexBackend wraps dlclark/regexp2, a backtracking engine that
// supports the lookaround the reference patterns rely on (`\s+(?!\S)`).
type fancyRegexBackend struct {
	re *regexp2.Regexp
}

func newFancyRegexBackend(pattern string) (*fancyRegexBackend, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	return &fancyRegexBackend{re: re}, nil
}

func (b *fancyRegexBackend) matches(segment string) ([][2]int, error) {
	// regexp2 reports match positions in runes; map them back to bytes.
	runeStart := make([]int, 0, len(segment)+1)
	for i := range segment {
		runeStart = append(runeStart, i)
	}
	runeStart = append(runeStart, len(segment))

	var out [][2]int
	m, err := b.re.FindStringMatch(segment)
	if err != nil {
		return nil, err
	}
	for m != nil {
		out = append(out, [2]int{runeStart[m.Index], runeStart[m.Index+m.Length]})
		m, err = b.re.FindNextMatch(m)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// needsBacktracking reports whether a regex pattern source uses lookaround
// constructs that the RE2-family engine cannot express, and therefore
// requires the backtracking backend.
func needsBacktracking(pattern string) bool {
	for _, marker := range []string{"(?!", "(?=", "(?<=", "(?<!"} {
		if strings.Contains(pattern, marker) {
			return true
		}
	}
	return false
}

// newWordBackend picks the basic or fancy engine based on the pattern, or
// honors an explicit forceFancy override (the builder flag that forces
// the backtracking regex backend even when an accelerated lexer exists).
func newWordBackend(pattern string, forceFancy bool) (wordBackend, bool, error) {
	fancy := forceFancy || needsBacktracking(pattern)
	if !fancy {
		if be, err := newBasicRegexBackend(pattern); err == nil {
			return be, false, nil
		}
		// Fall through to the backtracking engine if RE2 rejects it for a
		// reason other than lookaround (e.g. backreferences).
	}
	be, err := newFancyRegexBackend(pattern)
	if err != nil {
		return nil, true, err
	}
	return be, true, nil
}
