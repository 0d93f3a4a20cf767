package spanner

import (
	"sort"

	"bitbucket.org/creachadair/stringset"
)

// specialMatcher finds the leftmost occurrence of any special string in a
// text, breaking ties between specials that match at the same position by
// preferring the longest. It is the "specials phase" of spec §4.1.
type specialMatcher struct {
	// byLen is every special string, sorted longest-first so that scanning
	// them in order at a fixed position yields the longest match first.
	byLen []string
}

func newSpecialMatcher(specials stringset.Set) *specialMatcher {
	list := specials.Elements()
	sort.Slice(list, func(i, j int) bool { return len(list[i]) > len(list[j]) })
	return &specialMatcher{byLen: list}
}

// find returns the [start, end) of the leftmost special match in text at
// or after `from`, or ok=false if none exists.
func (m *specialMatcher) find(text string, from int) (start, end int, ok bool) {
	for i := from; i < len(text); i++ {
		for _, s := range m.byLen {
			if len(s) == 0 || i+len(s) > len(text) {
				continue
			}
			if text[i:i+len(s)] == s {
				return i, i + len(s), true
			}
		}
	}
	return 0, 0, false
}
