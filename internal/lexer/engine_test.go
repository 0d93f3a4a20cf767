package lexer

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// words extracts the Word-role substrings from Run's output, in order.
func words(text string, spans []Span) []string {
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		if s.Role == Word {
			out = append(out, text[s.Start:s.End])
		}
	}
	return out
}

func TestRunWhitespaceAbsorbedByLetterWord(t *testing.T) {
	text := " hello"
	tokens := []Token{
		{Start: 0, End: 1, Role: RoleWhitespace},
		{Start: 1, End: 6, Role: RoleWord},
	}
	got := words(text, Run(text, tokens))
	want := []string{" hello"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestRunMultipleSpacesSplitBeforeLastScalar(t *testing.T) {
	// "   hello" (3 spaces): the run keeps all-but-last as its own word
	// (the `\s+(?!\S)` reconstruction), and the last space joins "hello".
	text := "   hello"
	tokens := []Token{
		{Start: 0, End: 3, Role: RoleWhitespace},
		{Start: 3, End: 8, Role: RoleWord},
	}
	got := words(text, Run(text, tokens))
	want := []string{"  ", " hello"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestRunStandaloneNeverAbsorbsPrecedingWhitespace(t *testing.T) {
	// Unlike a letter word, a standalone token (digits, bare contraction
	// suffixes) never merges with the whitespace pending before it: the
	// whitespace is split before its last scalar, that last scalar is
	// emitted as its own span, and the standalone token follows separately.
	text := "  123"
	tokens := []Token{
		{Start: 0, End: 2, Role: RoleWhitespace},
		{Start: 2, End: 5, Role: RoleStandalone},
	}
	got := words(text, Run(text, tokens))
	want := []string{" ", " ", "123"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestRunPunctuationAlwaysAbsorbsOneSpace(t *testing.T) {
	text := "  !!!"
	tokens := []Token{
		{Start: 0, End: 2, Role: RoleWhitespace},
		{Start: 2, End: 5, Role: RolePunctuation},
	}
	got := words(text, Run(text, tokens))
	want := []string{" ", " !!!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestRunContractionSplitsSuffixFromLetters(t *testing.T) {
	text := "'twas"
	tokens := []Token{
		{Start: 0, End: 5, Role: RoleWordContraction},
	}
	got := words(text, Run(text, tokens))
	want := []string{"'t", "was"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestRunContractionWithMultiSpacePrefixSplitsOnTrimmedRange(t *testing.T) {
	// Two or more pending whitespace chars before a contraction-shaped
	// word: the last space merges with the non-letter apostrophe prefix
	// (mirroring the Punctuation " ?X" absorption), and contraction_split
	// only ever sees the remaining "twas", never the original token range,
	// so no contraction split happens.
	text := "  'twas"
	tokens := []Token{
		{Start: 0, End: 2, Role: RoleWhitespace},
		{Start: 2, End: 7, Role: RoleWordContraction},
	}
	got := words(text, Run(text, tokens))
	want := []string{" ", " '", "twas"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestRunContractionSuffixWithoutFollowingLettersNotSplit(t *testing.T) {
	text := "'s"
	tokens := []Token{
		{Start: 0, End: 2, Role: RoleWordContraction},
	}
	got := words(text, Run(text, tokens))
	want := []string{"'s"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestRunPunctuationSpanSequenceMatchesExactly(t *testing.T) {
	text := "  !!!"
	tokens := []Token{
		{Start: 0, End: 2, Role: RoleWhitespace},
		{Start: 2, End: 5, Role: RolePunctuation},
	}
	got := Run(text, tokens)
	want := []Span{
		{Start: 0, End: 1, Role: Word},
		{Start: 1, End: 5, Role: Word},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Run() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunGapBetweenTokensPreserved(t *testing.T) {
	text := "ab\x00cd"
	tokens := []Token{
		{Start: 0, End: 2, Role: RoleWord},
		{Start: 3, End: 5, Role: RoleWord},
	}
	spans := Run(text, tokens)
	foundGap := false
	for _, s := range spans {
		if s.Role == Gap && text[s.Start:s.End] == "\x00" {
			foundGap = true
		}
	}
	if !foundGap {
		t.Fatalf("expected a gap span for the unmatched byte, got %+v", spans)
	}
}

func TestRunTrailingGapFlushed(t *testing.T) {
	text := "ab  "
	tokens := []Token{
		{Start: 0, End: 2, Role: RoleWord},
	}
	spans := Run(text, tokens)
	last := spans[len(spans)-1]
	if last.Role != Gap || text[last.Start:last.End] != "  " {
		t.Fatalf("expected trailing gap span, got %+v", spans)
	}
}
