package tiktoken

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/agentstation/tiktoken/internal/vocab"
)

func TestParseTiktokenVocabParsesValidLines(t *testing.T) {
	a := base64.StdEncoding.EncodeToString([]byte("a"))
	the := base64.StdEncoding.EncodeToString([]byte("the"))
	input := a + " 0\n" + the + " 1\n\n"

	spans, err := ParseTiktokenVocab(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTiktokenVocab: %v", err)
	}
	if spans["a"] != vocab.Token(0) {
		t.Errorf(`spans["a"] = %d, want 0`, spans["a"])
	}
	if spans["the"] != vocab.Token(1) {
		t.Errorf(`spans["the"] = %d, want 1`, spans["the"])
	}
}

func TestParseTiktokenVocabRejectsMalformedLine(t *testing.T) {
	if _, err := ParseTiktokenVocab(strings.NewReader("not-enough-fields\n")); err == nil {
		t.Fatal("expected a parse error for a line missing its rank field")
	}
}

func TestParseTiktokenVocabRejectsBadBase64(t *testing.T) {
	if _, err := ParseTiktokenVocab(strings.NewReader("!!!not-base64!!! 0\n")); err == nil {
		t.Fatal("expected a parse error for invalid base64")
	}
}

func TestBuildUnifiedDerivesPairVocabFromSpans(t *testing.T) {
	spans := map[string]vocab.Token{"th": 256, "the": 257}
	specials := map[string]vocab.Token{EndOfText: 1000}
	uni, err := BuildUnified(spans, specials, vocab.SpanningConfig{PatternSource: `\s+|\S+`})
	if err != nil {
		t.Fatalf("BuildUnified: %v", err)
	}
	if _, ok := uni.Pair.LookupPair(vocab.Pair{Left: vocab.Token('t'), Right: vocab.Token('h')}); !ok {
		t.Fatal("expected a derived t+h -> th merge in the pair vocabulary")
	}
}
