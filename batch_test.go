package tiktoken

import (
	"testing"

	"github.com/agentstation/tiktoken/internal/vocab"
)

func TestEncodeBatchPreservesInputOrder(t *testing.T) {
	tz := buildToyTokenizer(t)
	texts := []string{"the cat", "the", "cat the", "the the the"}

	results := tz.EncodeBatch(texts, nil)
	if len(results) != len(texts) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(texts))
	}

	for i, text := range texts {
		want, err := tz.Encode(text, nil)
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		got := results[i]
		if got.Err != nil {
			t.Fatalf("EncodeBatch[%d].Err = %v", i, got.Err)
		}
		if got.RequestID == "" {
			t.Fatalf("EncodeBatch[%d].RequestID is empty", i)
		}
		if len(got.Tokens) != len(want.Tokens) {
			t.Fatalf("EncodeBatch[%d] = %v, want %v", i, got.Tokens, want.Tokens)
		}
		for j := range got.Tokens {
			if got.Tokens[j] != want.Tokens[j] {
				t.Fatalf("EncodeBatch[%d] = %v, want %v", i, got.Tokens, want.Tokens)
			}
		}
	}
}

func TestEncodeBatchIsolatesPerItemFailure(t *testing.T) {
	tz := buildToyTokenizer(t)
	texts := []string{"the cat", "hello" + EndOfText, "the"}

	results := tz.EncodeBatch(texts, nil)
	if results[0].Err != nil || !results[0].IsComplete() {
		t.Fatalf("results[0] = %+v, want a complete encode", results[0])
	}
	if results[1].IsComplete() {
		t.Fatalf("results[1] = %+v, want a stop at the disallowed special", results[1])
	}
	if results[2].Err != nil || !results[2].IsComplete() {
		t.Fatalf("results[2] = %+v, want a complete encode", results[2])
	}
}

func TestDecodeBatchPreservesInputOrderAndReportsPartialFailure(t *testing.T) {
	tz := buildToyTokenizer(t)

	good, err := tz.Encode("the cat", nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	bad := append(append([]vocab.Token{}, good.Tokens...), 99999)

	results := tz.DecodeBatch([][]vocab.Token{good.Tokens, bad})
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	if !results[0].IsComplete() {
		t.Fatalf("results[0] = %+v, want a complete decode", results[0])
	}
	if string(results[0].Value) != "the cat" {
		t.Fatalf("results[0].Value = %q, want %q", results[0].Value, "the cat")
	}

	if results[1].IsComplete() {
		t.Fatal("results[1], want an incomplete decode")
	}
	if string(results[1].Value) != "the cat" {
		t.Fatalf("results[1].Value = %q, want %q", results[1].Value, "the cat")
	}
	if _, ok := results[1].Err.(*IncompleteDecodeError); !ok {
		t.Fatalf("results[1].Err = %T, want *IncompleteDecodeError", results[1].Err)
	}
}

func TestEncodeBatchEmptyInputReturnsEmptySlice(t *testing.T) {
	tz := buildToyTokenizer(t)
	if got := tz.EncodeBatch(nil, nil); len(got) != 0 {
		t.Fatalf("EncodeBatch(nil) = %v, want empty", got)
	}
}

func TestEncodeBatchHonorsWithParallel(t *testing.T) {
	tz := buildToyTokenizer(t, WithParallel(1))
	if tz.batchWorkers() != 1 {
		t.Fatalf("batchWorkers() = %d, want 1", tz.batchWorkers())
	}
	results := tz.EncodeBatch([]string{"the", "cat"}, nil)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
}
