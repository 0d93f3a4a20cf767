package vocab

import "testing"

func identityByteVocab(t *testing.T) *ByteVocab {
	t.Helper()
	var arr [256]Token
	for b := 0; b < 256; b++ {
		arr[b] = Token(b)
	}
	v, err := NewByteVocabFromArray(arr)
	if err != nil {
		t.Fatalf("NewByteVocabFromArray: %v", err)
	}
	return v
}

func TestByteVocabRoundTrip(t *testing.T) {
	v := identityByteVocab(t)
	for b := 0; b < 256; b++ {
		tok := v.GetToken(byte(b))
		if tok != Token(b) {
			t.Fatalf("GetToken(%d) = %d, want %d", b, tok, b)
		}
		got, ok := v.GetByte(tok)
		if !ok || got != byte(b) {
			t.Fatalf("GetByte(%d) = (%d, %v), want (%d, true)", tok, got, ok, b)
		}
	}
}

func TestByteVocabFromArrayRejectsDuplicates(t *testing.T) {
	var arr [256]Token
	for b := 0; b < 256; b++ {
		arr[b] = 0
	}
	if _, err := NewByteVocabFromArray(arr); err == nil {
		t.Fatal("expected conflict error for duplicate token assignment")
	}
}

func TestByteVocabFromMapRejectsWrongSize(t *testing.T) {
	if _, err := NewByteVocabFromMap(map[Token]byte{0: 0}); err == nil {
		t.Fatal("expected error for a map with fewer than 256 entries")
	}
}

func TestByteVocabAppendTokens(t *testing.T) {
	v := identityByteVocab(t)
	out := v.AppendTokens([]byte{'a', 'b', 'c'}, nil)
	want := []Token{Token('a'), Token('b'), Token('c')}
	if len(out) != len(want) {
		t.Fatalf("AppendTokens length = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("AppendTokens[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}
