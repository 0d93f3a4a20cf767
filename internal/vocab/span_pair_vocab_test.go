package vocab

import "testing"

// buildToyVocab assembles a tiny vocabulary: 256 byte tokens plus "th"
// and "the" built up by successive merges, the way a real tiktoken
// vocabulary layers multi-byte spans over the byte tokens.
func buildToyVocab(t *testing.T) (*ByteVocab, *SpanVocab, *PairVocab) {
	t.Helper()
	var arr [256]Token
	for b := 0; b < 256; b++ {
		arr[b] = Token(b)
	}
	byteVocab, err := NewByteVocabFromArray(arr)
	if err != nil {
		t.Fatalf("NewByteVocabFromArray: %v", err)
	}

	spans := map[string]Token{
		"th":  256,
		"the": 257,
	}
	spanVocab, err := NewSpanVocab(spans, byteVocab)
	if err != nil {
		t.Fatalf("NewSpanVocab: %v", err)
	}

	pairVocab, err := spanVocab.DerivePairVocab()
	if err != nil {
		t.Fatalf("DerivePairVocab: %v", err)
	}
	return byteVocab, spanVocab, pairVocab
}

func TestSpanVocabFillsByteEntries(t *testing.T) {
	_, spanVocab, _ := buildToyVocab(t)
	if spanVocab.Len() != 258 {
		t.Fatalf("Len() = %d, want 258 (256 bytes + 2 multi-byte spans)", spanVocab.Len())
	}
	tok, ok := spanVocab.LookupToken([]byte("a"))
	if !ok || tok != Token('a') {
		t.Fatalf("LookupToken(a) = (%d, %v), want (%d, true)", tok, ok, 'a')
	}
}

func TestDerivePairVocabFindsSplitPoints(t *testing.T) {
	_, _, pairVocab := buildToyVocab(t)

	th, ok := pairVocab.LookupPair(Pair{Left: Token('t'), Right: Token('h')})
	if !ok || th != 256 {
		t.Fatalf("LookupPair(t,h) = (%d, %v), want (256, true)", th, ok)
	}

	the, ok := pairVocab.LookupPair(Pair{Left: 256, Right: Token('e')})
	if !ok || the != 257 {
		t.Fatalf("LookupPair(th,e) = (%d, %v), want (257, true)", the, ok)
	}
}

func TestPairVocabUnfold(t *testing.T) {
	_, _, pairVocab := buildToyVocab(t)
	pair, ok := pairVocab.Unfold(257)
	if !ok {
		t.Fatal("Unfold(the) returned ok=false")
	}
	if pair.Left != 256 || pair.Right != Token('e') {
		t.Fatalf("Unfold(the) = %+v, want {256 %d}", pair, 'e')
	}
}

func TestNewPairVocabRejectsByteCollision(t *testing.T) {
	byteVocab, _, _ := buildToyVocab(t)
	_, err := NewPairVocab(map[Pair]Token{{Left: 0, Right: 1}: Token('a')}, byteVocab)
	if err == nil {
		t.Fatal("expected conflict error for a merge target colliding with a byte token")
	}
}
