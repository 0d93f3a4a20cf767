package tiktoken

import "testing"

func TestEncodingsListsAllRegisteredNames(t *testing.T) {
	names := Encodings()
	want := []string{EncodingR50kBase, EncodingP50kBase, EncodingP50kEdit, EncodingCL100kBase, EncodingO200kBase}
	if len(names) != len(want) {
		t.Fatalf("Encodings() = %v, want %d entries", names, len(want))
	}
	for _, w := range want {
		found := false
		for _, n := range names {
			if n == w {
				found = true
			}
		}
		if !found {
			t.Errorf("Encodings() missing %q", w)
		}
	}
}

func TestLookupEncodingUnknownName(t *testing.T) {
	if _, ok := lookupEncoding("not-a-real-encoding"); ok {
		t.Fatal("expected lookupEncoding to fail for an unregistered name")
	}
}

func TestLookupEncodingEveryRegisteredDefHasDFAPatterns(t *testing.T) {
	for _, name := range Encodings() {
		def, ok := lookupEncoding(name)
		if !ok {
			t.Fatalf("lookupEncoding(%q) not found", name)
		}
		if len(def.dfaPatterns) == 0 {
			t.Errorf("%s: dfaPatterns is empty", name)
		}
		if def.patternSource == "" {
			t.Errorf("%s: patternSource is empty", name)
		}
		if len(def.specials) == 0 {
			t.Errorf("%s: specials is empty", name)
		}
	}
}

func TestCL100KHasEndOfPromptSpecial(t *testing.T) {
	def, ok := lookupEncoding(EncodingCL100kBase)
	if !ok {
		t.Fatal("cl100k_base not registered")
	}
	if _, ok := def.specials[EndOfPrompt]; !ok {
		t.Fatal("cl100k_base should define <|endofprompt|>")
	}
}
