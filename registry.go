package tiktoken

import (
	"github.com/agentstation/tiktoken/internal/lexer"
	"github.com/agentstation/tiktoken/internal/vocab"
)

// Well-known encoding names, matching the reference distribution.
const (
	EncodingR50kBase   = "r50k_base"
	EncodingP50kBase   = "p50k_base"
	EncodingP50kEdit   = "p50k_edit"
	EncodingCL100kBase = "cl100k_base"
	EncodingO200kBase  = "o200k_base"
)

// Special-token strings shared across encodings.
const (
	EndOfText   = "<|endoftext|>"
	FIMPrefix   = "<|fim_prefix|>"
	FIMMiddle   = "<|fim_middle|>"
	FIMSuffix   = "<|fim_suffix|>"
	EndOfPrompt = "<|endofprompt|>"
)

// encodingDef is everything BuildUnified needs besides the mergeable
// ranks, which are loaded separately from a vocabulary file.
type encodingDef struct {
	name          string
	patternSource string
	dfaPatterns   []lexer.Pattern
	specials      map[string]vocab.Token
}

var registry = map[string]*encodingDef{
	EncodingR50kBase: {
		name:          EncodingR50kBase,
		patternSource: `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`,
		dfaPatterns:   lexer.R50KPatterns,
		specials:      map[string]vocab.Token{EndOfText: 50256},
	},
	EncodingP50kBase: {
		name:          EncodingP50kBase,
		patternSource: `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`,
		dfaPatterns:   lexer.R50KPatterns,
		specials:      map[string]vocab.Token{EndOfText: 50256},
	},
	EncodingP50kEdit: {
		name:          EncodingP50kEdit,
		patternSource: `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`,
		dfaPatterns:   lexer.R50KPatterns,
		specials: map[string]vocab.Token{
			EndOfText: 50256, FIMPrefix: 50281, FIMMiddle: 50282, FIMSuffix: 50283,
		},
	},
	EncodingCL100kBase: {
		name:          EncodingCL100kBase,
		patternSource: `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`,
		dfaPatterns:   lexer.CL100KPatterns,
		specials: map[string]vocab.Token{
			EndOfText: 100257, FIMPrefix: 100258, FIMMiddle: 100259, FIMSuffix: 100260,
			EndOfPrompt: 100276,
		},
	},
	EncodingO200kBase: {
		name: EncodingO200kBase,
		patternSource: `[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]*[\p{Ll}\p{Lm}\p{Lo}\p{M}]+(?i:'s|'t|'re|'ve|'m|'ll|'d)?` +
			`|[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]+[\p{Ll}\p{Lm}\p{Lo}\p{M}]*(?i:'s|'t|'re|'ve|'m|'ll|'d)?` +
			`|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n/]*|\s*[\r\n]+|\s+(?!\S)|\s+`,
		dfaPatterns: lexer.O200KPatterns,
		specials: map[string]vocab.Token{
			EndOfText: 199999, EndOfPrompt: 200018,
		},
	},
}

// Encodings lists every registered encoding name.
func Encodings() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// lookupEncoding fetches a registered encoding definition by name.
func lookupEncoding(name string) (*encodingDef, bool) {
	def, ok := registry[name]
	return def, ok
}
