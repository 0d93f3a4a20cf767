// Package tiktoken implements a tiktoken-family byte-pair-encoding
// tokenizer: the unified byte/span/pair/special vocabulary, text spanning
// via either a regex backend or an accelerated DFA lexer, and five
// interchangeable BPE span-encoder strategies.
package tiktoken

import (
	"os"

	"bitbucket.org/creachadair/stringset"

	"github.com/agentstation/tiktoken/internal/bpe"
	"github.com/agentstation/tiktoken/internal/lexer"
	"github.com/agentstation/tiktoken/internal/spanner"
	"github.com/agentstation/tiktoken/internal/vocab"
)

// Token is a single vocabulary entry ID.
type Token = vocab.Token

// Tokenizer encodes text to tokens and decodes tokens back to bytes for
// one fixed vocabulary and spanning configuration.
type Tokenizer struct {
	uni         *vocab.Unified
	span        *spanner.Spanner
	cache       *spanCache
	strategy    bpe.Strategy
	parallelism int
}

// New builds a Tokenizer directly from a unified vocabulary, bypassing
// the named-encoding registry — for callers supplying a custom or
// fine-tuned vocabulary rather than one of the well-known encodings.
func New(uni *vocab.Unified, opts ...Option) (*Tokenizer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		if err := o(cfg); err != nil {
			return nil, err
		}
	}

	sp, err := buildSpanner(uni.Spanning, uni.Special.Strings(), cfg, nil)
	if err != nil {
		return nil, err
	}

	return &Tokenizer{
		uni:         uni,
		span:        sp,
		cache:       newSpanCache(cfg.cacheSize),
		strategy:    cfg.strategy,
		parallelism: cfg.parallelism,
	}, nil
}

// NewFromName builds a Tokenizer for one of the registered encodings
// (EncodingR50kBase, EncodingCL100kBase, ...), loading mergeable ranks
// from a ".tiktoken"-format vocabulary file on disk.
func NewFromName(name, vocabPath string, opts ...Option) (*Tokenizer, error) {
	def, ok := lookupEncoding(name)
	if !ok {
		return nil, newVocabConflictError("registry", "unknown encoding "+name)
	}

	f, err := os.Open(vocabPath)
	if err != nil {
		return nil, newIOError("open", vocabPath, err)
	}
	defer f.Close()

	spans, err := ParseTiktokenVocab(f)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, o := range opts {
		if err := o(cfg); err != nil {
			return nil, err
		}
	}

	spanning := vocab.SpanningConfig{PatternSource: def.patternSource, Fancy: cfg.forceFancy}
	if cfg.useAccelerated {
		spanning.AcceleratedLexer = name
	}

	uni, err := BuildUnified(spans, def.specials, spanning)
	if err != nil {
		return nil, err
	}

	sp, err := buildSpanner(spanning, uni.Special.Strings(), cfg, def)
	if err != nil {
		return nil, err
	}

	return &Tokenizer{
		uni:         uni,
		span:        sp,
		cache:       newSpanCache(cfg.cacheSize),
		strategy:    cfg.strategy,
		parallelism: cfg.parallelism,
	}, nil
}

func buildSpanner(spanning vocab.SpanningConfig, specials stringset.Set, cfg *config, def *encodingDef) (*spanner.Spanner, error) {
	if cfg.useAccelerated && def != nil && spanning.AcceleratedLexer != "" {
		dfa, err := lexer.Compile(def.dfaPatterns)
		if err != nil {
			return nil, newPatternCompileError(def.name, err)
		}
		return spanner.NewAccelerated(dfa, specials), nil
	}

	var opts []spanner.Option
	if cfg.forceFancy {
		opts = append(opts, spanner.WithForceFancy())
	}
	sp, err := spanner.New(spanning.PatternSource, specials, opts...)
	if err != nil {
		return nil, newPatternCompileError("spanner", err)
	}
	return sp, nil
}

// Strategy reports the span-encoder strategy this Tokenizer was built
// with.
func (tz *Tokenizer) Strategy() bpe.Strategy { return tz.strategy }

// Vocabulary exposes the unified vocabulary backing this Tokenizer.
func (tz *Tokenizer) Vocabulary() *vocab.Unified { return tz.uni }
