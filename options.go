package tiktoken

import "github.com/agentstation/tiktoken/internal/bpe"

// Option configures a Tokenizer built by New or NewFromName.
type Option func(*config) error

type config struct {
	strategy       bpe.Strategy
	cacheSize      int
	forceFancy     bool
	useAccelerated bool
	parallelism    int
}

func defaultConfig() *config {
	return &config{
		strategy:       bpe.TailSweep,
		cacheSize:      8192,
		useAccelerated: true,
	}
}

// WithStrategy selects the span-encoder algorithm. The zero value (not
// calling this option) is bpe.TailSweep, the single-thread default.
func WithStrategy(strategy bpe.Strategy) Option {
	return func(c *config) error {
		c.strategy = strategy
		return nil
	}
}

// WithCacheSize sets the maximum number of distinct word spans the span
// encoder's result cache holds. Zero disables caching.
func WithCacheSize(size int) Option {
	return func(c *config) error {
		if size < 0 {
			return newVocabConflictError("config", "cache size must be >= 0")
		}
		c.cacheSize = size
		return nil
	}
}

// WithForceFancy forces the backtracking regex word backend even for
// encodings that ship an accelerated DFA lexer, useful for testing the
// regex and DFA backends against each other (spec §8).
func WithForceFancy() Option {
	return func(c *config) error {
		c.forceFancy = true
		c.useAccelerated = false
		return nil
	}
}

// WithoutAcceleratedLexer disables the DFA fast path even when one is
// available for the chosen encoding, forcing the regex backend.
func WithoutAcceleratedLexer() Option {
	return func(c *config) error {
		c.useAccelerated = false
		return nil
	}
}

// WithConcurrentDefault is shorthand for WithStrategy(bpe.PriorityMerge),
// the strategy recommended when many spans are encoded from concurrent
// goroutines against one shared Tokenizer.
func WithConcurrentDefault() Option {
	return WithStrategy(bpe.PriorityMerge)
}

// WithParallel sets the worker-pool width EncodeBatch and DecodeBatch
// fan out across (spec §5's parallel batch mode). n <= 0 falls back to
// runtime.NumCPU at call time; the zero value (not calling this option)
// does the same.
func WithParallel(n int) Option {
	return func(c *config) error {
		c.parallelism = n
		return nil
	}
}
