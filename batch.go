package tiktoken

import (
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/agentstation/tiktoken/internal/vocab"
)

// BatchEncodeResult is one text's outcome from EncodeBatch. RequestID is a
// per-item correlation ID (spec §2's "ambient diagnostics on encode_batch"),
// useful for tying a batch item back to logs or a client-side retry without
// assuming the batch preserves input order by position alone once results
// cross a process boundary.
type BatchEncodeResult struct {
	EncodeResult
	RequestID string
	Err       error
}

// BatchDecodeResult is one token sequence's outcome from DecodeBatch.
type BatchDecodeResult struct {
	DecodeResult
	RequestID string
	Err       error
}

// EncodeBatch runs Encode over every text, fanned out across a worker
// pool (spec §5's parallel batch mode). Each worker calls Encode against
// this same Tokenizer: that's safe because the unified vocabulary is
// immutable after construction and the span cache synchronizes its own
// access, so no per-worker Tokenizer clone is needed the way a mutable
// per-instance scratch encoder would require one. The call blocks until
// every item completes and writes results back at their input index, so
// output order always matches input order; a failing item reports its
// own error in Err rather than aborting the rest of the batch.
func (tz *Tokenizer) EncodeBatch(texts []string, allowedSpecial map[string]bool) []BatchEncodeResult {
	out := make([]BatchEncodeResult, len(texts))
	if len(texts) == 0 {
		return out
	}

	sem := make(chan struct{}, tz.batchWorkers())
	var wg sync.WaitGroup
	wg.Add(len(texts))
	for i, text := range texts {
		sem <- struct{}{}
		go func(i int, text string) {
			defer wg.Done()
			defer func() { <-sem }()
			result, err := tz.Encode(text, allowedSpecial)
			out[i] = BatchEncodeResult{EncodeResult: result, RequestID: uuid.NewString(), Err: err}
		}(i, text)
	}
	wg.Wait()
	return out
}

// DecodeBatch runs Decode over every token sequence, with the same
// worker-pool fan-out and per-item error isolation as EncodeBatch. A
// token sequence that decodes partially still carries its decoded bytes
// in Value; Err reports the IncompleteDecodeError for callers that want
// the stricter all-or-nothing contract per item.
func (tz *Tokenizer) DecodeBatch(tokenLists [][]vocab.Token) []BatchDecodeResult {
	out := make([]BatchDecodeResult, len(tokenLists))
	if len(tokenLists) == 0 {
		return out
	}

	sem := make(chan struct{}, tz.batchWorkers())
	var wg sync.WaitGroup
	wg.Add(len(tokenLists))
	for i, tokens := range tokenLists {
		sem <- struct{}{}
		go func(i int, tokens []vocab.Token) {
			defer wg.Done()
			defer func() { <-sem }()
			result := tz.Decode(tokens)
			_, err := result.Result()
			out[i] = BatchDecodeResult{DecodeResult: result, RequestID: uuid.NewString(), Err: err}
		}(i, tokens)
	}
	wg.Wait()
	return out
}

// batchWorkers reports the worker-pool width for EncodeBatch/DecodeBatch:
// WithParallel's configured value, or runtime.NumCPU as a default.
func (tz *Tokenizer) batchWorkers() int {
	if tz.parallelism > 0 {
		return tz.parallelism
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
