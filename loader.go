package tiktoken

import (
	"bufio"
	"encoding/base64"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/tiktoken/internal/vocab"
)

// ParseTiktokenVocab reads the reference ".tiktoken" vocabulary file
// format: one "<base64 span> <rank>" pair per line, ranks assigned in
// training order starting at 0. It returns the raw span->token map that
// feeds vocab.NewSpanVocab.
func ParseTiktokenVocab(r io.Reader) (map[string]vocab.Token, error) {
	spans := make(map[string]vocab.Token)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, newParseError("tiktoken-vocab", line, errMalformedLine)
		}
		raw, err := base64.StdEncoding.DecodeString(fields[0])
		if err != nil {
			return nil, newParseError("tiktoken-vocab", line, err)
		}
		rank, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, newParseError("tiktoken-vocab", line, err)
		}
		spans[string(raw)] = vocab.Token(rank)
	}
	if err := scanner.Err(); err != nil {
		return nil, newIOError("read", "tiktoken-vocab", err)
	}
	return spans, nil
}

var errMalformedLine = errors.New(`expected "<base64> <rank>"`)

// standardByteVocab builds the identity byte vocabulary used by every
// tiktoken-family encoding: raw byte value b maps to token ID b.
func standardByteVocab() (*vocab.ByteVocab, error) {
	var arr [256]vocab.Token
	for b := 0; b < 256; b++ {
		arr[b] = vocab.Token(b)
	}
	return vocab.NewByteVocabFromArray(arr)
}

// BuildUnified assembles a Unified vocabulary from parsed mergeable-rank
// spans, special tokens, and a spanning configuration, deriving the pair
// vocabulary per spec §4.4 rather than requiring a separate merges file —
// the single spans+ranks file the reference distribution ships is enough.
func BuildUnified(spans map[string]vocab.Token, specials map[string]vocab.Token, spanning vocab.SpanningConfig) (*vocab.Unified, error) {
	byteVocab, err := standardByteVocab()
	if err != nil {
		return nil, err
	}
	spanVocab, err := vocab.NewSpanVocab(spans, byteVocab)
	if err != nil {
		return nil, err
	}
	pairVocab, err := spanVocab.DerivePairVocab()
	if err != nil {
		return nil, err
	}
	specialVocab, err := vocab.NewSpecialVocab(specials)
	if err != nil {
		return nil, err
	}
	return vocab.New(byteVocab, spanVocab, pairVocab, specialVocab, spanning)
}
