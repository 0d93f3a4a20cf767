package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agentstation/tiktoken"
)

var (
	encOutput     string
	encAllowed    string
	encCountOnly  bool
	encMetrics    bool
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text to token IDs",
		Long: `Encode text into token IDs for the selected encoding.

If no text is given as an argument, reads from stdin.`,
		RunE: runEncode,
	}
	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "output format: space, newline, json")
	cmd.Flags().StringVar(&encAllowed, "allow-special", "", "comma-separated special strings to treat as special tokens, or \"all\"")
	cmd.Flags().BoolVar(&encCountOnly, "count-only", false, "print only the token count")
	cmd.Flags().BoolVar(&encMetrics, "metrics", false, "include timing metrics in the output")
	return cmd
}

func runEncode(_ *cobra.Command, args []string) error {
	tok, err := newTokenizer()
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprintln(os.Stderr, "reading text from stdin (press ctrl-d to end)...")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	allowed := allowedSpecialSet(tok, encAllowed)

	start := time.Now()
	result, err := tok.Encode(text, allowed)
	if err != nil {
		return err
	}
	if !result.IsComplete() {
		fmt.Fprintf(os.Stderr, "warning: encoding stopped at byte offset %d (disallowed special token)\n", result.Stop)
	}
	tokens := result.Tokens
	elapsed := time.Since(start)

	if encCountOnly {
		fmt.Println(len(tokens))
		return nil
	}

	ids := make([]uint32, len(tokens))
	for i, t := range tokens {
		ids[i] = uint32(t)
	}

	switch encOutput {
	case "json":
		payload := map[string]any{"tokens": ids, "count": len(ids), "request_id": uuid.NewString()}
		if encMetrics {
			payload["metrics"] = metricsPayload(len(text), len(ids), elapsed)
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "newline":
		for _, id := range ids {
			fmt.Println(id)
		}
	case "space":
		for i, id := range ids {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(id)
		}
		fmt.Println()
	default:
		return fmt.Errorf("unknown output format: %s", encOutput)
	}

	if encMetrics {
		fmt.Fprintf(os.Stderr, "encoded %s in %s (%s tokens/sec)\n",
			humanize.Bytes(uint64(len(text))), elapsed, humanize.Comma(tokensPerSecond(len(ids), elapsed)))
	}
	return nil
}

func allowedSpecialSet(tok *tiktoken.Tokenizer, spec string) map[string]bool {
	if spec == "" {
		return nil
	}
	if spec == "all" {
		strs := tok.Vocabulary().Special.Strings().Elements()
		set := make(map[string]bool, len(strs))
		for _, s := range strs {
			set[s] = true
		}
		return set
	}
	set := make(map[string]bool)
	for _, s := range strings.Split(spec, ",") {
		set[s] = true
	}
	return set
}

func metricsPayload(inputBytes, tokenCount int, elapsed time.Duration) map[string]any {
	return map[string]any{
		"input_bytes":  inputBytes,
		"token_count":  tokenCount,
		"latency":      elapsed.String(),
		"tokens_per_s": tokensPerSecond(tokenCount, elapsed),
	}
}

func tokensPerSecond(count int, elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	return int64(float64(count) / elapsed.Seconds())
}
