package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display tokenizer information",
		Long:  `Display vocabulary size, special tokens and span-encoder strategy for the selected encoding.`,
		RunE:  runInfo,
	}
}

func runInfo(_ *cobra.Command, _ []string) error {
	tok, err := newTokenizer()
	if err != nil {
		return err
	}
	uni := tok.Vocabulary()

	fmt.Printf("Encoding:          %s\n", flagEncoding)
	fmt.Printf("Span vocab size:   %s tokens\n", humanize.Comma(int64(uni.Span.Len())))
	fmt.Printf("Pair vocab size:   %s merges\n", humanize.Comma(int64(uni.Pair.Len())))
	fmt.Printf("Special tokens:    %d\n", uni.Special.Len())
	fmt.Printf("Span encoder:      %s\n", tok.Strategy())
	fmt.Printf("Accelerated lexer: %s\n", uni.Spanning.AcceleratedLexer)

	fmt.Println()
	fmt.Println("Special tokens:")
	for _, s := range uni.Special.Strings().Elements() {
		id, _ := uni.Special.LookupToken(s)
		fmt.Printf("  %-30s -> %d\n", s, id)
	}
	return nil
}
