package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/tiktoken"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [token_ids...]",
		Short: "Decode token IDs to text",
		Long: `Decode token IDs back to text for the selected encoding.

Token IDs can be provided as arguments or piped from stdin, separated by
any whitespace.`,
		RunE: runDecode,
	}
}

func runDecode(_ *cobra.Command, args []string) error {
	tok, err := newTokenizer()
	if err != nil {
		return err
	}

	var ids []tiktoken.Token
	if len(args) > 0 {
		for _, arg := range args {
			id, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				return fmt.Errorf("invalid token ID %q: %w", arg, err)
			}
			ids = append(ids, tiktoken.Token(id))
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			id, err := strconv.ParseUint(scanner.Text(), 10, 32)
			if err != nil {
				return fmt.Errorf("invalid token ID %q: %w", scanner.Text(), err)
			}
			ids = append(ids, tiktoken.Token(id))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	if len(ids) == 0 {
		return fmt.Errorf("no token IDs provided")
	}

	text, err := tok.DecodeString(ids)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
