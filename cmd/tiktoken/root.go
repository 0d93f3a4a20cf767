package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/tiktoken"
)

var (
	flagEncoding string
	flagVocab    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tiktoken",
	Short: "A tiktoken-family BPE tokenizer CLI tool",
	Long: `tiktoken encodes and decodes text for the tiktoken-family byte-pair
encodings (r50k_base, p50k_base, p50k_edit, cl100k_base, o200k_base).

Every subcommand needs a vocabulary file in the reference ".tiktoken"
format, pointed to by --vocab, and an encoding name via --encoding.`,
	Example: `  # Encode text with cl100k_base
  tiktoken --encoding cl100k_base --vocab cl100k_base.tiktoken encode "Hello, world!"

  # Decode token IDs
  tiktoken --encoding cl100k_base --vocab cl100k_base.tiktoken decode 9906 11 1917 0

  # Show tokenizer info
  tiktoken --encoding o200k_base --vocab o200k_base.tiktoken info`,
	SilenceUsage: true,
}

// versionCmd prints build version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tiktoken version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit:     %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:      %s\n", buildDate)
		}
		if goVersion != "unknown" {
			fmt.Printf("  go version: %s\n", goVersion)
		}
	},
}

// encodingsCmd lists the registered encodings.
var encodingsCmd = &cobra.Command{
	Use:   "encodings",
	Short: "List registered encoding names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range tiktoken.Encodings() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEncoding, "encoding", tiktoken.EncodingCL100kBase, "encoding name")
	rootCmd.PersistentFlags().StringVar(&flagVocab, "vocab", "", "path to a .tiktoken vocabulary file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(encodingsCmd)
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newInfoCmd())
}

func newTokenizer() (*tiktoken.Tokenizer, error) {
	if flagVocab == "" {
		return nil, fmt.Errorf("--vocab is required")
	}
	return tiktoken.NewFromName(flagEncoding, flagVocab)
}
