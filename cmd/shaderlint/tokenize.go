package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shaderlint/internal/diag"
	"shaderlint/internal/diagfmt"
	"shaderlint/internal/lexer"
	"shaderlint/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize a shader source file",
	Long:  `Tokenize breaks down a shader source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	set := source.NewFileSet()
	id, err := set.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}
	file := set.Get(id)

	bag := diag.NewBag(maxDiagnostics(cmd))
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.Tokens()

	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag.Items(), set, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, set)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
