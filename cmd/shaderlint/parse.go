package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shaderlint/internal/diag"
	"shaderlint/internal/diagfmt"
	"shaderlint/internal/parser"
	"shaderlint/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file",
	Short: "Parse a shader source file and dump the declarations",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	set := source.NewFileSet()
	id, err := set.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}
	file := set.Get(id)

	maxDiags := maxDiagnostics(cmd)
	bag := diag.NewBag(maxDiags)
	astFile := parser.ParseFile(file, parser.Options{
		MaxErrors: uint(maxDiags),
		Reporter:  diag.BagReporter{Bag: bag},
	})

	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag.Items(), set, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		})
	}

	return diagfmt.FormatASTPretty(os.Stdout, astFile, set)
}
