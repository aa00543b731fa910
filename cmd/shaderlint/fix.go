package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shaderlint/internal/analysis"
	"shaderlint/internal/fix"
	"shaderlint/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] file",
	Short: "Apply suggested fixes to a shader file",
	Long:  `Fix analyzes a shader file and applies non-conflicting suggested rewrites in place`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "print the rewritten file instead of writing it")
	fixCmd.Flags().Bool("once", false, "apply only the first fix")
}

func runFix(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	once, _ := cmd.Flags().GetBool("once")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	set := source.NewFileSet()
	id, err := set.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	res, err := analysis.AnalyzeLoaded(set, id, analysis.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
	})
	if err != nil {
		return err
	}

	mode := fix.ApplyModeAll
	if once {
		mode = fix.ApplyModeOnce
	}
	result, err := fix.Apply(set, res.Diagnostics, fix.ApplyOptions{Mode: mode, DryRun: dryRun})
	if err != nil {
		return err
	}

	if dryRun {
		for _, change := range result.FileChanges {
			os.Stdout.Write(change.NewContent)
		}
	}
	if !quiet {
		for _, applied := range result.Applied {
			fmt.Fprintf(os.Stderr, "applied: %s (%s)\n", applied.Title, applied.Code.ID())
		}
		for _, skipped := range result.Skipped {
			fmt.Fprintf(os.Stderr, "skipped: %s: %s\n", skipped.Title, skipped.Reason)
		}
	}
	return nil
}
