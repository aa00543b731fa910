package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shaderlint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List registered lint rules",
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tID")
	for _, r := range rules.All() {
		fmt.Fprintf(w, "%s\t%s\n", r.Code(), r.Name())
	}
	return w.Flush()
}
