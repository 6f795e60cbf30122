// Package main provides the goannot command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goannot",
		Short: "Gene Ontology annotation indexer and query engine",
		Long: `goannot ingests a gene list and a GAF 2.1 annotation file, builds an
in-memory classified index, and answers set-algebraic queries over it
either as a one-shot CLI command or as a long-running HTTP server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	return cmd
}
