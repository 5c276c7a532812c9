// SPDX-License-Identifier: MIT

// Command ftcenters computes fault-tolerant capacitated center plans for
// graphs stored as YAML documents.
package main

import (
	"context"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ftcenters/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ftcenters",
		Short: "Fault-tolerant capacitated center selection",
		Long: heredoc.Doc(`
			ftcenters picks at most K centers in a weighted graph and assigns every
			vertex to one of them, with no center serving more than L vertices and
			every connected component keeping α spare centers where the budget allows.

			Graphs are YAML documents with "vertices" and "edges" lists; see
			"ftcenters generate" for an example.
		`),
		SilenceUsage:  true,
	}
	root.AddCommand(newSolveCmd(), newGenerateCmd(), version.VersionCmd())

	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
