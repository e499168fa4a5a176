package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratify/internal/adapters/file"
	"github.com/aretw0/stratify/internal/compiler"
	"github.com/aretw0/stratify/internal/logging"
	"github.com/aretw0/stratify/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <tree-file>",
	Short: "Export the decision-tree visualization",
	Long:  `Parses the tree file and outputs a Mermaid diagram (graph TD) representing its decision nodes, leaves and yes/no branches.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := file.New().ReadTree(args[0])
		if err != nil {
			fmt.Printf("Error reading tree: %v\n", err)
			os.Exit(1)
		}

		tree, err := compiler.NewParser(logging.NewNop()).Parse(text)
		if err != nil {
			fmt.Printf("Error parsing tree: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(tree))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
