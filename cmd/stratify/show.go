package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratify/internal/adapters/file"
	"github.com/aretw0/stratify/internal/presentation/tui"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <tree-file>",
	Short: "Convert a tree file and display the strategies in the terminal",
	Long:  `Converts the tree and renders the resulting strategies as a table. Output is styled when attached to a terminal and plain Markdown otherwise.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		converter, err := newConverter(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		text, err := file.New().ReadTree(args[0])
		if err != nil {
			fmt.Printf("Error reading tree: %v\n", err)
			os.Exit(1)
		}

		strategies, err := converter.Convert(text)
		if err != nil {
			fmt.Printf("Conversion failed: %v\n", err)
			os.Exit(1)
		}
		sort.Slice(strategies, func(i, j int) bool {
			return strategies[i].String() < strategies[j].String()
		})

		render := tui.NewRenderer()
		out, err := render(tui.StrategyTable(strategies))
		if err != nil {
			fmt.Printf("Render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("keep-always-false", false, "Emit strategies whose conditions can never hold simultaneously")
}
