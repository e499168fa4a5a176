package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <tree-file> <strategies-file>",
	Short: "Convert a decision-tree file into a strategies file",
	Long:  `Parses the line-oriented tree dump, flattens it into mutually independent strategies and writes them to the output file, lexicographically sorted, one per line.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		converter, err := newConverter(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if err := converter.ConvertFile(args[0], args[1]); err != nil {
			fmt.Printf("Conversion failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().Bool("keep-always-false", false, "Emit strategies whose conditions can never hold simultaneously")
}
