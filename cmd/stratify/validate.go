package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratify/internal/adapters/file"
	"github.com/aretw0/stratify/internal/compiler"
	"github.com/aretw0/stratify/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate <tree-file>",
	Short: "Check a tree file for consistency",
	Long:  `Parses and normalizes the tree without writing any output, reporting grammar errors, duplicate identifiers and dangling branch references.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Tree is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	text, err := file.New().ReadTree(path)
	if err != nil {
		return err
	}

	tree, err := compiler.NewParser(logging.NewNop()).Parse(text)
	if err != nil {
		return err
	}

	if _, err := compiler.NewNormalizer().Normalize(tree); err != nil {
		return err
	}

	return nil
}
