package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratify"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stratify",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stratify version %s\n", strings.TrimSpace(stratify.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
