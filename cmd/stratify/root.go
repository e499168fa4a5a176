package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratify"
	"github.com/aretw0/stratify/internal/cli"
	"github.com/aretw0/stratify/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "stratify",
	Short: "Stratify converts decision-tree dumps into flat strategy tables",
	Long:  `Stratify turns the textual decision trees emitted by gradient-boosted tree tooling into flat, human-readable strategy tables driven by simple feature lookups.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", cli.DefaultConfigPath, "Path to the project configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug diagnostics")
}

// newConverter builds a Converter from the project config and command flags.
// Flags win over the config file.
func newConverter(cmd *cobra.Command) (*stratify.Converter, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := cli.Load(configPath)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	opts := []stratify.Option{stratify.WithLogger(logging.New(level))}

	keep, _ := cmd.Flags().GetBool("keep-always-false")
	if keep || cfg.KeepAlwaysFalse {
		opts = append(opts, stratify.WithAlwaysFalseStrategies())
	}

	return stratify.New(opts...), nil
}
