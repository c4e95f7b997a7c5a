package cmd

import (
	"context"
	"fmt"

	"probplay/config"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "probplay",
	Short: "Probability playground",
	Long:  "Four small games that teach expected value, conditional probability and risk, plus tools to check their odds.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Get()
		if err := config.InitLogger(cfg); err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "catalog YAML file (overrides CATALOG_PATH)")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed (overrides RANDOM_SEED, 0 keeps the config value)")
}

// Execute runs the CLI until the command finishes or ctx is cancelled
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// settings resolves flag overrides on top of the loaded config
func settings(cmd *cobra.Command) (catalogPath string, seed int64, err error) {
	catalogPath = cfg.CatalogPath
	seed = cfg.RandomSeed

	flagPath, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return "", 0, err
	}
	if flagPath != "" {
		catalogPath = flagPath
	}
	flagSeed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return "", 0, err
	}
	if flagSeed != 0 {
		seed = flagSeed
	}
	return catalogPath, seed, nil
}
