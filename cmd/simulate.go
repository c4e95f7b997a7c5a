package cmd

import (
	"fmt"

	"probplay/analysis"
	"probplay/catalog"

	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Monte Carlo check every catalog distribution against its declared odds",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, seed, err := settings(cmd)
		if err != nil {
			return err
		}
		trials, concurrency, detail, err := simulateSettings(cmd)
		if err != nil {
			return err
		}

		c, err := catalog.Open(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		cases, err := analysis.CatalogCases(c)
		if err != nil {
			return err
		}

		reports, err := analysis.SimulateAll(cmd.Context(), cases, trials, seed, concurrency)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "=== Probability Analysis (%d trials per case) ===\n\n", trials)
		if err := analysis.WriteReports(out, reports); err != nil {
			return err
		}
		if detail {
			for _, r := range reports {
				if err := analysis.WriteDetail(out, r); err != nil {
					return err
				}
			}
		}

		failed := 0
		for _, r := range reports {
			if !r.Pass() {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d distributions did not match their declared odds", failed, len(reports))
		}
		return nil
	},
}

func simulateSettings(cmd *cobra.Command) (trials, concurrency int, detail bool, err error) {
	trials, err = cmd.Flags().GetInt("trials")
	if err != nil {
		return 0, 0, false, err
	}
	concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return 0, 0, false, err
	}
	detail, err = cmd.Flags().GetBool("detail")
	if err != nil {
		return 0, 0, false, err
	}
	return trials, concurrency, detail, nil
}

func init() {
	simulateCmd.Flags().Int("trials", 100000, "draws per distribution")
	simulateCmd.Flags().Int("concurrency", 4, "simulations to run at once")
	simulateCmd.Flags().Bool("detail", false, "print per-outcome frequencies")
	rootCmd.AddCommand(simulateCmd)
}
