package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"probplay/models"

	"github.com/spf13/cobra"
)

var evCmd = &cobra.Command{
	Use:   "ev",
	Short: "Print the expected value of every choice in every game",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, seed, err := settings(cmd)
		if err != nil {
			return err
		}
		a, err := newApp(catalogPath, seed)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tables := []struct {
			title   string
			analyze func() ([]models.ChoiceAnalysis, error)
		}{
			{"🎁 Lucky Box Shop", a.services.LuckyBoxes.Analyze},
			{"🌉 Survival Bridge", a.services.Bridge.Analyze},
			{"⚽ Goal or Miss", a.services.Goals.Analyze},
		}
		for _, table := range tables {
			choices, err := table.analyze()
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", table.title, err)
			}
			if err := writeChoices(out, table.title, choices); err != nil {
				return err
			}
		}
		return nil
	},
}

func writeChoices(w io.Writer, title string, choices []models.ChoiceAnalysis) error {
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOST\tEV\tNET\t")
	for _, c := range choices {
		best := ""
		if c.Best {
			best = "⭐"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%+.2f\t%s\n", c.ID, c.Name, c.Cost, c.ExpectedValue, c.NetExpected, best)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(evCmd)
}
