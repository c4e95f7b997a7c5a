package cmd

import (
	"fmt"

	"probplay/catalog"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect game catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a catalog file is well formed and every distribution sums to 1",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Open(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d boxes, %d cases, %d goal targets, %d bridge options\n",
			args[0], len(c.LuckyBoxes), len(c.Cases), len(c.GoalTargets), len(c.Bridge.Options))
		return nil
	},
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the embedded default catalog as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Default()
		if err != nil {
			return err
		}
		data, err := c.Marshal()
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd, catalogDumpCmd)
	rootCmd.AddCommand(catalogCmd)
}
