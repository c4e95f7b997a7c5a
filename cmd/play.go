package cmd

import (
	"fmt"
	"os"

	"probplay/shell"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the games in an interactive text shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, seed, err := settings(cmd)
		if err != nil {
			return err
		}
		a, err := newApp(catalogPath, seed)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		player, err := a.services.Players.NewPlayer(cmd.Context(), name)
		if err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}

		return shell.New(a.services, player, os.Stdin, cmd.OutOrStdout(), cfg.RevealDelay).Run(cmd.Context())
	},
}

func init() {
	playCmd.Flags().String("name", "", "player id (random when empty)")
	rootCmd.AddCommand(playCmd)
}
