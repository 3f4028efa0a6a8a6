package cmd

import (
	"github.com/spf13/cobra"
)

var historyLimitFlag int

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureGame(cmd); err != nil {
				return err
			}

			return game.History(historyLimitFlag)
		},
	}
	cmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 20, "number of games to show, 0 for all")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
