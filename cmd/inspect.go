package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <save>",
		Short: "Show the state stored in a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureGame(cmd); err != nil {
				return err
			}

			return game.Inspect(m.Path(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
