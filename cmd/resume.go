package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bitrot/internal/domain"
	m "github.com/mouse-blink/bitrot/internal/model"
)

var resumeMenuFlag bool

// resumeCmd represents the resume command.
var resumeCmd = newResumeCmd()

func newResumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume <save>",
		Short: "Continue a saved game",
		Long:  "Restore a game from a save file exactly where it was left, cursor and mistakes included.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureGame(cmd); err != nil {
				return err
			}

			save := m.Path(args[0])

			return game.Run(domain.RunArgs{
				Start:       domain.ModeLoadFile,
				Restore:     save,
				DefaultSave: save,
				Once:        !resumeMenuFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&resumeMenuFlag, "menu", "m", false, "return to the menu instead of exiting")

	return cmd
}

func init() {
	rootCmd.AddCommand(resumeCmd)
}
