package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bitrot/internal/domain"
	m "github.com/mouse-blink/bitrot/internal/model"
)

var playRateFlag float64
var playSeedFlag uint32
var playMenuFlag bool

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <file>",
		Short: "Corrupt a text file and start restoring it",
		Long: `Load a text file, corrupt it and go straight to the puzzle.

The corruption rate is the chance, between 0 and 1, that a letter gets one
bit flipped. The same file, rate and seed always give the same puzzle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureGame(cmd); err != nil {
				return err
			}

			rate := rateArg(cmd, playRateFlag)

			return game.Run(domain.RunArgs{
				Start:       domain.ModeLoad,
				Source:      m.Path(args[0]),
				Rate:        &rate,
				Seed:        seedArg(cmd, playSeedFlag),
				DefaultSave: m.Path(cfg.SaveFile),
				Once:        !playMenuFlag,
			})
		},
	}
	cmd.Flags().Float64VarP(&playRateFlag, "rate", "r", 0, "corruption rate between 0 and 1 (default from config)")
	cmd.Flags().Uint32VarP(&playSeedFlag, "seed", "s", 0, "seed for the corruption (default random)")
	cmd.Flags().BoolVarP(&playMenuFlag, "menu", "m", false, "return to the menu instead of exiting")

	return cmd
}

func init() {
	rootCmd.AddCommand(playCmd)
}
