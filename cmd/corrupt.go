package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bitrot/internal/domain"
	m "github.com/mouse-blink/bitrot/internal/model"
)

var corruptRateFlag float64
var corruptSeedFlag uint32

// corruptCmd represents the corrupt command.
var corruptCmd = newCorruptCmd()

func newCorruptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corrupt <file>",
		Short: "Print a corrupted copy of a text file",
		Long: `Print the text a new game would start from. Use --seed to reproduce
a puzzle; the seed used is logged at info level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureGame(cmd); err != nil {
				return err
			}

			return game.Corrupt(domain.CorruptArgs{
				Source: m.Path(args[0]),
				Rate:   rateArg(cmd, corruptRateFlag),
				Seed:   seedArg(cmd, corruptSeedFlag),
			})
		},
	}
	cmd.Flags().Float64VarP(&corruptRateFlag, "rate", "r", 0, "corruption rate between 0 and 1 (default from config)")
	cmd.Flags().Uint32VarP(&corruptSeedFlag, "seed", "s", 0, "seed for the corruption (default random)")

	return cmd
}

func init() {
	rootCmd.AddCommand(corruptCmd)
}
