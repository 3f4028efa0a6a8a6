// Package cmd provides the root command and CLI setup for bitrot.
package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bitrot/internal/adapter"
	"github.com/mouse-blink/bitrot/internal/config"
	"github.com/mouse-blink/bitrot/internal/controller"
	"github.com/mouse-blink/bitrot/internal/domain"
	m "github.com/mouse-blink/bitrot/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var sessionStore adapter.SessionStore
var historyStore adapter.HistoryStore
var game domain.Game
var cfg = config.Default()

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	sessionStore = adapter.NewSessionStore()
}

var configFlag string
var verboseFlag bool
var logLevelFlag string
var noHistoryFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitrot",
		Short: "Restore a text whose letters lost a bit",
		Long: `bitrot is a terminal puzzle. A text file is loaded and a copy is
corrupted by flipping one bit in randomly chosen letters. Pick a word, pick a
character and choose which bit to flip back until the text matches the
original again.

Characters still differing from the original are shown in red, repaired
ones in green. Every write that leaves a character wrong counts as a mistake.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureGame(cmd); err != nil {
				return err
			}

			return game.Run(domain.RunArgs{
				Start:       domain.ModeMenu,
				Seed:        cfg.Seed,
				DefaultSave: m.Path(cfg.SaveFile),
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "config file (default ~/.bitrot/config.toml)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log debug details to stderr")
	flags.StringVar(&logLevelFlag, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&noHistoryFlag, "no-history", false, "do not record finished games")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	cfg = loaded

	if noHistoryFlag {
		cfg.History = false
	}

	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	if verboseFlag {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	log.Debug().Str("command", cmd.Name()).Float64("rate", cfg.CorruptionRate).
		Bool("history", cfg.History).Msg("configured")

	return nil
}

// ensureGame wires the game for cmd unless one is already set.
func ensureGame(cmd *cobra.Command) error {
	if game != nil {
		return nil
	}

	var history adapter.HistoryStore

	if cfg.History {
		store, err := adapter.NewSQLiteHistoryStore(m.Path(cfg.HistoryDB))
		if err != nil {
			log.Warn().Err(err).Str("db", cfg.HistoryDB).Msg("history disabled")
		} else {
			history = store
			historyStore = store
		}
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	reporter := controller.NewTableReporter(cmd.OutOrStdout())
	game = domain.NewGame(fsAdapter, sessionStore, history, ui, reporter)

	return nil
}

func teardown() error {
	if historyStore == nil {
		return nil
	}

	err := historyStore.Close()
	historyStore = nil
	// the game still holds the closed store
	game = nil

	return err
}

// rateArg resolves a --rate flag against the configured default.
func rateArg(cmd *cobra.Command, flag float64) float64 {
	if cmd.Flags().Changed("rate") {
		return flag
	}

	return cfg.CorruptionRate
}

// seedArg resolves a --seed flag against the configured default.
func seedArg(cmd *cobra.Command, flag uint32) *uint32 {
	if cmd.Flags().Changed("seed") {
		return &flag
	}

	return cfg.Seed
}
