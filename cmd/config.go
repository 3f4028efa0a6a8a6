package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/bitrot/internal/config"
)

var configInitFlag bool

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after the config file and the BITROT_*
environment variables have been applied. With --init the defaults are written
to the config file unless it already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configInitFlag {
				return initConfig(cmd)
			}

			data, err := cfg.TOML()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().BoolVar(&configInitFlag, "init", false, "write a default config file")

	return cmd
}

func initConfig(cmd *cobra.Command) error {
	path := configFlag
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	if path == "" {
		var err error

		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s already exists", path)
	}

	if err := config.Default().Write(path); err != nil {
		return err
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

	return err
}

func init() {
	rootCmd.AddCommand(configCmd)
}
