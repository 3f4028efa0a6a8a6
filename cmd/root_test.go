package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/bitrot/internal/config"
	"github.com/mouse-blink/bitrot/internal/domain"
	domainmocks "github.com/mouse-blink/bitrot/internal/domain/mocks"
	m "github.com/mouse-blink/bitrot/internal/model"
)

// useMockGame swaps the global game for a mock and isolates the test from
// the user's configuration.
func useMockGame(t *testing.T) *domainmocks.MockGame {
	t.Helper()

	mockGame := domainmocks.NewMockGame(t)

	originalGame, originalCfg, originalLevel := game, cfg, zerolog.GlobalLevel()
	game = mockGame

	t.Cleanup(func() {
		game, cfg = originalGame, originalCfg
		zerolog.SetGlobalLevel(originalLevel)
	})

	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "missing.toml"))

	for _, key := range []string{config.EnvLogLevel, config.EnvHistoryDB, config.EnvSaveFile} {
		t.Setenv(key, "")
	}

	return mockGame
}

func newTestCmd(subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, &out
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRootCmd_RunsMenu(t *testing.T) {
	mockGame := useMockGame(t)

	mockGame.On("Run", mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Start == domain.ModeMenu &&
			args.Seed == nil &&
			args.Rate == nil &&
			args.DefaultSave == m.Path("bitrot.sav") &&
			!args.Once
	})).Return(nil).Once()

	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_UsesConfigFile(t *testing.T) {
	mockGame := useMockGame(t)

	path := writeTestConfig(t, "seed = 5\nsave_file = \"mine.sav\"\n")

	mockGame.On("Run", mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Seed != nil && *args.Seed == 5 && args.DefaultSave == m.Path("mine.sav")
	})).Return(nil).Once()

	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"--config", path})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	useMockGame(t)

	path := writeTestConfig(t, "corruption_rate = 3\n")

	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"--config", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corruption_rate")
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	useMockGame(t)

	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"--log-level", "shouty"})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_Verbose(t *testing.T) {
	mockGame := useMockGame(t)
	mockGame.On("Run", mock.Anything).Return(nil).Once()

	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"--verbose", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestRootCmd_NoHistory(t *testing.T) {
	mockGame := useMockGame(t)
	mockGame.On("Run", mock.Anything).Return(nil).Once()

	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"--no-history"})
	require.NoError(t, cmd.Execute())

	assert.False(t, cfg.History)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	useMockGame(t)

	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"story.txt"})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_RunError(t *testing.T) {
	mockGame := useMockGame(t)
	mockGame.On("Run", mock.Anything).Return(errors.New("terminal gone")).Once()

	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{})
	require.EqualError(t, cmd.Execute(), "terminal gone")
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "bitrot" {
		t.Errorf("newRootCmd() Use = %v, want %v", cmd.Use, "bitrot")
	}

	if cmd.Short == "" {
		t.Error("newRootCmd() Short should not be empty")
	}

	if cmd.Long == "" {
		t.Error("newRootCmd() Long should not be empty")
	}

	for _, name := range []string{"config", "verbose", "log-level", "no-history"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("newRootCmd() missing --%s flag", name)
		}
	}
}

func TestInit(t *testing.T) {
	if fsAdapter == nil {
		t.Error("init() fsAdapter is nil")
	}

	if sessionStore == nil {
		t.Error("init() sessionStore is nil")
	}

	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"play", "resume", "inspect", "corrupt", "history", "config"} {
		if !names[want] {
			t.Errorf("rootCmd is missing the %s command", want)
		}
	}
}

func TestEnsureGame_WiresHistory(t *testing.T) {
	originalGame, originalCfg := game, cfg
	defer func() { game, cfg = originalGame, originalCfg }()

	game = nil
	cfg = config.Default()
	cfg.HistoryDB = filepath.Join(t.TempDir(), "history.db")

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, ensureGame(cmd))
	require.NotNil(t, game)
	require.NotNil(t, historyStore)

	require.NoError(t, teardown())
	assert.Nil(t, historyStore)
	assert.Nil(t, game)
}

func TestEnsureGame_WithoutHistory(t *testing.T) {
	originalGame, originalCfg := game, cfg
	defer func() { game, cfg = originalGame, originalCfg }()

	game = nil
	cfg = config.Default()
	cfg.History = false

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, ensureGame(cmd))
	assert.NotNil(t, game)
	assert.Nil(t, historyStore)
	require.NoError(t, teardown())
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd

		Execute() // This should call os.Exit(1)

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected exec.ExitError, got %T (%v), output: %s", err, err, output)
	}

	if exitErr.ExitCode() != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
	}

	if !strings.Contains(string(output), "command failed") {
		t.Errorf("Expected the error in output, got: %s", output)
	}
}
