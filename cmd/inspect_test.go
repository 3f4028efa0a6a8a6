package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/bitrot/internal/model"
)

func TestInspectCmd(t *testing.T) {
	mockGame := useMockGame(t)
	mockGame.On("Inspect", m.Path("game.sav")).Return(nil).Once()

	cmd, _ := newTestCmd(newInspectCmd())
	cmd.SetArgs([]string{"inspect", "game.sav"})
	require.NoError(t, cmd.Execute())
}

func TestInspectCmd_Error(t *testing.T) {
	mockGame := useMockGame(t)
	mockGame.On("Inspect", m.Path("bad.sav")).
		Return(fmt.Errorf("%w: short header", m.ErrFormat)).Once()

	cmd, _ := newTestCmd(newInspectCmd())
	cmd.SetArgs([]string{"inspect", "bad.sav"})
	require.ErrorIs(t, cmd.Execute(), m.ErrFormat)
}
