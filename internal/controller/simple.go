package controller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// SimpleUI implements UI as a line-oriented dialogue over the command's
// input and output streams.
type SimpleUI struct {
	cmd     *cobra.Command
	in      *bufio.Reader
	palette palette
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:     cmd,
		palette: newPalette(lipgloss.NewRenderer(cmd.OutOrStdout())),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	if s.in == nil {
		s.in = bufio.NewReader(s.cmd.InOrStdin())
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayMenu prints the numbered menu.
func (s *SimpleUI) DisplayMenu(entries []MenuEntry) {
	s.printf("%s\n\n", s.palette.renderMenu(entries))
}

// DisplayBoard prints the colored text and the current selection.
func (s *SimpleUI) DisplayBoard(board m.Board) {
	s.printf("%s\n\n", s.palette.renderBoard(board))
}

// DisplayNotice prints a one-line message such as "invalid input".
func (s *SimpleUI) DisplayNotice(msg string) {
	s.printf("%s\n", s.palette.notice.Render(msg))
}

// DisplayVictory announces the end of the puzzle.
func (s *SimpleUI) DisplayVictory(mistakes int) {
	s.printf("%s\n", s.palette.victory.Render(victoryMessage(mistakes)))
}

// Prompt prints label and reads one line.
func (s *SimpleUI) Prompt(label string) (string, error) {
	if err := s.Start(); err != nil {
		return "", err
	}

	s.printf("%s", label)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func victoryMessage(mistakes int) string {
	if mistakes == 1 {
		return "Text restored with 1 mistake."
	}

	return fmt.Sprintf("Text restored with %d mistakes.", mistakes)
}
