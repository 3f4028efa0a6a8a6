package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// TUI implements UI with Bubble Tea. Each prompt runs a short program that
// clears the screen, draws the pending screen content and reads one line.
type TUI struct {
	input   io.Reader
	output  io.Writer
	palette palette
	screen  string
	notice  string
	run     func(tea.Model) (tea.Model, error)
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	t := &TUI{
		input:   input,
		output:  output,
		palette: newPalette(lipgloss.NewRenderer(output)),
	}
	t.run = t.runProgram

	return t
}

// Start initializes the UI.
func (t *TUI) Start() error {
	return nil
}

// Close flushes anything still pending to the output.
func (t *TUI) Close() {
	if t.notice != "" {
		_, _ = fmt.Fprintln(t.output, paint(t.palette.notice, []byte(t.notice)))
		t.notice = ""
	}
}

// DisplayMenu stages the menu for the next prompt.
func (t *TUI) DisplayMenu(entries []MenuEntry) {
	t.screen = t.palette.renderMenu(entries)
}

// DisplayBoard stages the board for the next prompt.
func (t *TUI) DisplayBoard(board m.Board) {
	t.screen = t.palette.renderBoard(board)
}

// DisplayNotice stages a message shown above the next prompt.
func (t *TUI) DisplayNotice(msg string) {
	if t.notice != "" {
		t.notice += "\n" + msg
		return
	}

	t.notice = msg
}

// DisplayVictory prints the final board and the result.
func (t *TUI) DisplayVictory(mistakes int) {
	if t.screen != "" {
		_, _ = fmt.Fprintf(t.output, "%s\n\n", t.screen)
		t.screen = ""
	}

	_, _ = fmt.Fprintln(t.output, t.palette.victory.Render(victoryMessage(mistakes)))
}

// Prompt shows the staged screen and reads one line. Esc, Ctrl-C and
// Ctrl-D end the dialogue with io.EOF.
func (t *TUI) Prompt(label string) (string, error) {
	notice := ""
	if t.notice != "" {
		notice = paint(t.palette.notice, []byte(t.notice))
		t.notice = ""
	}

	final, err := t.run(newPromptModel(t.screen, notice, label))
	if err != nil {
		return "", err
	}

	pm, ok := final.(promptModel)
	if !ok || pm.aborted {
		return "", io.EOF
	}

	return strings.TrimSpace(pm.value), nil
}

func (t *TUI) runProgram(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithInput(t.input), tea.WithOutput(t.output)).Run()
}

// promptModel draws a screen and collects one line of input.
type promptModel struct {
	screen  string
	notice  string
	input   textinput.Model
	value   string
	done    bool
	aborted bool
}

func newPromptModel(screen, notice, label string) promptModel {
	input := textinput.New()
	input.Prompt = label
	input.CharLimit = 256
	input.Focus()

	return promptModel{
		screen: screen,
		notice: notice,
		input:  input,
	}
}

func (pm promptModel) Init() tea.Cmd {
	return tea.Batch(tea.ClearScreen, textinput.Blink)
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type { //nolint:exhaustive
		case tea.KeyEnter:
			pm.value = pm.input.Value()
			pm.done = true

			return pm, tea.Quit
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			pm.aborted = true

			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.input, cmd = pm.input.Update(msg)

	return pm, cmd
}

func (pm promptModel) View() string {
	var out strings.Builder

	if pm.notice != "" {
		out.WriteString(pm.notice)
		out.WriteString("\n")
	}

	if pm.screen != "" {
		out.WriteString(pm.screen)
		out.WriteString("\n\n")
	}

	out.WriteString(pm.input.View())

	if pm.done || pm.aborted {
		out.WriteString("\n")
	}

	return out.String()
}
