package controller

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bitrot/internal/model"
)

func newTestSimpleUI(input string) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader(input))

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_Prompt(t *testing.T) {
	ui, buf := newTestSimpleUI(" 2 \nsaves/a.sav\nlast")

	if err := ui.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for _, want := range []string{"2", "saves/a.sav", "last"} {
		got, err := ui.Prompt("> ")
		if err != nil {
			t.Fatalf("Prompt() error = %v", err)
		}

		if got != want {
			t.Fatalf("Prompt() = %q, want %q", got, want)
		}
	}

	if _, err := ui.Prompt("> "); !errors.Is(err, io.EOF) {
		t.Fatalf("Prompt() after input error = %v, want io.EOF", err)
	}

	if got := strings.Count(buf.String(), "> "); got != 4 {
		t.Fatalf("label printed %d times, want 4\noutput:\n%s", got, buf.String())
	}
}

func TestSimpleUI_PromptWithoutStart(t *testing.T) {
	ui, _ := newTestSimpleUI("1\n")

	got, err := ui.Prompt("choice: ")
	if err != nil || got != "1" {
		t.Fatalf("Prompt() = %q, %v, want %q", got, err, "1")
	}
}

func TestSimpleUI_Display(t *testing.T) {
	ui, buf := newTestSimpleUI("")

	ui.DisplayMenu([]MenuEntry{{Key: 4, Label: "Continue"}})
	ui.DisplayBoard(m.Board{
		Document:  []byte("cat"),
		Corrupted: []byte("bat"),
		Working:   []byte("bat"),
		Words:     []m.Span{{Start: 0, Length: 3}},
	})
	ui.DisplayNotice("invalid input")
	ui.DisplayVictory(1)
	ui.Close()

	output := buf.String()

	for _, want := range []string{
		"4) Continue",
		"bat",
		"words: 1  mistakes: 0",
		"invalid input",
		"Text restored with 1 mistake.",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestVictoryMessage(t *testing.T) {
	tests := map[int]string{
		0: "Text restored with 0 mistakes.",
		1: "Text restored with 1 mistake.",
		7: "Text restored with 7 mistakes.",
	}

	for mistakes, want := range tests {
		if got := victoryMessage(mistakes); got != want {
			t.Errorf("victoryMessage(%d) = %q, want %q", mistakes, got, want)
		}
	}
}
