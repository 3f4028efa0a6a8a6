package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/bitrot/internal/model"
)

func TestTableReporter_DisplaySession(t *testing.T) {
	var buf bytes.Buffer

	session := &m.Session{
		Header: m.Header{
			Seed:       1234,
			TextLength: 6,
			State:      m.StageCharModification,
			Mistakes:   2,
			WordStart:  3,
			WordLength: 3,
			CharIndex:  2,
		},
	}

	err := NewTableReporter(&buf).DisplaySession("saves/game.sav", session,
		m.Progress{Letters: 5, Damaged: 4, Restored: 1, Remaining: 3})
	if err != nil {
		t.Fatalf("DisplaySession() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"saves/game.sav",
		"1234",
		"char-modification",
		"3+3",
		"Restored",
		"Remaining",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTableReporter_DisplaySession_NoSelection(t *testing.T) {
	var buf bytes.Buffer

	session := &m.Session{
		Header: m.Header{
			WordStart:  m.NoSelection,
			WordLength: m.NoSelection,
			CharIndex:  m.NoSelection,
		},
	}

	if err := NewTableReporter(&buf).DisplaySession("a.sav", session, m.Progress{}); err != nil {
		t.Fatalf("DisplaySession() error = %v", err)
	}

	if !strings.Contains(buf.String(), "word-selection") || strings.Contains(buf.String(), "-1") {
		t.Fatalf("unexpected output\noutput:\n%s", buf.String())
	}
}

func TestTableReporter_DisplayHistory(t *testing.T) {
	var buf bytes.Buffer

	records := []m.Record{
		{Source: "texts/b.txt", Seed: 9, TextLength: 120, Mistakes: 4, FinishedAt: time.Now()},
		{Source: "texts/a.txt", Seed: 8, TextLength: 60, Mistakes: 1, FinishedAt: time.Now().Add(-time.Hour)},
	}

	if err := NewTableReporter(&buf).DisplayHistory(records); err != nil {
		t.Fatalf("DisplayHistory() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"texts/a.txt", "texts/b.txt", "120", "GAMES 2", "5"} {
		if !strings.Contains(strings.ToUpper(output), strings.ToUpper(want)) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTableReporter_DisplayHistory_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTableReporter(&buf).DisplayHistory(nil); err != nil {
		t.Fatalf("DisplayHistory() error = %v", err)
	}

	if got := buf.String(); got != "No finished games yet\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestTableReporter_DisplayText(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTableReporter(&buf).DisplayText([]byte("Hallo\tworld\n")); err != nil {
		t.Fatalf("DisplayText() error = %v", err)
	}

	if got := buf.String(); got != "Hallo\tworld\n" {
		t.Fatalf("output = %q", got)
	}
}
