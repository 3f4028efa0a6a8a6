package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// cellClass describes how a working byte relates to the two reference texts.
type cellClass int

const (
	cellIntact    cellClass = iota // matches original and corrupted text
	cellCorrupted                  // still matches the corrupted text only
	cellRestored                   // matches the original text only
	cellStray                      // matches neither
)

func classify(original, corrupted, working byte) cellClass {
	switch {
	case working == original && working == corrupted:
		return cellIntact
	case working == corrupted:
		return cellCorrupted
	case working == original:
		return cellRestored
	default:
		return cellStray
	}
}

type palette struct {
	intact    lipgloss.Style
	corrupted lipgloss.Style
	restored  lipgloss.Style
	stray     lipgloss.Style
	muted     lipgloss.Style
	notice    lipgloss.Style
	victory   lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	text := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return palette{
		intact:    text,
		corrupted: text.Foreground(lipgloss.Color("1")),
		restored:  text.Foreground(lipgloss.Color("2")),
		stray:     text,
		muted:     r.NewStyle().Foreground(lipgloss.Color("8")),
		notice:    r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		victory:   r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

func (p palette) style(c cellClass) lipgloss.Style {
	switch c {
	case cellCorrupted:
		return p.corrupted
	case cellRestored:
		return p.restored
	case cellStray:
		return p.stray
	default:
		return p.intact
	}
}

// renderText colors Working[start:start+length], batching runs of the same
// class into a single styled segment.
func (p palette) renderText(b m.Board, start, length int) string {
	end := min(start+length, len(b.Working), len(b.Document), len(b.Corrupted))
	if start < 0 || start >= end {
		return ""
	}

	var out strings.Builder

	runStart := start
	runClass := classify(b.Document[start], b.Corrupted[start], b.Working[start])

	for i := start + 1; i < end; i++ {
		c := classify(b.Document[i], b.Corrupted[i], b.Working[i])
		if c == runClass {
			continue
		}

		out.WriteString(paint(p.style(runClass), b.Working[runStart:i]))
		runStart, runClass = i, c
	}

	out.WriteString(paint(p.style(runClass), b.Working[runStart:end]))

	return out.String()
}

// paint styles each line on its own so lipgloss does not pad lines to a
// common width.
func paint(style lipgloss.Style, text []byte) string {
	lines := strings.Split(string(text), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func (p palette) renderBoard(b m.Board) string {
	var out strings.Builder

	out.WriteString(p.renderText(b, 0, len(b.Working)))
	out.WriteString("\n\n")
	out.WriteString(p.muted.Render(fmt.Sprintf("words: %d  mistakes: %d", len(b.Words), b.Mistakes)))

	if b.Word == nil || b.Stage == m.StageWordSelection {
		return out.String()
	}

	out.WriteString("\nSelected word is: ")
	out.WriteString(p.renderText(b, b.Word.Start, b.Word.Length))

	if b.Stage != m.StageCharModification || b.CharIndex < 1 {
		return out.String()
	}

	out.WriteString("\nSelected char is: ")
	out.WriteString(strings.Repeat(" ", b.CharIndex-1))
	out.WriteString("^")

	out.WriteString("\n\nChoose what to change the selected character to:\n0) Cancel")

	for i, c := range b.Candidates {
		fmt.Fprintf(&out, "\n%d) %s", i+1, displayByte(c))
	}

	return out.String()
}

func (p palette) renderMenu(entries []MenuEntry) string {
	var out strings.Builder

	out.WriteString("bitrot\n")

	for _, e := range entries {
		fmt.Fprintf(&out, "\n%d) %s", e.Key, e.Label)
	}

	return out.String()
}

// displayByte shows a candidate so that spaces and control bytes stay visible.
func displayByte(c byte) string {
	switch {
	case c == ' ':
		return "(space)"
	case c > 0x20 && c < 0x7f:
		return string(c)
	default:
		return fmt.Sprintf("\\x%02x", c)
	}
}
