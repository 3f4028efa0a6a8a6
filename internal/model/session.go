// Package model defines the data structures shared by the bitrot puzzle.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Stage is a position in the puzzle ring.
type Stage int32

const (
	// StageWordSelection asks the player for a word number.
	StageWordSelection Stage = iota
	// StageCharSelection asks for a character offset inside the selected word.
	StageCharSelection
	// StageCharModification asks which bit of the selected character to flip.
	StageCharModification

	// StageCount is the size of the ring.
	StageCount
)

// Next returns the stage that follows s in the ring.
func (s Stage) Next() Stage {
	return (s + 1) % StageCount
}

// Prev returns the stage that precedes s in the ring.
func (s Stage) Prev() Stage {
	return (s + StageCount - 1) % StageCount
}

// Valid reports whether s is one of the ring stages.
func (s Stage) Valid() bool {
	return s >= StageWordSelection && s < StageCount
}

func (s Stage) String() string {
	switch s {
	case StageWordSelection:
		return "word-selection"
	case StageCharSelection:
		return "char-selection"
	case StageCharModification:
		return "char-modification"
	default:
		return fmt.Sprintf("stage(%d)", int32(s))
	}
}

// NoSelection marks an unset cursor field.
const NoSelection int32 = -1

// Header is the resumable state of a session without its text buffers.
// Field order matches the save file layout.
type Header struct {
	Seed       uint32
	TextLength int32
	State      Stage
	Mistakes   int32
	WordStart  int32
	WordLength int32
	CharIndex  int32 // 1-based offset within the selected word
}

// Span addresses a word inside a text buffer.
type Span struct {
	Start  int
	Length int
}

// Session aggregates the header and the three text buffers.
type Session struct {
	Header

	Document  []byte // original text, never mutated
	Corrupted []byte // corrupted copy, fixed for the session
	Working   []byte // the buffer the player edits
}

// HasWord reports whether a word is currently selected.
func (s *Session) HasWord() bool {
	return s.WordStart != NoSelection && s.WordLength != NoSelection
}

// SelectWord points the cursor at span and clears the character selection.
func (s *Session) SelectWord(span Span) {
	s.WordStart = int32(span.Start)
	s.WordLength = int32(span.Length)
	s.CharIndex = NoSelection
}

// ClearCursor resets every cursor field.
func (s *Session) ClearCursor() {
	s.WordStart = NoSelection
	s.WordLength = NoSelection
	s.CharIndex = NoSelection
}

// Target returns the Working offset addressed by the cursor.
func (s *Session) Target() int {
	return int(s.WordStart + s.CharIndex - 1)
}

// Validate checks the buffer and cursor invariants.
func (s *Session) Validate() error {
	n := int(s.TextLength)
	if s.TextLength < 0 {
		return fmt.Errorf("negative text length %d", s.TextLength)
	}

	if len(s.Document) != n || len(s.Corrupted) != n || len(s.Working) != n {
		return fmt.Errorf("buffer lengths %d/%d/%d do not match text length %d",
			len(s.Document), len(s.Corrupted), len(s.Working), n)
	}

	if !s.State.Valid() {
		return fmt.Errorf("unknown stage %d", int32(s.State))
	}

	if s.Mistakes < 0 {
		return fmt.Errorf("negative mistake count %d", s.Mistakes)
	}

	switch {
	case s.WordStart == NoSelection && s.WordLength == NoSelection:
		if s.CharIndex != NoSelection {
			return fmt.Errorf("character %d selected without a word", s.CharIndex)
		}

		return nil
	case s.WordStart < 0 || s.WordLength <= 0 || int(s.WordStart)+int(s.WordLength) > n:
		return fmt.Errorf("word [%d,+%d) outside text of length %d", s.WordStart, s.WordLength, n)
	}

	if s.CharIndex != NoSelection && (s.CharIndex < 1 || s.CharIndex > s.WordLength) {
		return fmt.Errorf("character %d outside word of length %d", s.CharIndex, s.WordLength)
	}

	return nil
}
