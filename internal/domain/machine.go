package domain

import (
	"bytes"
	"fmt"

	"github.com/mouse-blink/bitrot/internal/domain/scramble"
	m "github.com/mouse-blink/bitrot/internal/model"
)

// Turn describes the effect of one accepted or rejected input.
type Turn struct {
	From     m.Stage
	To       m.Stage
	Wrote    bool
	Mistake  bool
	Position int
	Value    byte
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithMenu makes a non-positive word number a cancellation instead of an
// invalid input, so the caller can go back to its menu.
func WithMenu() MachineOption {
	return func(mc *Machine) {
		mc.menu = true
	}
}

// Machine drives the word -> character -> modification ring over a session.
// Rejected inputs never touch the text buffers.
type Machine struct {
	session *m.Session
	menu    bool
}

// NewMachine wraps session. A stage whose cursor is missing is moved back to
// the stage that sets it.
func NewMachine(session *m.Session, opts ...MachineOption) *Machine {
	mc := &Machine{session: session}
	for _, opt := range opts {
		opt(mc)
	}

	s := session
	if s.State != m.StageWordSelection && !s.HasWord() {
		s.ClearCursor()
		s.State = m.StageWordSelection
	}

	if s.State == m.StageCharModification && s.CharIndex == m.NoSelection {
		s.State = m.StageCharSelection
	}

	return mc
}

// Session returns the session the machine mutates.
func (mc *Machine) Session() *m.Session {
	return mc.session
}

// Stage returns the current ring stage.
func (mc *Machine) Stage() m.Stage {
	return mc.session.State
}

// Solved reports whether the working text equals the original.
func (mc *Machine) Solved() bool {
	return bytes.Equal(mc.session.Working, mc.session.Document)
}

// Words splits the current working text.
func (mc *Machine) Words() []m.Span {
	return scramble.SplitWords(mc.session.Working)
}

// Board returns the view of the current turn.
func (mc *Machine) Board() m.Board {
	s := mc.session
	board := m.Board{
		Document:  s.Document,
		Corrupted: s.Corrupted,
		Working:   s.Working,
		Stage:     s.State,
		Mistakes:  int(s.Mistakes),
		Words:     mc.Words(),
	}

	if s.HasWord() {
		board.Word = &m.Span{Start: int(s.WordStart), Length: int(s.WordLength)}
	}

	if s.CharIndex != m.NoSelection {
		board.CharIndex = int(s.CharIndex)
	}

	if s.State == m.StageCharModification && board.Word != nil && board.CharIndex > 0 {
		candidates := scramble.Candidates(s.Working[s.Target()])
		board.Candidates = candidates[:]
	}

	return board
}

// Step applies one numeric input to the current stage.
//
// It returns model.ErrInvalidInput or model.ErrNonEditable when the stage
// must be retried, and model.ErrCanceled when the player stepped back.
func (mc *Machine) Step(input int) (Turn, error) {
	switch mc.session.State {
	case m.StageWordSelection:
		return mc.selectWord(input)
	case m.StageCharSelection:
		return mc.selectChar(input)
	case m.StageCharModification:
		return mc.modifyChar(input)
	default:
		return Turn{}, fmt.Errorf("unknown stage %v", mc.session.State)
	}
}

func (mc *Machine) selectWord(input int) (Turn, error) {
	s := mc.session
	turn := Turn{From: s.State, To: s.State}

	if input <= 0 {
		if mc.menu {
			return turn, m.ErrCanceled
		}

		return turn, fmt.Errorf("%w: word %d", m.ErrInvalidInput, input)
	}

	span, ok := scramble.WordAt(s.Working, input)
	if !ok {
		return turn, fmt.Errorf("%w: there is no word %d", m.ErrInvalidInput, input)
	}

	s.SelectWord(span)

	return mc.advance(turn), nil
}

func (mc *Machine) selectChar(input int) (Turn, error) {
	s := mc.session
	turn := Turn{From: s.State, To: s.State}

	if input == 0 {
		return mc.cancel(turn), m.ErrCanceled
	}

	if input < 1 || input > int(s.WordLength) {
		return turn, fmt.Errorf("%w: the word has no character %d", m.ErrInvalidInput, input)
	}

	s.CharIndex = int32(input) // #nosec G115 - bounded by WordLength

	return mc.advance(turn), nil
}

func (mc *Machine) modifyChar(input int) (Turn, error) {
	s := mc.session
	turn := Turn{From: s.State, To: s.State}

	if input == 0 {
		return mc.cancel(turn), m.ErrCanceled
	}

	if input < 1 || input > scramble.BitCount {
		return turn, fmt.Errorf("%w: choice %d", m.ErrInvalidInput, input)
	}

	pos := s.Target()
	value := scramble.FlipBit(s.Working[pos], input-1)

	if !scramble.IsEditable(value) {
		return turn, fmt.Errorf("%w: %#x", m.ErrNonEditable, value)
	}

	s.Working[pos] = value

	turn.Wrote = true
	turn.Position = pos
	turn.Value = value

	// every write that leaves the byte off target counts, even a repeat
	if value != s.Document[pos] {
		s.Mistakes++
		turn.Mistake = true
	}

	s.ClearCursor()

	return mc.advance(turn), nil
}

func (mc *Machine) advance(turn Turn) Turn {
	mc.session.State = mc.session.State.Next()
	turn.To = mc.session.State

	return turn
}

func (mc *Machine) cancel(turn Turn) Turn {
	mc.session.CharIndex = m.NoSelection
	mc.session.State = mc.session.State.Prev()
	turn.To = mc.session.State

	return turn
}
