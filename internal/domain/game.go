// Package domain contains the puzzle rules and the session workflow.
package domain

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mouse-blink/bitrot/internal/adapter"
	"github.com/mouse-blink/bitrot/internal/controller"
	m "github.com/mouse-blink/bitrot/internal/model"
)

// Mode is the outer state wrapped around the puzzle ring.
type Mode int

// Available Mode values.
const (
	ModeMenu Mode = iota
	ModeLoad
	ModeLoadFile
	ModeSaveFile
	ModePuzzle
	ModeQuit
)

func (md Mode) String() string {
	switch md {
	case ModeMenu:
		return "menu"
	case ModeLoad:
		return "load"
	case ModeLoadFile:
		return "load-file"
	case ModeSaveFile:
		return "save-file"
	case ModePuzzle:
		return "puzzle"
	case ModeQuit:
		return "quit"
	default:
		return fmt.Sprintf("mode(%d)", int(md))
	}
}

// Menu keys.
const (
	menuQuit     = 0
	menuLoad     = 1
	menuLoadFile = 2
	menuSaveFile = 3
	menuContinue = 4
)

// Prompt labels.
const (
	labelSourcePath = "path: "
	labelRate       = "corruption rate (between 0 and 1): "
	labelMenu       = "Your choice: "
	labelChar       = "Enter the number of the character in this word you wish to inspect (0 to cancel): "
	labelModify     = "Your choice: "
)

// errPrompt marks failures of the UI itself; they end Run.
var errPrompt = errors.New("prompt failed")

// RunArgs configures one interactive run.
type RunArgs struct {
	Start Mode

	// Source and Rate feed the first Load instead of prompting.
	Source m.Path
	Rate   *float64

	// Seed pins the corruption of every Load in the run.
	Seed *uint32

	// Restore feeds the first LoadFile instead of prompting.
	Restore m.Path

	// DefaultSave is used when a save path prompt is left empty.
	DefaultSave m.Path

	// Once ends the run wherever it would otherwise return to the menu.
	Once bool
}

// CorruptArgs configures a non-interactive corruption.
type CorruptArgs struct {
	Source m.Path
	Rate   float64
	Seed   *uint32
}

// Game defines the operations exposed to the command line.
type Game interface {
	Run(args RunArgs) error
	Inspect(path m.Path) error
	History(limit int) error
	Corrupt(args CorruptArgs) error
}

// GameOption configures a Game.
type GameOption func(*game)

// WithSeedFunc replaces the time-derived seed used when none is given.
func WithSeedFunc(fn func() uint32) GameOption {
	return func(g *game) {
		g.seeds = fn
	}
}

type game struct {
	fsAdapter adapter.SourceFSAdapter
	sessions  adapter.SessionStore
	history   adapter.HistoryStore
	ui        controller.UI
	reporter  controller.Reporter
	seeds     func() uint32

	once    bool
	session *m.Session
	machine *Machine
	origin  m.Path
}

// NewGame creates a Game. history may be nil to disable recording.
func NewGame(
	fsAdapter adapter.SourceFSAdapter,
	sessions adapter.SessionStore,
	history adapter.HistoryStore,
	ui controller.UI,
	reporter controller.Reporter,
	opts ...GameOption,
) Game {
	g := &game{
		fsAdapter: fsAdapter,
		sessions:  sessions,
		history:   history,
		ui:        ui,
		reporter:  reporter,
		seeds:     timeSeed,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run loops over the outer modes until the player quits or input ends.
func (g *game) Run(args RunArgs) error {
	if err := g.ui.Start(); err != nil {
		return err
	}
	defer g.ui.Close()

	g.once = args.Once
	mode := args.Start

	for mode != ModeQuit {
		next, err := g.dispatch(mode, &args)

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			log.Debug().Stringer("mode", mode).Msg("input closed")
			return nil
		case errors.Is(err, errPrompt):
			return err
		default:
			log.Debug().Err(err).Stringer("mode", mode).Msg("operation failed")
			g.ui.DisplayNotice(noticeFor(err))

			if g.once {
				return err
			}

			next = ModeMenu
		}

		if next == ModeMenu && g.once {
			next = ModeQuit
		}

		log.Debug().Stringer("from", mode).Stringer("to", next).Msg("mode transition")
		mode = next
	}

	return nil
}

func (g *game) dispatch(mode Mode, args *RunArgs) (Mode, error) {
	switch mode {
	case ModeMenu:
		return g.menu()
	case ModeLoad:
		return g.load(args)
	case ModeLoadFile:
		return g.loadFile(args)
	case ModeSaveFile:
		return g.saveFile(args)
	case ModePuzzle:
		return g.puzzle()
	default:
		return ModeQuit, fmt.Errorf("unknown mode %v", mode)
	}
}

func (g *game) menu() (Mode, error) {
	entries := []controller.MenuEntry{
		{Key: menuLoad, Label: "New game"},
		{Key: menuLoadFile, Label: "Load saved game"},
		{Key: menuSaveFile, Label: "Save game"},
	}
	if g.session != nil {
		entries = append(entries, controller.MenuEntry{Key: menuContinue, Label: "Continue"})
	}

	entries = append(entries, controller.MenuEntry{Key: menuQuit, Label: "Quit"})
	g.ui.DisplayMenu(entries)

	choice, err := g.askInt(labelMenu)
	if err != nil {
		return ModeMenu, err
	}

	switch choice {
	case menuQuit:
		return ModeQuit, nil
	case menuLoad:
		return ModeLoad, nil
	case menuLoadFile:
		return ModeLoadFile, nil
	case menuSaveFile:
		return ModeSaveFile, nil
	case menuContinue:
		if g.session == nil {
			return ModeMenu, m.ErrUninitializedSession
		}

		return ModePuzzle, nil
	default:
		return ModeMenu, fmt.Errorf("%w: menu entry %d", m.ErrInvalidInput, choice)
	}
}

// load reads a source text and starts a fresh session. The current session
// survives any failure.
func (g *game) load(args *RunArgs) (Mode, error) {
	path := args.Source
	args.Source = ""

	if path == "" {
		answer, err := g.ask(labelSourcePath)
		if err != nil {
			return ModeMenu, err
		}

		path = m.Path(answer)
	}

	text, err := g.fsAdapter.ReadText(path)
	if err != nil {
		return ModeMenu, err
	}

	rate, err := g.rate(args)
	if err != nil {
		return ModeMenu, err
	}

	percentage, err := RatePercentage(rate)
	if err != nil {
		return ModeMenu, err
	}

	seed := g.seeds()
	if args.Seed != nil {
		seed = *args.Seed
	}

	session, err := NewSession(text, percentage, seed)
	if err != nil {
		return ModeMenu, err
	}

	g.attach(session, path)
	log.Info().Str("source", string(path)).Int("length", len(text)).Int("percentage", percentage).
		Uint32("seed", seed).Msg("new game")

	return ModePuzzle, nil
}

func (g *game) rate(args *RunArgs) (float64, error) {
	if args.Rate != nil {
		rate := *args.Rate
		args.Rate = nil

		return rate, nil
	}

	answer, err := g.ask(labelRate)
	if err != nil {
		return 0, err
	}

	rate, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", m.ErrInvalidInput, answer)
	}

	return rate, nil
}

func (g *game) loadFile(args *RunArgs) (Mode, error) {
	path := args.Restore
	args.Restore = ""

	if path == "" {
		var err error

		path, err = g.askPath("Load from", args.DefaultSave)
		if err != nil {
			return ModeMenu, err
		}
	}

	session, err := g.sessions.Load(path)
	if err != nil {
		return ModeMenu, err
	}

	g.attach(session, path)
	log.Info().Str("file", string(path)).Stringer("stage", session.State).
		Int32("mistakes", session.Mistakes).Msg("game restored")

	return ModePuzzle, nil
}

func (g *game) saveFile(args *RunArgs) (Mode, error) {
	if g.session == nil {
		return ModeMenu, m.ErrUninitializedSession
	}

	path, err := g.askPath("Save to", args.DefaultSave)
	if err != nil {
		return ModeMenu, err
	}

	if err := g.sessions.Save(path, g.session); err != nil {
		return ModeMenu, err
	}

	log.Info().Str("file", string(path)).Msg("game saved")
	g.ui.DisplayNotice(fmt.Sprintf("saved to %s", path))

	return ModeMenu, nil
}

func (g *game) puzzle() (Mode, error) {
	if g.machine == nil {
		return ModeMenu, m.ErrUninitializedSession
	}

	for {
		if g.machine.Solved() {
			return g.finish(), nil
		}

		g.ui.DisplayBoard(g.machine.Board())

		input, err := g.askInt(g.stageLabel())
		if errors.Is(err, m.ErrInvalidInput) {
			g.ui.DisplayNotice(noticeFor(err))
			continue
		}

		if err != nil {
			return ModeMenu, err
		}

		turn, err := g.machine.Step(input)

		switch {
		case err == nil:
			log.Debug().Stringer("from", turn.From).Stringer("to", turn.To).Bool("wrote", turn.Wrote).
				Bool("mistake", turn.Mistake).Msg("turn")
		case errors.Is(err, m.ErrCanceled):
			if turn.From == m.StageWordSelection {
				return ModeMenu, nil
			}

			log.Debug().Stringer("from", turn.From).Stringer("to", turn.To).Msg("canceled")
		case errors.Is(err, m.ErrInvalidInput), errors.Is(err, m.ErrNonEditable):
			g.ui.DisplayNotice(noticeFor(err))
		default:
			return ModeMenu, err
		}
	}
}

func (g *game) finish() Mode {
	mistakes := int(g.session.Mistakes)

	g.ui.DisplayBoard(g.machine.Board())
	g.ui.DisplayVictory(mistakes)

	if g.history != nil {
		rec, err := g.history.Record(m.Record{
			Source:     g.origin,
			Seed:       g.session.Seed,
			TextLength: int(g.session.TextLength),
			Mistakes:   mistakes,
		})
		if err != nil {
			log.Warn().Err(err).Msg("record finished game")
		} else {
			log.Info().Str("id", rec.ID).Int("mistakes", mistakes).Msg("game finished")
		}
	}

	g.unload()

	return ModeMenu
}

func (g *game) attach(session *m.Session, origin m.Path) {
	g.unload()

	g.session = session
	g.origin = origin
	g.machine = NewMachine(session, WithMenu())
}

func (g *game) unload() {
	g.session = nil
	g.machine = nil
	g.origin = ""
}

func (g *game) stageLabel() string {
	switch g.machine.Stage() {
	case m.StageCharSelection:
		return labelChar
	case m.StageCharModification:
		return labelModify
	default:
		if g.once {
			return "Enter the number of the word you wish to inspect (0 to quit): "
		}

		return "Enter the number of the word you wish to inspect (0 for menu): "
	}
}

func (g *game) ask(label string) (string, error) {
	answer, err := g.ui.Prompt(label)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		return "", fmt.Errorf("%w: %w", errPrompt, err)
	}

	return answer, nil
}

func (g *game) askInt(label string) (int, error) {
	answer, err := g.ask(label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", m.ErrInvalidInput, answer)
	}

	return n, nil
}

func (g *game) askPath(verb string, fallback m.Path) (m.Path, error) {
	label := verb + ": "
	if fallback != "" {
		label = fmt.Sprintf("%s [%s]: ", verb, fallback)
	}

	answer, err := g.ask(label)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(answer) == "" {
		if fallback == "" {
			return "", fmt.Errorf("%w: empty path", m.ErrFileNotFound)
		}

		return fallback, nil
	}

	return m.Path(answer), nil
}

// noticeFor maps an error to the message shown to the player.
func noticeFor(err error) string {
	switch {
	case errors.Is(err, m.ErrInvalidInput):
		return "invalid input"
	case errors.Is(err, m.ErrNonEditable):
		return "that change would leave a space or an unprintable character"
	case errors.Is(err, m.ErrUninitializedSession):
		return "no game loaded, start or load one first"
	default:
		return err.Error()
	}
}
