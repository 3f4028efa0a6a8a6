package domain

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// ErrHistoryDisabled is returned by History when no store is configured.
var ErrHistoryDisabled = errors.New("game history is disabled")

// Inspect prints the header and progress of the save file at path.
func (g *game) Inspect(path m.Path) error {
	session, err := g.sessions.Load(path)
	if err != nil {
		return err
	}

	return g.reporter.DisplaySession(path, session, MeasureProgress(session))
}

// History prints up to limit finished games.
func (g *game) History(limit int) error {
	if g.history == nil {
		return ErrHistoryDisabled
	}

	records, err := g.history.List(limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	return g.reporter.DisplayHistory(records)
}

// Corrupt prints the corrupted form of a source text.
func (g *game) Corrupt(args CorruptArgs) error {
	percentage, err := RatePercentage(args.Rate)
	if err != nil {
		return err
	}

	text, err := g.fsAdapter.ReadText(args.Source)
	if err != nil {
		return err
	}

	seed := g.seeds()
	if args.Seed != nil {
		seed = *args.Seed
	}

	log.Info().Str("source", string(args.Source)).Uint32("seed", seed).Int("percentage", percentage).Msg("corrupting")

	session, err := NewSession(text, percentage, seed)
	if err != nil {
		return err
	}

	return g.reporter.DisplayText(session.Corrupted)
}
