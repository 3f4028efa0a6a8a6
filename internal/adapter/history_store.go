package adapter

import (
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// finishedLayout is fixed width so that text order is time order.
const finishedLayout = "2006-01-02T15:04:05.000000000Z07:00"

// HistoryStore records finished games.
type HistoryStore interface {
	io.Closer

	// Record stores rec and returns it with its assigned ID.
	Record(rec m.Record) (m.Record, error)

	// List returns the most recent records first. A limit <= 0 returns all.
	List(limit int) ([]m.Record, error)
}

// SQLiteHistoryStore implements HistoryStore using SQLite.
type SQLiteHistoryStore struct {
	db      *sql.DB
	entropy io.Reader
}

// NewSQLiteHistoryStore opens or creates the history database at dbPath.
func NewSQLiteHistoryStore(dbPath m.Path) (*SQLiteHistoryStore, error) {
	resolved, err := expandPath(dbPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(string(resolved)), 0o750); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", string(resolved)+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	s := &SQLiteHistoryStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0), // #nosec G404
	}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}

	return s, nil
}

func (s *SQLiteHistoryStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS games (
		id          TEXT PRIMARY KEY,
		source      TEXT NOT NULL,
		seed        INTEGER NOT NULL,
		text_length INTEGER NOT NULL,
		mistakes    INTEGER NOT NULL,
		finished_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_games_finished ON games(finished_at DESC);
	`)

	return err
}

// Record inserts rec. A zero FinishedAt is set to the current time.
func (s *SQLiteHistoryStore) Record(rec m.Record) (m.Record, error) {
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}

	rec.FinishedAt = rec.FinishedAt.UTC()
	rec.ID = ulid.MustNew(ulid.Timestamp(rec.FinishedAt), s.entropy).String()

	_, err := s.db.Exec(
		`INSERT INTO games (id, source, seed, text_length, mistakes, finished_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Source), int64(rec.Seed), rec.TextLength, rec.Mistakes,
		rec.FinishedAt.Format(finishedLayout),
	)
	if err != nil {
		return m.Record{}, fmt.Errorf("insert game: %w", err)
	}

	return rec, nil
}

// List returns finished games, newest first.
func (s *SQLiteHistoryStore) List(limit int) ([]m.Record, error) {
	query := `SELECT id, source, seed, text_length, mistakes, finished_at FROM games ORDER BY finished_at DESC, id DESC`

	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var records []m.Record

	for rows.Next() {
		var (
			rec      m.Record
			source   string
			seed     int64
			finished string
		)

		if err := rows.Scan(&rec.ID, &source, &seed, &rec.TextLength, &rec.Mistakes, &finished); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}

		rec.Source = m.Path(source)
		rec.Seed = uint32(seed)

		rec.FinishedAt, err = time.Parse(finishedLayout, finished)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at %q: %w", finished, err)
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

// Close closes the database.
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}
