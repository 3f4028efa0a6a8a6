package adapter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/mouse-blink/bitrot/internal/savefile"
)

// SessionStore persists and restores puzzle sessions.
type SessionStore interface {
	Save(path m.Path, session *m.Session) error
	Load(path m.Path) (*m.Session, error)
}

// LocalSessionStore keeps each session in its own binary save file.
type LocalSessionStore struct{}

// NewSessionStore constructs a SessionStore backed by the local filesystem.
func NewSessionStore() SessionStore {
	return &LocalSessionStore{}
}

// Save writes session to path, replacing any previous file. The new file is
// written next to the target and renamed over it, so a failed save leaves the
// previous one intact.
func (s *LocalSessionStore) Save(path m.Path, session *m.Session) error {
	if session == nil {
		return m.ErrUninitializedSession
	}

	resolved, err := expandPath(path)
	if err != nil {
		return err
	}

	data, err := savefile.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	target := string(resolved)

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return notFound(path, err)
	}

	tmpPath := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	committed = true

	return nil
}

// Load reads the session stored at path.
func (s *LocalSessionStore) Load(path m.Path) (*m.Session, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - the player chooses which save to restore
	f, err := os.Open(string(resolved))
	if err != nil {
		return nil, notFound(path, err)
	}

	defer func() { _ = f.Close() }()

	session, err := savefile.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return session, nil
}
