// Package adapter contains the filesystem and storage adapters used by bitrot.
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// SourceFSAdapter abstracts the filesystem access the game needs to load
// source texts, so the domain layer can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadText loads a source text in full. The returned slice holds no NUL
	// bytes; a missing path yields model.ErrFileNotFound.
	ReadText(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ExpandPath resolves a leading ~ and makes the path absolute.
	ExpandPath(path m.Path) (m.Path, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadText reads the whole file at path.
func (a *LocalSourceFSAdapter) ReadText(path m.Path) ([]byte, error) {
	resolved, err := a.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	info, err := a.FileInfo(resolved)
	if err != nil {
		return nil, notFound(path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", m.ErrFileNotFound, path)
	}

	// #nosec G304 - the player chooses which text to play
	data, err := os.ReadFile(string(resolved))
	if err != nil {
		return nil, notFound(path, err)
	}

	if i := bytes.IndexByte(data, 0); i >= 0 {
		return nil, fmt.Errorf("%w: %s at offset %d", m.ErrBinaryDocument, path, i)
	}

	return data, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ExpandPath resolves ~ to the home directory and makes path absolute.
func (a *LocalSourceFSAdapter) ExpandPath(path m.Path) (m.Path, error) {
	return expandPath(path)
}

func expandPath(path m.Path) (m.Path, error) {
	p := strings.TrimSpace(string(path))
	if p == "" {
		return "", fmt.Errorf("%w: empty path", m.ErrFileNotFound)
	}

	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(p, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		p = filepath.Join(home, suffix)
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

func notFound(path m.Path, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s", m.ErrFileNotFound, path)
	}

	return fmt.Errorf("failed to read %s: %w", path, err)
}
