package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_ReadText(t *testing.T) {
	t.Run("reads the whole file", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "poem.txt")
		writeTestFile(t, path, "hi dog\nsecond line\n")

		data, err := adapter.ReadText(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, "hi dog\nsecond line\n", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.ReadText(m.Path(filepath.Join(t.TempDir(), "nope.txt")))
		assert.ErrorIs(t, err, m.ErrFileNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.ReadText(m.Path(t.TempDir()))
		assert.ErrorIs(t, err, m.ErrFileNotFound)
	})

	t.Run("empty path", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.ReadText("  ")
		assert.ErrorIs(t, err, m.ErrFileNotFound)
	})

	t.Run("binary content", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "blob.bin")
		writeTestFile(t, path, "ab\x00cd")

		_, err := adapter.ReadText(m.Path(path))
		assert.ErrorIs(t, err, m.ErrBinaryDocument)
	})
}

func TestLocalSourceFSAdapter_ExpandPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := adapter.ExpandPath("~/texts/a.txt")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(home, "texts", "a.txt")), got)

	got, err = adapter.ExpandPath("relative.txt")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(string(got)))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
