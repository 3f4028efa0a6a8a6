package adapter

import (
	"path/filepath"
	"testing"
	"time"

	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *SQLiteHistoryStore {
	t.Helper()

	store, err := NewSQLiteHistoryStore(m.Path(filepath.Join(t.TempDir(), "nested", "history.db")))
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteHistoryStore_RecordAndList(t *testing.T) {
	store := newTestHistory(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := store.Record(m.Record{Source: "a.txt", Seed: 1, TextLength: 10, Mistakes: 0, FinishedAt: base})
	require.NoError(t, err)
	require.Len(t, first.ID, 26)

	second, err := store.Record(m.Record{Source: "b.txt", Seed: 0xffffffff, TextLength: 20, Mistakes: 4, FinishedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
	assert.Equal(t, m.Path("b.txt"), records[0].Source)
	assert.Equal(t, uint32(0xffffffff), records[0].Seed)
	assert.Equal(t, 20, records[0].TextLength)
	assert.Equal(t, 4, records[0].Mistakes)
	assert.True(t, records[1].FinishedAt.Equal(base), "finished_at = %v", records[1].FinishedAt)
}

func TestSQLiteHistoryStore_ListLimit(t *testing.T) {
	store := newTestHistory(t)

	for i := range 5 {
		_, err := store.Record(m.Record{Source: "x.txt", Mistakes: i})
		require.NoError(t, err)
	}

	records, err := store.List(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestSQLiteHistoryStore_Empty(t *testing.T) {
	store := newTestHistory(t)

	records, err := store.List(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteHistoryStore_Reopen(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "history.db"))

	store, err := NewSQLiteHistoryStore(path)
	require.NoError(t, err)
	_, err = store.Record(m.Record{Source: "kept.txt", Mistakes: 2})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewSQLiteHistoryStore(path)
	require.NoError(t, err)
	defer store.Close()

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, m.Path("kept.txt"), records[0].Source)
}
