package prefs

import (
	"testing"

	"github.com/avillega/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func TestStore_DefaultIsGridNoSort(t *testing.T) {
	s := testStore(t)

	p, err := s.Get("network")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewGrid, p.ViewMode)
	assert.Empty(t, p.SortKey)
}

func TestStore_SetThenGetRoundTrips(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Set("network", SectionPrefs{ViewMode: domain.ViewList, SortKey: "name"}))

	p, err := s.Get("network")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewList, p.ViewMode)
	assert.Equal(t, "name", p.SortKey)
}

func TestStore_SectionsAreIndependent(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Set("network", SectionPrefs{ViewMode: domain.ViewList}))
	require.NoError(t, s.Set("skills", SectionPrefs{ViewMode: domain.ViewGrid, SortKey: "progress"}))

	network, err := s.Get("network")
	require.NoError(t, err)
	skills, err := s.Get("skills")
	require.NoError(t, err)

	assert.Equal(t, domain.ViewList, network.ViewMode)
	assert.Equal(t, domain.ViewGrid, skills.ViewMode)
	assert.Equal(t, "progress", skills.SortKey)
}

func TestStore_OverwriteReplacesRow(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Set("tasks", SectionPrefs{ViewMode: domain.ViewList, SortKey: "due"}))
	require.NoError(t, s.Set("tasks", SectionPrefs{ViewMode: domain.ViewGrid}))

	p, err := s.Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewGrid, p.ViewMode)
	assert.Empty(t, p.SortKey)
}

func TestStore_UnknownStoredModeFallsBackToGrid(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`INSERT INTO section_prefs (section, view_mode, sort_key) VALUES ('tasks', 'mosaic', '')`)
	require.NoError(t, err)

	p, err := NewStore(db).Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewGrid, p.ViewMode)
}
