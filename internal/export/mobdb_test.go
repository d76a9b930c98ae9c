package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/athena-tools/mobgen/internal/convert"
	"github.com/athena-tools/mobgen/internal/export"
)

func entryWithID(id int, name string) convert.MobEntry {
	return convert.MobEntry{
		ID:        id,
		AegisName: name,
		Name:      name,
		Level:     1,
		Hp:        100,
	}
}

func TestLoadMobDB_MissingFileIsFresh(t *testing.T) {
	db, err := export.LoadMobDB(filepath.Join(t.TempDir(), "mob_db.yml"))
	require.NoError(t, err)
	assert.Equal(t, "MOB_DB", db.Header.Type)
	assert.Equal(t, 2, db.Header.Version)
	assert.Empty(t, db.Body)
}

func TestLoadMobDB_MalformedFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mob_db.yml")
	require.NoError(t, os.WriteFile(path, []byte("Body: [broken"), 0644))

	_, err := export.LoadMobDB(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mob_db.yml")

	db := export.NewMobDB()
	db.Upsert(entryWithID(1002, "PORING"))
	require.NoError(t, export.SaveMobDB(path, db))

	got, err := export.LoadMobDB(path)
	require.NoError(t, err)
	require.Len(t, got.Body, 1)
	assert.Equal(t, 1002, got.Body[0].ID)
	assert.Equal(t, "PORING", got.Body[0].AegisName)
}

func TestUpsert_ReplacesByID(t *testing.T) {
	db := export.NewMobDB()

	replaced := db.Upsert(entryWithID(1002, "PORING"))
	assert.False(t, replaced)

	replaced = db.Upsert(entryWithID(1002, "PORING_V2"))
	assert.True(t, replaced)

	require.Len(t, db.Body, 1)
	assert.Equal(t, "PORING_V2", db.Body[0].AegisName)
}

func TestUpsert_PreservesOrderAndUnrelatedEntries(t *testing.T) {
	db := export.NewMobDB()
	db.Upsert(entryWithID(1001, "SCORPION"))
	db.Upsert(entryWithID(1002, "PORING"))
	db.Upsert(entryWithID(1004, "HORNET"))

	db.Upsert(entryWithID(1002, "PORING_NEW"))

	require.Len(t, db.Body, 3)
	assert.Equal(t, 1001, db.Body[0].ID)
	assert.Equal(t, 1002, db.Body[1].ID)
	assert.Equal(t, "PORING_NEW", db.Body[1].AegisName)
	assert.Equal(t, 1004, db.Body[2].ID)
}

func TestSaveMobDB_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yml")
	b := filepath.Join(dir, "b.yml")

	db := export.NewMobDB()
	db.Upsert(entryWithID(1001, "SCORPION"))
	db.Upsert(entryWithID(1002, "PORING"))

	require.NoError(t, export.SaveMobDB(a, db))
	require.NoError(t, export.SaveMobDB(b, db))

	dataA, err := os.ReadFile(a)
	require.NoError(t, err)
	dataB, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, dataA, dataB)
}

func TestResetMobDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mob_db.yml")

	db := export.NewMobDB()
	db.Upsert(entryWithID(1002, "PORING"))
	require.NoError(t, export.SaveMobDB(path, db))

	require.NoError(t, export.ResetMobDB(path))

	got, err := export.LoadMobDB(path)
	require.NoError(t, err)
	assert.Empty(t, got.Body)
	assert.Equal(t, "MOB_DB", got.Header.Type)
}

// Property-based tests

func TestPropertyUpsertKeysUnique(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfN(rapid.IntRange(1, 50), 1, 40).Draw(t, "ids")

		db := export.NewMobDB()
		for _, id := range ids {
			db.Upsert(entryWithID(id, "MOB"))
		}

		seen := make(map[int]bool)
		for _, e := range db.Body {
			if seen[e.ID] {
				t.Fatalf("duplicate id %d in body", e.ID)
			}
			seen[e.ID] = true
		}
	})
}
