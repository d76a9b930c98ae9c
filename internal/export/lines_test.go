package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athena-tools/mobgen/internal/export"
)

func TestAppendLines_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "spawns.txt")

	require.NoError(t, export.AppendLines(path, []string{"line one", "line two"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", string(data))
}

func TestAppendLines_AccumulatesAcrossCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")

	require.NoError(t, export.AppendLines(path, []string{"a"}))
	require.NoError(t, export.AppendLines(path, []string{"b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestAppendLines_NoLinesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	require.NoError(t, export.AppendLines(path, nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAppendLines_StripsTrailingNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, export.AppendLines(path, []string{"line\n"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}

func TestResetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, export.AppendLines(path, []string{"old"}))

	require.NoError(t, export.ResetFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
