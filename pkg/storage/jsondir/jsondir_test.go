package jsondir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestWriteRead(t *testing.T) {
	dir := Open(filepath.Join(t.TempDir(), "nested", "store"))

	require.NoError(t, dir.Write("a", doc{Name: "Ann", Items: []string{"x"}}))

	raw, err := os.ReadFile(dir.FileName("a"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"Ann\",\n  \"items\": [\n    \"x\"\n  ]\n}", string(raw))

	var got doc
	require.NoError(t, dir.Read("a", &got))
	assert.Equal(t, doc{Name: "Ann", Items: []string{"x"}}, got)
}

func TestWrite_Overwrites(t *testing.T) {
	dir := Open(t.TempDir())

	require.NoError(t, dir.Write("a", doc{Name: "first"}))
	require.NoError(t, dir.Write("a", doc{Name: "second"}))

	var got doc
	require.NoError(t, dir.Read("a", &got))
	assert.Equal(t, "second", got.Name)

	entries, err := os.ReadDir(dir.Path())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestRead_Missing(t *testing.T) {
	dir := Open(t.TempDir())

	var got doc
	err := dir.Read("nope", &got)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotExist))
}

func TestRead_Corrupt(t *testing.T) {
	dir := Open(t.TempDir())
	require.NoError(t, os.WriteFile(dir.FileName("bad"), []byte("{not json"), 0o644))

	var got doc
	err := dir.Read("bad", &got)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotExist))
	assert.Contains(t, err.Error(), "bad.json")
}

func TestKeys(t *testing.T) {
	root := t.TempDir()
	dir := Open(root)
	for _, name := range []string{"b.json", "a.json", "notes.txt", ".tmp-123", "c.JSON"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("{}"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub.json"), 0o755))

	keys, err := dir.Keys()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestKeys_MissingDirectory(t *testing.T) {
	dir := Open(filepath.Join(t.TempDir(), "absent"))

	keys, err := dir.Keys()

	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestWriteFileAtomic_FailsIfDirectoryMissing(t *testing.T) {
	err := writeFileAtomic(filepath.Join(t.TempDir(), "missing", "x.json"), []byte("{}"), 0o644)
	assert.Error(t, err)
}
