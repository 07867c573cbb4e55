package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(calls *int) Loader[string] {
	return func(path string) (string, error) {
		*calls++
		data, err := os.ReadFile(path)
		return string(data), err
	}
}

func touch(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestFileCache_Get(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forecast.csv")
	base := time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)
	touch(t, path, "a", base)

	c := NewFileCache[string]("test")
	calls := 0

	v, err := c.Get(path, countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, calls)

	// Arquivo inalterado - deve vir do cache
	v, err = c.Get(path, countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, calls)

	// Data de modificação diferente - deve recarregar
	touch(t, path, "b", base.Add(time.Minute))
	v, err = c.Get(path, countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, calls)

	// Mesmo mtime mas tamanho diferente - deve recarregar
	touch(t, path, "bb", base.Add(time.Minute))
	v, err = c.Get(path, countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, "bb", v)
	assert.Equal(t, 3, calls)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(3), stats.Misses)
	require.Len(t, stats.Entries, 1)
	assert.Equal(t, path, stats.Entries[0].Path)
}

func TestFileCache_LoadErrorIsNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recs.csv")
	touch(t, path, "x", time.Now())

	c := NewFileCache[string]("test")
	boom := errors.New("malformed")

	_, err := c.Get(path, func(string) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, c.Stats().Entries)

	calls := 0
	v, err := c.Get(path, countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	assert.Equal(t, 1, calls)
}

func TestFileCache_MissingFile(t *testing.T) {
	c := NewFileCache[string]("test")
	calls := 0

	_, err := c.Get(filepath.Join(t.TempDir(), "nope.csv"), countingLoader(&calls))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 0, calls)
}

func TestFileCache_Invalidate(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	touch(t, a, "a", time.Now())
	touch(t, b, "b", time.Now())

	c := NewFileCache[string]("test")
	calls := 0
	_, _ = c.Get(a, countingLoader(&calls))
	_, _ = c.Get(b, countingLoader(&calls))
	assert.Equal(t, 2, calls)

	assert.True(t, c.Invalidate(a))
	assert.False(t, c.Invalidate(a))

	_, _ = c.Get(a, countingLoader(&calls))
	assert.Equal(t, 3, calls)

	assert.Equal(t, 2, c.InvalidateAll())
	assert.Empty(t, c.Stats().Entries)
}

func TestFileCache_Prune(t *testing.T) {
	dir := t.TempDir()
	kept := filepath.Join(dir, "kept.csv")
	changed := filepath.Join(dir, "changed.csv")
	removed := filepath.Join(dir, "removed.csv")
	base := time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)

	for _, p := range []string{kept, changed, removed} {
		touch(t, p, "v", base)
	}

	c := NewFileCache[string]("test")
	calls := 0
	for _, p := range []string{kept, changed, removed} {
		_, err := c.Get(p, countingLoader(&calls))
		require.NoError(t, err)
	}

	touch(t, changed, "v2", base.Add(time.Hour))
	require.NoError(t, os.Remove(removed))

	pruned := c.Prune()
	assert.ElementsMatch(t, []string{changed, removed}, pruned)

	stats := c.Stats()
	require.Len(t, stats.Entries, 1)
	assert.Equal(t, kept, stats.Entries[0].Path)
}
