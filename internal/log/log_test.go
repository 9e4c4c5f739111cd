package log

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		Log(Entry{
			Source:       "cli:scan",
			Action:       "scan",
			Path:         "/data/confocal",
			Files:        12,
			Consistent:   10,
			Inconsistent: 2,
			Success:      true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, path string
		var files, consistent, inconsistent, success int
		err = db.QueryRow("SELECT source, action, path, files, consistent, inconsistent, success FROM log WHERE id = 1").
			Scan(&source, &action, &path, &files, &consistent, &inconsistent, &success)
		require.NoError(t, err)
		assert.Equal(t, "cli:scan", source)
		assert.Equal(t, "scan", action)
		assert.Equal(t, "/data/confocal", path)
		assert.Equal(t, 12, files)
		assert.Equal(t, 10, consistent)
		assert.Equal(t, 2, inconsistent)
		assert.Equal(t, 1, success)
	})

	t.Run("fluent builder records failure", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("cli:check", "check").
			Path("bad name.tif").
			Files(1).
			Counts(0, 1).
			Detail("reason", "split").
			Write(errors.New("boom"))

		entries, err := Recent(1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.False(t, entries[0].Success)
		assert.Equal(t, "boom", entries[0].Error)
		assert.Equal(t, 1, entries[0].Inconsistent)
	})

	t.Run("recent returns newest first", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("cli:check", "check").Path("first.tif").Write(nil)
		Event("cli:check", "check").Path("second.tif").Write(nil)

		entries, err := Recent(2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "second.tif", entries[0].Path)
		assert.Equal(t, "first.tif", entries[1].Path)
	})
}

func TestLog_NoopWhenClosed(t *testing.T) {
	// Must not panic or write anywhere when the logger was never opened.
	Event("cli:check", "check").Path("x.tif").Write(nil)

	entries, err := Recent(5)
	require.NoError(t, err)
	assert.Nil(t, entries)
}
