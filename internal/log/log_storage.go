// log_storage.go implements SQLite-based persistent audit logging.
//
// Separated from log.go to isolate database concerns: log.go provides
// the fluent API, this file handles persistence and queries. SQLite
// keeps the history queryable across directories in a way plain text
// logs are not. The project field is a hash of the working directory,
// enabling aggregation while preserving privacy.
//
// Errors during logging are reported to stderr but otherwise ignored:
// a validation run must not fail because its audit entry could not be
// recorded.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, action, path,
		                 files, consistent, inconsistent, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, e.Action,
		nilIfEmpty(e.Path), e.Files, e.Consistent, e.Inconsistent,
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "nomen: audit log write failed: %v\n", err)
	}
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the current directory so logging still works in
		// unusual environments (containers, cron) rather than silently
		// failing.
		return filepath.Join(".nomen", "log", "nomen-log.db")
	}
	return filepath.Join(home, ".nomen", "log", "nomen-log.db")
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPathFunc()
}

// hash creates a project identifier from the directory path, enabling
// cross-directory log queries while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			start        INTEGER NOT NULL,
			end          INTEGER NOT NULL,
			project      TEXT NOT NULL,
			source       TEXT NOT NULL,
			action       TEXT NOT NULL,
			path         TEXT,
			files        INTEGER NOT NULL DEFAULT 0,
			consistent   INTEGER NOT NULL DEFAULT 0,
			inconsistent INTEGER NOT NULL DEFAULT 0,
			success      INTEGER NOT NULL,
			error        TEXT,
			detail       TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them
// (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	l := &Logger{db: db}
	if wd, err := os.Getwd(); err == nil {
		l.project = hash(wd)
	}
	global = l
	return nil
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}

// Recent returns the latest entries, newest first. Returns nil when
// the logger was never opened.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.Query(`
		SELECT start, end, source, action,
		       COALESCE(path, ''), files, consistent, inconsistent,
		       success, COALESCE(error, '')
		FROM log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var success int
		if err := rows.Scan(&e.Start, &e.End, &e.Source, &e.Action,
			&e.Path, &e.Files, &e.Consistent, &e.Inconsistent,
			&success, &e.Error); err != nil {
			return nil, err
		}
		e.Success = success == 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func dbPath() string {
	return dbPathFunc()
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
