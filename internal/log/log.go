// Package log provides centralised audit logging for nomen runs.
// Entries are stored in ~/.nomen/log/nomen-log.db and record every
// check and scan performed across directories.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("cli:check", "check").
//		Path(name).
//		Detail("consistent", rep.Consistent).
//		Write(err)
//
//	log.Event("cli:scan", "scan").
//		Path(dir).
//		Files(len(files)).
//		Counts(ok, bad).
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
package log

import (
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit log entry.
type Entry struct {
	Source string // e.g. "cli:check", "mcp:nomen_scan"
	Action string // verb: check, scan, guide
	Path   string // filename or directory the run covered

	Files        int // number of files validated
	Consistent   int // names that matched the nomenclature exactly
	Inconsistent int // names that did not

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the run itself completed
	Error   string         // error message if it did not
	Detail  map[string]any // additional run-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to persist the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the filename or directory the run covered.
func (b *Builder) Path(p string) *Builder {
	b.entry.Path = p
	return b
}

// Files sets how many files were validated.
func (b *Builder) Files(n int) *Builder {
	b.entry.Files = n
	return b
}

// Counts sets the consistent/inconsistent tallies for the run.
func (b *Builder) Counts(consistent, inconsistent int) *Builder {
	b.entry.Consistent = consistent
	b.entry.Inconsistent = inconsistent
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry, deriving success/failure from err.
// Safe to call when the logger was never opened (no-op).
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}
