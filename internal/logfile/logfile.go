// Package logfile writes validation reports to a timestamped
// plain-text log, one file per scan. The lab keeps these alongside
// the archive as the human-readable record of what was checked when;
// structured history lives in the audit database instead.
package logfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const stampLayout = "2006-01-02 15:04:05"

// Writer appends validation reports to a single log file.
type Writer struct {
	f    *os.File
	path string
}

// New creates dir if needed and opens a fresh log file named
// nomen-checks-<timestamp>.log inside it.
func New(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	now := time.Now()
	path := filepath.Join(dir, "nomen-checks-"+now.Format("20060102-150405")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	w := &Writer{f: f, path: path}
	_, err = fmt.Fprintf(f, "nomen validation run started %s\n\n", now.Format(stampLayout))
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Path returns the log file's location.
func (w *Writer) Path() string { return w.path }

// Report appends one file's report lines followed by a blank line.
func (w *Writer) Report(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w.f, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w.f)
	return err
}

// Summary appends the run summary and footer timestamp.
func (w *Writer) Summary(files, consistent, inconsistent, unparseable int) error {
	_, err := fmt.Fprintf(w.f,
		"checked %d, consistent %d, inconsistent %d, unparseable %d\nfinished %s\n",
		files, consistent, inconsistent, unparseable, time.Now().Format(stampLayout))
	return err
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return w.f.Close()
}
