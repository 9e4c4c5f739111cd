// Package progress provides a CLI progress indicator for scan runs.
// Output goes to stderr to keep stdout clean for piping reports, and
// TTY detection keeps scripted runs free of carriage-return noise.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// minItems is the minimum number of files before progress is shown.
// For a handful of files progress adds noise without benefit.
const minItems = 10

// Progress tracks and displays how far through a batch a scan is.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
}

// New creates a progress reporter that writes to stderr.
// If total is less than minItems, updates are suppressed.
func New(label string, total int) *Progress {
	return &Progress{
		w:     os.Stderr,
		label: label,
		total: total,
		isTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Step advances the counter and, on a TTY with a large enough batch,
// rewrites the progress line in place.
func (p *Progress) Step() {
	p.current++
	if p.total < minItems || !p.isTTY {
		return
	}
	pct := (p.current * 100) / p.total
	fmt.Fprintf(p.w, "\r%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
}

// Done terminates the progress line if one was being drawn.
func (p *Progress) Done() {
	if p.total >= minItems && p.isTTY {
		fmt.Fprint(p.w, "\r\033[K")
	}
}
