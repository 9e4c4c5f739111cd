// Package diff computes character-level differences between two
// filenames and formats them for reports. Filenames are single lines,
// so the output is an inline wdiff-style marking rather than a
// unified diff.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result holds the diff between a current and an updated name.
type Result struct {
	Old  string
	New  string
	segs []diffmatchpatch.Diff
}

// Compute returns the character-level diff between old and new.
func Compute(oldName, newName string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldName, newName, false)
	d = dmp.DiffCleanupSemantic(d)
	return Result{Old: oldName, New: newName, segs: d}
}

// Inline renders the diff on one line, marking deletions as [-x-] and
// insertions as {+y+}.
func (r Result) Inline() string {
	var b strings.Builder
	for _, d := range r.segs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Colourise adds ANSI colours to an inline diff: deletions red,
// insertions green.
func Colourise(inline string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)
	s := strings.ReplaceAll(inline, "[-", red+"[-")
	s = strings.ReplaceAll(s, "-]", "-]"+reset)
	s = strings.ReplaceAll(s, "{+", green+"{+")
	return strings.ReplaceAll(s, "+}", "+}"+reset)
}

// Changed reports whether the two names differ at all.
func (r Result) Changed() bool {
	for _, d := range r.segs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}
