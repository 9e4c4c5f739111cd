// report.go holds the structured validation report and its text
// rendering. Validation fills the report; rendering is a separate,
// uniform pass so that verbose formatting never interleaves with
// validation logic.

package nomen

import (
	"fmt"

	"github.com/mikrolab/nomen/internal/diff"
)

// Verdict strings are fixed so downstream archive tooling can grep
// logs for them.
const (
	VerdictConsistent = "Name is consistent with nomenclature"
	VerdictMismatch   = "Name does not fit nomenclature exactly"
)

// Level classifies a finding.
type Level int

const (
	// LevelInfo findings are the descriptive per-field breakdown,
	// shown only in verbose reports.
	LevelInfo Level = iota
	// LevelProblem findings are violations of the nomenclature,
	// always shown.
	LevelProblem
)

// Finding is one observation about one field (or, with Field 0, about
// the name as a whole).
type Finding struct {
	Field   int // 1-based field position, 0 for whole-name findings
	Level   Level
	Message string
}

// Report is the result of validating one filename.
type Report struct {
	Input      string      // raw filename as supplied
	Stem       string      // sanitized, extension-stripped stem
	Ext        string      // extension, with leading dot
	Fields     []string    // the eight sections; nil when Split != nil
	Split      *SplitError // set when the stem did not split into eight sections
	Canonical  string      // canonical stem; equal to Stem when Consistent
	Consistent bool
	Findings   []Finding
	Verbose    bool
}

func (r *Report) info(field int, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Field: field, Level: LevelInfo, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) problem(field int, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Field: field, Level: LevelProblem, Message: fmt.Sprintf(format, args...)})
}

// Problems reports how many nomenclature violations were found. A
// mismatch verdict alone is not counted; it is a reportable finding,
// not an error.
func (r Report) Problems() int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == LevelProblem {
			n++
		}
	}
	return n
}

// CurrentName returns the sanitized filename as it stands.
func (r Report) CurrentName() string { return r.Stem + r.Ext }

// UpdatedName returns the canonical filename the validators arrived
// at. Equal to CurrentName for consistent names and for names that
// failed to split.
func (r Report) UpdatedName() string {
	if r.Split != nil {
		return r.CurrentName()
	}
	return r.Canonical + r.Ext
}

// Lines renders the report as ordered text lines: the filename, the
// findings (info lines filtered unless verbose), and the verdict. A
// split failure is terminal, so its diagnostic stands in for the
// verdict.
func (r Report) Lines() []string {
	lines := []string{r.Input}
	for _, f := range r.Findings {
		if f.Level == LevelInfo && !r.Verbose {
			continue
		}
		if f.Field > 0 {
			lines = append(lines, fmt.Sprintf("  field %d: %s", f.Field, f.Message))
		} else {
			lines = append(lines, "  "+f.Message)
		}
	}
	if r.Split != nil {
		return lines
	}

	if r.Consistent {
		return append(lines, "  "+VerdictConsistent)
	}

	lines = append(lines,
		"  "+VerdictMismatch,
		"    current: "+r.CurrentName(),
		"    updated: "+r.UpdatedName(),
	)
	if r.Verbose {
		lines = append(lines, "    changes: "+diff.Compute(r.CurrentName(), r.UpdatedName()).Inline())
	}
	return lines
}
