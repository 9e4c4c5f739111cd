// check.go runs the full validation pass for one filename: sanitize,
// split, per-field validators, canonical reconstruction.
//
// Design: each validator contributes (field, finding) pairs to the
// report rather than printing as it goes. Validators are independent;
// a failed date never stops the lens field from being checked, and a
// failed file never stops the next one. Only a split failure is
// terminal, and then only for its own file.

package nomen

import (
	"path/filepath"
	"strings"
)

// Options configures a validation pass.
type Options struct {
	// Verbose makes the report include the descriptive per-field
	// breakdown (condition/replicate, destination path, parsed dates,
	// label list, lens triplet) alongside any errors.
	Verbose bool
}

// Check validates a single filename against the nomenclature and
// returns the structured report. It never fails: every problem it
// finds becomes a finding on the report.
func Check(filename string, opts Options) Report {
	r := Report{Input: filename, Verbose: opts.Verbose}

	sanitized := Sanitize(filename)
	r.Ext = filepath.Ext(sanitized)
	r.Stem = strings.TrimSuffix(sanitized, r.Ext)
	if sanitized != filename {
		r.info(0, "sanitized to %q", sanitized)
	}

	fields, err := SplitFields(r.Stem)
	if err != nil {
		se := err.(*SplitError)
		r.Split = se
		r.problem(0, "%d of %d sections found (%s)", se.Count, FieldCount, se.Hint())
		return r
	}
	r.Fields = fields

	canonical := make([]string, FieldCount)
	copy(canonical, fields)

	condition, replicate := SplitReplicate(fields[FieldCondition])
	r.info(FieldCondition+1, "condition %q, replicate %q", condition, replicate)
	r.info(0, "destination path %s", DestinationPath(fields))

	for _, idx := range []int{FieldIHCDate, FieldCaptureDate} {
		if t, derr := ParseDate(fields[idx]); derr != nil {
			r.problem(idx+1, "%s", derr.Error())
		} else {
			r.info(idx+1, "date %s", t.Format("2006-01-02"))
		}
	}

	canonical[FieldLabels] = NormalizeLabels(fields[FieldLabels])
	r.info(FieldLabels+1, "labels %s", strings.Join(strings.Split(canonical[FieldLabels], "+"), ", "))

	if lens, lerr := NormalizeLens(fields[FieldLens]); lerr != nil {
		r.problem(FieldLens+1, "%s", lerr.Error())
	} else {
		canonical[FieldLens] = lens
		r.info(FieldLens+1, "lens/zoom/image %s", lens)
	}

	r.Canonical = strings.Join(canonical, "_")
	r.Consistent = r.Canonical == r.Stem
	return r
}
