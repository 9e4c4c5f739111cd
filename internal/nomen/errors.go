// errors.go defines sentinel errors and the error types carried by
// per-field findings.
//
// Design: Sentinel errors anchor errors.Is checks; the typed errors
// wrap them and carry the diagnostic detail (fields found, offending
// value) that the reporter needs to phrase its hints.

package nomen

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldCount indicates the stem did not split into exactly
	// eight underscore-delimited sections.
	ErrFieldCount = errors.New("wrong number of sections")
	// ErrBadDate indicates a field that should be a YYMMDD date is not.
	ErrBadDate = errors.New("not a valid YYMMDD date")
	// ErrLensFormat indicates the lens/zoom/image field could not be
	// decomposed.
	ErrLensFormat = errors.New("cannot parse lens/zoom")
)

// SplitError describes a field-count mismatch. It is terminal for the
// file it occurred on: no per-field validation happens after it.
type SplitError struct {
	Fields []string // the sections that were found, in order
	Count  int      // len(Fields)
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("%v: found %d, want %d", ErrFieldCount, e.Count, FieldCount)
}

func (e *SplitError) Unwrap() error { return ErrFieldCount }

// Hint categorises the mismatch for the report: a single section
// suggests the wrong delimiter, otherwise the hint counts the missing
// or extra sections.
func (e *SplitError) Hint() string {
	switch {
	case e.Count == 1:
		return "only one section found: a delimiter other than underscore was likely used"
	case e.Count < FieldCount:
		return fmt.Sprintf("too few sections: %d missing", FieldCount-e.Count)
	default:
		return fmt.Sprintf("too many sections: %d extra", e.Count-FieldCount)
	}
}

// DateError reports a field that failed strict YYMMDD parsing.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%q is not a date in the expected YYMMDD format", e.Value)
}

func (e *DateError) Unwrap() error { return ErrBadDate }

// LensError reports a lens/zoom/image field that could not be parsed.
// The field is left unmodified in the canonical reconstruction.
type LensError struct {
	Value string
}

func (e *LensError) Error() string {
	return fmt.Sprintf("cannot parse lens/zoom from %q", e.Value)
}

func (e *LensError) Unwrap() error { return ErrLensFormat }
