package nomen

import "strings"

// FieldCount is the number of underscore-delimited sections a
// conforming filename stem has.
const FieldCount = 8

// Positional indices into a split field vector. The convention numbers
// fields from 1; these are the zero-based equivalents.
const (
	FieldExperiment = iota // experiment name + researcher initials
	FieldDateNumber        // experiment date + number (destination path only)
	FieldCondition         // condition + replicate
	FieldIHCDate           // IHC date, YYMMDD
	FieldLabels            // dye/antibody/transcript labels
	FieldCaptureDate       // image capture date, YYMMDD
	FieldMicroscope        // microscope type, opaque
	FieldLens              // lens/zoom/image-number triplet
)

// SplitFields splits a sanitized, extension-stripped stem on
// underscores. It succeeds only when exactly FieldCount sections
// result; otherwise it returns a *SplitError describing what was
// found.
func SplitFields(stem string) ([]string, error) {
	fields := strings.Split(stem, "_")
	if len(fields) != FieldCount {
		return nil, &SplitError{Fields: fields, Count: len(fields)}
	}
	return fields, nil
}
