// field.go covers the opaque fields: condition/replicate extraction
// and the destination path derived from the first three sections.

package nomen

import (
	"path/filepath"
	"strings"
)

// SplitReplicate separates the condition field into condition and
// replicate. A hash takes precedence as delimiter; otherwise the final
// dash is used. With no delimiter at all the whole field is the
// condition and the replicate is empty.
//
// Neither part is normalised; the split exists for the verbose report
// only and the field contributes to the canonical name unmodified.
func SplitReplicate(field string) (condition, replicate string) {
	sep := "-"
	if strings.Contains(field, "#") {
		sep = "#"
	}
	i := strings.LastIndex(field, sep)
	if i < 0 {
		return field, ""
	}
	return field[:i], field[i+1:]
}

// DestinationPath joins the first three fields into the hierarchical
// archive location the file would be routed to. Purely descriptive;
// nothing is moved.
func DestinationPath(fields []string) string {
	if len(fields) < 3 {
		return ""
	}
	return filepath.Join(fields[FieldExperiment], fields[FieldDateNumber], fields[FieldCondition])
}
