// antibody.go normalises the dye/antibody/transcript label field.
//
// A label containing a dash is treated as an antibody pair, each dash
// segment being <species><target> with a two-letter species code. This
// is a heuristic: a dye or transcript name that itself contains a dash
// is misclassified as an antibody pair. The convention leaves correct
// behaviour undefined for that case, so the heuristic is kept as-is.

package nomen

import "strings"

// NormalizeLabels normalises the `+`-delimited label field. Label
// order is semantically meaningful (it matches channel order) and is
// preserved. Labels without a dash pass through unmodified.
// Normalisation is idempotent.
func NormalizeLabels(field string) string {
	labels := strings.Split(field, "+")
	for i, label := range labels {
		if strings.Contains(label, "-") {
			labels[i] = normalizeAntibody(label)
		}
	}
	return strings.Join(labels, "+")
}

// normalizeAntibody normalises each dash-separated segment of an
// antibody-pair label independently and rejoins them.
func normalizeAntibody(label string) string {
	segments := strings.Split(label, "-")
	for i, seg := range segments {
		segments[i] = normalizeSegment(seg)
	}
	return strings.Join(segments, "-")
}

// normalizeSegment lower-cases the two-letter species prefix and
// upper-cases the target, except that a phospho marker (leading
// lowercase p followed by an uppercase letter) keeps its p.
func normalizeSegment(seg string) string {
	if len(seg) <= 2 {
		return strings.ToLower(seg)
	}
	species := strings.ToLower(seg[:2])
	target := seg[2:]
	if isPhospho(target) {
		target = "p" + strings.ToUpper(target[1:])
	} else {
		target = strings.ToUpper(target)
	}
	return species + target
}

func isPhospho(target string) bool {
	return len(target) >= 2 &&
		target[0] == 'p' &&
		target[1] >= 'A' && target[1] <= 'Z'
}
