// lens.go normalises the lens/zoom/image-number field.
//
// Two surface forms occur in the archive: the canonical dashed form
// ("10X-z1-1") and a compact form with lens and zoom fused
// ("10Xz1-1"). Both converge on the canonical form so round-tripping
// is format-independent.

package nomen

import "strings"

// NormalizeLens normalises the lens field to `<LENS>X-z<zoom>-<image>`
// form. On failure the original field is returned unchanged together
// with a *LensError.
func NormalizeLens(field string) (string, error) {
	tokens := strings.Split(strings.ToLower(field), "-")

	if len(tokens) >= 3 {
		// Dashed form: <lens>x-z<zoom>-<image...>
		lens := strings.ToUpper(tokens[0])
		zoom := strings.TrimPrefix(tokens[1], "z")
		image := strings.Join(tokens[2:], "-")
		return lens + "-z" + zoom + "-" + image, nil
	}

	// Compact form: the first token fuses lens and zoom around an "x".
	parts := strings.SplitN(tokens[0], "x", 2)
	if len(parts) < 2 {
		return field, &LensError{Value: field}
	}
	lens := parts[0]
	zoom := strings.TrimPrefix(parts[1], "z")
	image := strings.Join(tokens[1:], "-")
	return lens + "X-z" + zoom + "-" + image, nil
}
