package nomen

import (
	"regexp"
	"strings"
)

// Stripped in order: symbols filesystems reject, control characters,
// names that are nothing but dots, then any whitespace.
var (
	illegalChars = regexp.MustCompile(`[/\\?<>:*|"]`)
	controlChars = regexp.MustCompile(`[\x00-\x1f\x7f]`)
	dotOnlyName  = regexp.MustCompile(`^\.+$`)
	whitespace   = regexp.MustCompile(`\s`)
)

// Sanitize removes characters that are illegal or troublesome in
// filenames. It is total: any input yields a (possibly empty) result,
// and sanitizing twice changes nothing.
func Sanitize(name string) string {
	s := illegalChars.ReplaceAllString(name, "")
	s = controlChars.ReplaceAllString(s, "")
	s = dotOnlyName.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "")
	// Windows refuses names ending in dots or spaces.
	return strings.TrimRight(s, " .")
}
