package nomen

import "time"

// yymmdd is the strict layout for the IHC and capture date fields.
const yymmdd = "060102"

// ParseDate parses a field value as a YYMMDD calendar date. Parsing is
// strict: two digits each for year, month and day, month 1-12, and the
// day must exist in that month (leap years included). Century and
// day/month ambiguity are deliberately not resolved; the convention
// does not encode enough to do so.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(yymmdd, s)
	if err != nil {
		return time.Time{}, &DateError{Value: s}
	}
	return t, nil
}
