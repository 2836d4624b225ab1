package extract

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	leadingDigits = regexp.MustCompile(`^(\d+)`)
	afterDigits   = regexp.MustCompile(`^\d+[\s_-]+(.+)$`)
)

// TokenFromFilename returns the leading digit run of the filename. The
// resolver's validator enforces the 12-15 digit length contract.
func TokenFromFilename(filename string) string {
	m := leadingDigits.FindStringSubmatch(filename)
	if m == nil {
		return ""
	}
	return m[1]
}

// DeductorFromFilename returns the filename text between the leading digit
// run and the extension. Last-resort strategy only; the result still goes
// through CleanDeductorName before acceptance.
func DeductorFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	m := afterDigits.FindStringSubmatch(base)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
