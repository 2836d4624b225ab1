package extract

import "strings"

// matchText applies a field's patterns against the flattened document text
// in declared order and returns the first hit: the first capture group when
// the pattern has one, otherwise the whole match. Returns "" when nothing
// matches.
func matchText(spec *Spec, field, text string) string {
	for _, re := range spec.patternsFor(field) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}
