package extract

import (
	"regexp"
	"strings"
)

// Noise that bleeds into deductor-name captures when column boundaries are
// lost in the flattened text.
var (
	labelNoise        = regexp.MustCompile(`Token Number|Deductor/Collector`)
	receiptTailNoise  = regexp.MustCompile(`\s+NA\s+QV[A-Z][A-Z0-9]+`)
	quotedLabelNoise  = regexp.MustCompile(`be quoted on TDS`)
	trailingDigitRuns = regexp.MustCompile(`\s+\d+$`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
)

// Placeholder tokens that are never a real deductor name.
var deductorBlacklist = map[string]bool{
	"0":    true,
	"NA":   true,
	"None": true,
	"":     true,
}

// CleanDeductorName normalises a raw deductor-name candidate. Every
// strategy that produces a name routes through here before validation; it
// is the single normalisation path. Returns "" when the candidate is not
// usable. Cleaning an already-clean name returns it unchanged.
func CleanDeductorName(name string) string {
	if name == "" {
		return ""
	}

	name = labelNoise.ReplaceAllString(name, "")
	name = receiptTailNoise.ReplaceAllString(name, "")
	name = quotedLabelNoise.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	name = trailingDigitRuns.ReplaceAllString(name, "")
	name = whitespaceRuns.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	if len(name) < 3 || len(name) > 100 || deductorBlacklist[name] {
		return ""
	}
	return name
}
