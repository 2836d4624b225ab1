package extract

import (
	"log/slog"
	"regexp"

	"github.com/taxkit/tds-extract/internal/pdf"
)

// bare shape used by the secondary TAN sweep, independent of any anchoring
// keyword.
var anyTAN = regexp.MustCompile(`[A-Z]{4}\d{5}[A-Z]`)

// resolver evaluates the per-field strategy chains for one document. It is
// built once per document because the table scanner and filename fallback
// depend on the resolved token number.
type resolver struct {
	spec   *Spec
	logger *slog.Logger
	doc    *pdf.Document
	scan   *tableScanner
	token  string
}

// strategy is one named candidate source in a field's priority chain.
type strategy struct {
	name string
	fn   func(field string) string
}

func newResolver(spec *Spec, logger *slog.Logger, doc *pdf.Document) *resolver {
	r := &resolver{spec: spec, logger: logger, doc: doc}
	r.token = r.resolveToken()
	r.scan = newTableScanner(spec, doc.Tables, r.token)
	return r
}

// resolveToken resolves the token number up front: direct text patterns,
// then a standalone table cell, then the filename. Later strategies for
// other fields take the token as input, which is why it goes first.
func (r *resolver) resolveToken() string {
	chain := []strategy{
		{"text", func(field string) string { return matchText(r.spec, field, r.doc.Text) }},
		{"table", func(string) string {
			return newTableScanner(r.spec, r.doc.Tables, "").tokenCell()
		}},
		{"filename", func(string) string { return TokenFromFilename(r.doc.FileName) }},
	}
	return r.run(FieldToken, chain)
}

// resolve walks a field's strategy chain and returns the first validated
// candidate, or the static default when the chain is exhausted, or "".
func (r *resolver) resolve(field string) string {
	if v := r.run(field, r.chain(field)); v != "" {
		return v
	}
	if d := r.spec.Default(field); d != "" {
		r.logger.Debug("field defaulted", "field", field, "value", d)
		return d
	}
	return ""
}

// chain returns the priority-ordered strategy list for a field. Most fields
// share the table-first ordering; Receipt Number trusts the direct text
// scan over table heuristics and never falls back to a default, because a
// wrong receipt number is worse than none.
func (r *resolver) chain(field string) []strategy {
	table := strategy{"table", r.scan.lookup}
	text := strategy{"text", func(f string) string { return matchText(r.spec, f, r.doc.Text) }}

	if field == FieldReceipt {
		return []strategy{
			text,
			{"table-label", r.scan.labelAdjacent},
			{"table-cell", func(string) string { return r.scan.receiptCell() }},
		}
	}

	chain := []strategy{table, text}
	if field == FieldDeductor {
		chain = append(chain, strategy{"filename", func(string) string {
			return DeductorFromFilename(r.doc.FileName)
		}})
	}
	if field == FieldTAN {
		chain = append(chain, strategy{"sweep", func(string) string {
			return anyTAN.FindString(r.doc.Text)
		}})
	}
	return chain
}

// run evaluates a chain, normalising and validating every candidate; the
// first survivor wins and short-circuits the rest.
func (r *resolver) run(field string, chain []strategy) string {
	for _, s := range chain {
		value := s.fn(field)
		if field == FieldDeductor {
			value = CleanDeductorName(value)
		}
		if !Valid(field, value) {
			continue
		}
		r.logger.Debug("field resolved", "field", field, "strategy", s.name, "value", value)
		return value
	}
	return ""
}
