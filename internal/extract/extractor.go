package extract

import (
	"log/slog"
	"strings"

	"github.com/taxkit/tds-extract/internal/pdf"
)

// Extractor turns one extracted document into a result record by running
// the per-field strategy chains.
type Extractor struct {
	spec   *Spec
	logger *slog.Logger
}

// NewExtractor creates an extractor over the given field spec.
func NewExtractor(spec *Spec, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{spec: spec, logger: logger}
}

// Extract resolves every field for the document. A document without text is
// fatal for that document: the record carries only FileName and Error.
// Token Number goes first; the date and receipt inferences run last, after
// every direct strategy has had its turn.
func (e *Extractor) Extract(doc *pdf.Document) Record {
	rec := NewRecord(doc.FileName)

	if strings.TrimSpace(doc.Text) == "" {
		e.logger.Warn("no text extracted", "file", doc.FileName)
		rec[ColumnError] = "no text extracted"
		return rec
	}

	r := newResolver(e.spec, e.logger, doc)
	rec.set(FieldToken, r.token)

	for _, field := range e.spec.Fields() {
		rec.set(field, r.resolve(field))
	}

	if !rec.Has(FieldDate) {
		rec.set(FieldDate, InferDate(rec[FieldFY], rec[FieldPeriodicity]))
	}
	if !rec.Has(FieldReceipt) {
		rec.set(FieldReceipt, InferReceipt(rec[FieldDate], rec[FieldToken]))
	}

	return rec
}
