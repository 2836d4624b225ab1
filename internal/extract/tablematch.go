package extract

import (
	"regexp"
	"strings"

	"github.com/taxkit/tds-extract/internal/pdf"
)

// Offsets into the row that follows the "Date / TAN / Form No" label row of
// the recurring receipt template. Column 2 holds the AO Code and column 5
// is blank, so both are skipped.
var fixedOffsets = map[string]int{
	FieldDate:        0,
	FieldTAN:         1,
	FieldFormNo:      3,
	FieldPeriodicity: 4,
	FieldFY:          6,
}

var (
	standaloneToken = regexp.MustCompile(`^\d{12,15}$`)
	receiptInCell   = regexp.MustCompile(`\b(QV[ZR][A-Z]{3,5})\b`)
	numberInCell    = regexp.MustCompile(`([\d,]+\.?\d*)`)
)

// tableScanner scans a document's extracted tables for field values. All
// hits pass the field's validator before acceptance; a miss simply moves
// the scan along.
type tableScanner struct {
	spec   *Spec
	tables []pdf.Table
	token  string
}

func newTableScanner(spec *Spec, tables []pdf.Table, token string) *tableScanner {
	return &tableScanner{spec: spec, tables: tables, token: token}
}

// lookup runs the table sub-strategies for a field in order:
// label-adjacency scan, fixed-offset scan, then the field-specific scans.
func (ts *tableScanner) lookup(field string) string {
	// The cell right of the "Name of Deductor" label is another header in
	// the recurring template, so deductor skips the generic adjacency scan
	// in favour of its column-preferring variant.
	if field == FieldDeductor {
		return ts.deductorScan()
	}

	if v := ts.labelAdjacent(field); v != "" {
		return v
	}
	if v := ts.fixedOffset(field); v != "" {
		return v
	}

	switch field {
	case FieldToken:
		return ts.tokenCell()
	case FieldReceipt:
		return ts.receiptCell()
	case FieldTotal:
		return ts.totalCell()
	}
	return ""
}

// labelAdjacent scans every cell row-major for the field's label keywords;
// on a hit it checks the cell to the right, then the same column of the
// next row.
func (ts *tableScanner) labelAdjacent(field string) string {
	labels := ts.spec.Field(field).Labels
	if len(labels) == 0 {
		return ""
	}

	for _, table := range ts.tables {
		for r, row := range table.Rows {
			for c, cell := range row {
				if !cellHasLabels(cell, labels) {
					continue
				}
				if c+1 < len(row) {
					if v := ts.accept(field, row[c+1]); v != "" {
						return v
					}
				}
				if r+1 < len(table.Rows) && c < len(table.Rows[r+1]) {
					if v := ts.accept(field, table.Rows[r+1][c]); v != "" {
						return v
					}
				}
			}
		}
	}
	return ""
}

// fixedOffset reads the recurring template row that carries Date, TAN and
// Form No labels together; the following row holds the values at fixed
// column positions. Brittle against template drift, so every value is
// still validated.
func (ts *tableScanner) fixedOffset(field string) string {
	offset, ok := fixedOffsets[field]
	if !ok {
		return ""
	}

	for _, table := range ts.tables {
		for r, row := range table.Rows {
			if !isTemplateLabelRow(row) || r+1 >= len(table.Rows) {
				continue
			}
			values := table.Rows[r+1]
			if offset >= len(values) {
				continue
			}
			if v := ts.accept(field, values[offset]); v != "" {
				return v
			}
		}
	}
	return ""
}

// tokenCell looks for a cell that is nothing but a 12-15 digit number.
func (ts *tableScanner) tokenCell() string {
	for _, table := range ts.tables {
		for _, row := range table.Rows {
			for _, cell := range row {
				if standaloneToken.MatchString(strings.TrimSpace(cell)) {
					return strings.TrimSpace(cell)
				}
			}
		}
	}
	return ""
}

// receiptCell looks for the receipt prefix pattern in any cell.
func (ts *tableScanner) receiptCell() string {
	for _, table := range ts.tables {
		for _, row := range table.Rows {
			for _, cell := range row {
				if m := receiptInCell.FindStringSubmatch(cell); m != nil {
					if Valid(FieldReceipt, m[1]) {
						return m[1]
					}
				}
			}
		}
	}
	return ""
}

// totalCell looks for a cell carrying both "total" and "rounded" and pulls
// the numeric value out of it, falling back to the cell to its right.
func (ts *tableScanner) totalCell() string {
	for _, table := range ts.tables {
		for _, row := range table.Rows {
			for c, cell := range row {
				lower := strings.ToLower(cell)
				if !strings.Contains(lower, "total") || !strings.Contains(lower, "rounded") {
					continue
				}
				if m := numberInCell.FindStringSubmatch(cell); m != nil {
					if v := ts.accept(FieldTotal, m[1]); v != "" {
						return v
					}
				}
				if c+1 < len(row) {
					if m := numberInCell.FindStringSubmatch(row[c+1]); m != nil {
						if v := ts.accept(FieldTotal, m[1]); v != "" {
							return v
						}
					}
				}
			}
		}
	}
	return ""
}

// deductorScan covers the two deductor layouts seen in the wild: the name
// next to a "Name of Deductor" label cell (same column of the next row
// preferred, then the designated fallback column), and the summary row
// that starts with the token number and carries the name up to the "NA"
// marker cell.
func (ts *tableScanner) deductorScan() string {
	for _, table := range ts.tables {
		for r, row := range table.Rows {
			for c, cell := range row {
				if !cellHasLabels(cell, ts.spec.Field(FieldDeductor).Labels) {
					continue
				}
				if r+1 >= len(table.Rows) {
					continue
				}
				next := table.Rows[r+1]
				if c < len(next) {
					if v := ts.accept(FieldDeductor, next[c]); v != "" {
						return v
					}
				}
				if deductorFallbackColumn < len(next) {
					if v := ts.accept(FieldDeductor, next[deductorFallbackColumn]); v != "" {
						return v
					}
				}
			}
		}
	}

	if ts.token == "" {
		return ""
	}
	for _, table := range ts.tables {
		for _, row := range table.Rows {
			if v := ts.deductorFromTokenRow(row); v != "" {
				return v
			}
		}
	}
	return ""
}

// deductorFallbackColumn is where the name lands when the label column and
// the value column disagree in the summary template.
const deductorFallbackColumn = 1

// deductorFromTokenRow extracts the name from a row whose first cell holds
// the token number: the following cells up to the "NA" marker are the name.
func (ts *tableScanner) deductorFromTokenRow(row []string) string {
	if len(row) < 2 || !strings.Contains(row[0], ts.token) {
		return ""
	}

	var parts []string
	for _, cell := range row[1:] {
		if strings.TrimSpace(cell) == "NA" {
			break
		}
		parts = append(parts, cell)
	}
	if len(parts) == 0 {
		return ""
	}
	return ts.accept(FieldDeductor, strings.Join(parts, " "))
}

// accept normalises and validates a raw cell candidate, returning "" when
// it fails the field's contract.
func (ts *tableScanner) accept(field, raw string) string {
	value := strings.TrimSpace(raw)
	if field == FieldDeductor {
		value = CleanDeductorName(value)
	}
	if Valid(field, value) {
		return value
	}
	return ""
}

// cellHasLabels reports whether a cell contains every label keyword,
// case-insensitively.
func cellHasLabels(cell string, labels []string) bool {
	lower := strings.ToLower(cell)
	for _, label := range labels {
		if !strings.Contains(lower, label) {
			return false
		}
	}
	return true
}

// isTemplateLabelRow reports whether a row is the template's combined
// label row carrying "Date", "TAN" and "Form No" together.
func isTemplateLabelRow(row []string) bool {
	var hasDate, hasTAN, hasForm bool
	for _, cell := range row {
		lower := strings.ToLower(strings.TrimSpace(cell))
		if strings.Contains(lower, "date") {
			hasDate = true
		}
		if strings.Contains(lower, "tan") {
			hasTAN = true
		}
		if strings.Contains(lower, "form no") {
			hasForm = true
		}
	}
	return hasDate && hasTAN && hasForm
}
