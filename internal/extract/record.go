package extract

// Canonical field names. These double as the column headers in the
// exported workbook, so they keep the exact wording printed on the
// provisional receipts.
const (
	FieldToken       = "Tax Invoice cum Token Number"
	FieldDeductor    = "Name of Deductor"
	FieldDate        = "Date"
	FieldTAN         = "TAN"
	FieldFormNo      = "Form No"
	FieldReceipt     = "Receipt no.(to be quoted on TDS)"
	FieldStatement   = "Type of Statement"
	FieldFY          = "Financial Year"
	FieldPeriodicity = "Periodicity"
	FieldTotal       = "Total (Rounded off)"

	// Bookkeeping columns present alongside the extracted fields.
	ColumnFileName = "FileName"
	ColumnError    = "Error"
)

// Record holds the accepted value per field for one document. FileName is
// always present; Error is only set when extraction failed for the whole
// document. A field is either absent or holds exactly one accepted string.
type Record map[string]string

// NewRecord creates a record for the given document file name.
func NewRecord(fileName string) Record {
	return Record{ColumnFileName: fileName}
}

// NewErrorRecord creates a minimal record for a document that could not be
// processed at all.
func NewErrorRecord(fileName, errMsg string) Record {
	return Record{
		ColumnFileName: fileName,
		ColumnError:    errMsg,
	}
}

// Has reports whether the record holds a non-empty value for the field.
func (r Record) Has(field string) bool {
	return r[field] != ""
}

// set stores a value, dropping empty strings so absence stays absence.
func (r Record) set(field, value string) {
	if value != "" {
		r[field] = value
	}
}

// ColumnOrder is the fixed output column order for exported records.
var ColumnOrder = []string{
	ColumnFileName,
	FieldToken,
	FieldDeductor,
	FieldDate,
	FieldTAN,
	FieldFormNo,
	FieldReceipt,
	FieldStatement,
	FieldFY,
	FieldPeriodicity,
	FieldTotal,
	ColumnError,
}

// PresentColumns returns ColumnOrder filtered to the columns that occur in
// at least one of the given records.
func PresentColumns(records []Record) []string {
	seen := make(map[string]bool)
	for _, rec := range records {
		for col := range rec {
			seen[col] = true
		}
	}

	columns := make([]string, 0, len(ColumnOrder))
	for _, col := range ColumnOrder {
		if seen[col] {
			columns = append(columns, col)
		}
	}
	return columns
}
