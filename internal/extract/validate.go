package extract

import "regexp"

// Shape contracts per field. A candidate that fails its field's contract is
// discarded and the next strategy in priority order gets a turn.
var (
	tokenShape       = regexp.MustCompile(`^\d{12,15}$`)
	tanShape         = regexp.MustCompile(`^[A-Z]{4}\d{5}[A-Z]$`)
	dateShape        = regexp.MustCompile(`^\d{1,2}\s+[A-Za-z]+\s+\d{4}$`)
	periodicityShape = regexp.MustCompile(`^Q[1-4]$`)
	fyShape          = regexp.MustCompile(`^\d{4}-\d{2}$`)
	totalShape       = regexp.MustCompile(`^[\d,.]+$`)
	receiptShape     = regexp.MustCompile(`^QV[ZR][A-Z]{3,5}$`)
)

// Valid reports whether value satisfies the shape contract for field. The
// empty string never validates. Fields without a contract of their own
// (FileName, Error) accept any non-empty value.
func Valid(field, value string) bool {
	if value == "" {
		return false
	}

	switch field {
	case FieldToken:
		return tokenShape.MatchString(value)
	case FieldTAN:
		return tanShape.MatchString(value)
	case FieldDate:
		return dateShape.MatchString(value)
	case FieldFormNo:
		return value == "26Q"
	case FieldPeriodicity:
		return periodicityShape.MatchString(value)
	case FieldFY:
		return fyShape.MatchString(value)
	case FieldTotal:
		return totalShape.MatchString(value)
	case FieldReceipt:
		return receiptShape.MatchString(value)
	case FieldStatement:
		return value == "Regular" || value == "Correction"
	case FieldDeductor:
		// Candidates reach validation already routed through CleanDeductorName,
		// so any non-empty survivor is acceptable.
		return true
	default:
		return true
	}
}
