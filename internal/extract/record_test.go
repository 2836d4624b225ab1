package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_SetDropsEmpty(t *testing.T) {
	rec := NewRecord("a.pdf")
	rec.set(FieldTAN, "")
	rec.set(FieldDate, "5 March 2025")

	assert.False(t, rec.Has(FieldTAN))
	assert.True(t, rec.Has(FieldDate))
	assert.Equal(t, "a.pdf", rec[ColumnFileName])
}

func TestPresentColumns(t *testing.T) {
	records := []Record{
		NewRecord("a.pdf"),
		{ColumnFileName: "b.pdf", FieldDate: "5 March 2025", FieldTAN: "ABCD12345E"},
		NewErrorRecord("c.pdf", "no text extracted"),
	}

	got := PresentColumns(records)

	// Canonical order, restricted to columns that actually occurred.
	assert.Equal(t, []string{ColumnFileName, FieldDate, FieldTAN, ColumnError}, got)
}

func TestPresentColumns_Empty(t *testing.T) {
	assert.Empty(t, PresentColumns(nil))
}
