package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taxkit/tds-extract/internal/pdf"
)

func TestTableScanner_FixedOffset(t *testing.T) {
	spec := newTestSpec(t)
	tables := []pdf.Table{
		{
			Page: 1,
			Rows: [][]string{
				{"Provisional Receipt"},
				{"Date", "TAN", "Form No"},
				{"5 March 2025", "ABCD12345E", "", "26Q", "Q4", "", "2024-25"},
			},
		},
	}
	ts := newTableScanner(spec, tables, "")

	assert.Equal(t, "5 March 2025", ts.lookup(FieldDate))
	assert.Equal(t, "ABCD12345E", ts.lookup(FieldTAN))
	assert.Equal(t, "26Q", ts.lookup(FieldFormNo))
	assert.Equal(t, "Q4", ts.lookup(FieldPeriodicity))
	assert.Equal(t, "2024-25", ts.lookup(FieldFY))
}

func TestTableScanner_LabelAdjacency(t *testing.T) {
	spec := newTestSpec(t)

	// Value to the right of the label.
	right := []pdf.Table{{Page: 1, Rows: [][]string{
		{"Type of Statement", "Regular"},
	}}}
	ts := newTableScanner(spec, right, "")
	assert.Equal(t, "Regular", ts.lookup(FieldStatement))

	// Value below the label in the same column.
	below := []pdf.Table{{Page: 1, Rows: [][]string{
		{"Financial Year", "Periodicity"},
		{"2024-25", "Q2"},
	}}}
	ts = newTableScanner(spec, below, "")
	assert.Equal(t, "2024-25", ts.lookup(FieldFY))
	assert.Equal(t, "Q2", ts.lookup(FieldPeriodicity))
}

func TestTableScanner_LabelAdjacencySkipsInvalid(t *testing.T) {
	spec := newTestSpec(t)

	// The right-hand cell fails validation; the cell below must win.
	tables := []pdf.Table{{Page: 1, Rows: [][]string{
		{"TAN", "see below"},
		{"ABCD12345E"},
	}}}
	ts := newTableScanner(spec, tables, "")
	assert.Equal(t, "ABCD12345E", ts.lookup(FieldTAN))
}

func TestTableScanner_TokenCell(t *testing.T) {
	spec := newTestSpec(t)
	tables := []pdf.Table{{Page: 2, Rows: [][]string{
		{"heading", "something"},
		{"097979000012345", "EXAMPLE REALTORS LLP", "NA"},
	}}}
	ts := newTableScanner(spec, tables, "")
	assert.Equal(t, "097979000012345", ts.lookup(FieldToken))
}

func TestTableScanner_ReceiptCell(t *testing.T) {
	spec := newTestSpec(t)
	tables := []pdf.Table{{Page: 1, Rows: [][]string{
		{"some header"},
		{"ref QVZABCDE issued"},
	}}}
	ts := newTableScanner(spec, tables, "")
	assert.Equal(t, "QVZABCDE", ts.lookup(FieldReceipt))
}

func TestTableScanner_TotalCell(t *testing.T) {
	spec := newTestSpec(t)

	// Amount inside the labelled cell.
	inline := []pdf.Table{{Page: 1, Rows: [][]string{
		{"Total (Rounded off) (₹) 59.00"},
	}}}
	ts := newTableScanner(spec, inline, "")
	assert.Equal(t, "59.00", ts.lookup(FieldTotal))

	// Amount in the adjacent cell.
	adjacent := []pdf.Table{{Page: 1, Rows: [][]string{
		{"Total (Rounded off)", "1,234.00"},
	}}}
	ts = newTableScanner(spec, adjacent, "")
	assert.Equal(t, "1,234.00", ts.lookup(FieldTotal))
}

func TestTableScanner_DeductorFromLabel(t *testing.T) {
	spec := newTestSpec(t)
	tables := []pdf.Table{{Page: 1, Rows: [][]string{
		{"Token Number", "Name of Deductor", "Receipt"},
		{"097979000012345", "EXAMPLE REALTORS LLP", "QVZABCDE"},
	}}}
	ts := newTableScanner(spec, tables, "")
	assert.Equal(t, "EXAMPLE REALTORS LLP", ts.lookup(FieldDeductor))
}

func TestTableScanner_DeductorFromTokenRow(t *testing.T) {
	spec := newTestSpec(t)
	tables := []pdf.Table{{Page: 1, Rows: [][]string{
		{"heading row", "x"},
		{"097979000012345", "EXAMPLE", "REALTORS LLP", "NA", "QVZABCDE"},
	}}}
	ts := newTableScanner(spec, tables, "097979000012345")
	assert.Equal(t, "EXAMPLE REALTORS LLP", ts.lookup(FieldDeductor))
}

func TestTableScanner_NoTables(t *testing.T) {
	spec := newTestSpec(t)
	ts := newTableScanner(spec, nil, "")

	for _, field := range append(spec.Fields(), FieldToken) {
		assert.Empty(t, ts.lookup(field), "field %q must be absent without tables", field)
	}
}
