package pdf

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Geometry tolerances for grouping positioned text into a row/column grid.
const (
	rowTolerance    = 5.0
	cellGapMinimum  = 20.0
	minTableRows    = 2
	minTableEntries = 4
)

// extractTables rebuilds a row/column grid per page from the positioned
// text fragments. PDF coordinates grow upward, so rows are ordered by
// descending Y. Pages whose content cannot be decoded contribute nothing.
func (r *Reader) extractTables(pdfReader *pdf.Reader) []Table {
	var tables []Table

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		table, ok := r.extractPageTable(pdfReader, pageNum)
		if ok {
			tables = append(tables, table)
		}
	}
	return tables
}

func (r *Reader) extractPageTable(pdfReader *pdf.Reader, pageNum int) (table Table, ok bool) {
	defer func() {
		// The content stream decoder can panic on malformed pages.
		if recover() != nil {
			ok = false
		}
	}()

	page := pdfReader.Page(pageNum)
	if page.V.IsNull() {
		return Table{}, false
	}

	texts := page.Content().Text
	if len(texts) < minTableEntries {
		return Table{}, false
	}

	rows := groupIntoRows(texts)
	if len(rows) < minTableRows {
		return Table{}, false
	}

	grid := make([][]string, 0, len(rows))
	for _, row := range rows {
		grid = append(grid, splitIntoCells(row))
	}

	return Table{Page: pageNum, Rows: grid}, true
}

// groupIntoRows buckets text fragments whose Y positions sit within the
// row tolerance of each other, top of the page first.
func groupIntoRows(texts []pdf.Text) [][]pdf.Text {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]pdf.Text
	current := []pdf.Text{sorted[0]}
	for _, t := range sorted[1:] {
		if current[len(current)-1].Y-t.Y <= rowTolerance {
			current = append(current, t)
		} else {
			rows = append(rows, current)
			current = []pdf.Text{t}
		}
	}
	rows = append(rows, current)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// splitIntoCells joins adjacent fragments into one cell and starts a new
// cell whenever the horizontal gap exceeds the column threshold.
func splitIntoCells(row []pdf.Text) []string {
	var cells []string
	var cell strings.Builder
	var lastEnd float64

	for i, t := range row {
		fragment := strings.TrimSpace(t.S)
		if fragment == "" {
			continue
		}
		if i > 0 && t.X-lastEnd > cellGapMinimum && cell.Len() > 0 {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
		if cell.Len() > 0 {
			cell.WriteString(" ")
		}
		cell.WriteString(fragment)
		lastEnd = t.X + t.W
	}
	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}
	return cells
}
