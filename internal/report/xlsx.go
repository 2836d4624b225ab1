package report

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/taxkit/tds-extract/internal/extract"
)

const sheetName = "Extracted"

// Writer serializes batch records into an XLSX workbook, one row per
// document, columns in the fixed canonical order. Columns that never
// occurred in any record are dropped.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates an XLSX report writer.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// Write builds the workbook and saves it to outputPath.
func (w *Writer) Write(records []extract.Record, outputPath string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	columns := extract.PresentColumns(records)
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("write header %q: %w", col, err)
		}
	}

	for rowIdx, rec := range records {
		for colIdx, col := range columns {
			value, ok := rec[col]
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write row %d: %w", rowIdx+1, err)
			}
		}
	}

	// Widen the name-bearing columns so the sheet opens readable.
	for i, col := range columns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		width := 18.0
		switch col {
		case extract.FieldDeductor, extract.ColumnFileName, extract.ColumnError:
			width = 40.0
		case extract.FieldToken, extract.FieldReceipt:
			width = 28.0
		}
		_ = f.SetColWidth(sheetName, name, name, width)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save workbook %s: %w", outputPath, err)
	}

	w.logger.Info("report written", "path", outputPath, "rows", len(records), "columns", len(columns))
	return nil
}
