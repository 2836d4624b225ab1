package batch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/taxkit/tds-extract/internal/extract"
	"github.com/taxkit/tds-extract/internal/pdf"
	"github.com/taxkit/tds-extract/internal/report"
)

// Driver processes every PDF in a directory and writes the combined
// result table. One failing document never fails the batch: its record
// carries FileName and Error only, and processing continues.
type Driver struct {
	pdfService *pdf.Service
	extractor  *extract.Extractor
	writer     *report.Writer
	logger     *slog.Logger
	workers    int
}

// NewDriver creates a batch driver. workers below 1 is treated as 1;
// documents share no mutable state, so the per-document loop can fan out.
func NewDriver(pdfService *pdf.Service, extractor *extract.Extractor, writer *report.Writer, workers int, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Driver{
		pdfService: pdfService,
		extractor:  extractor,
		writer:     writer,
		logger:     logger,
		workers:    workers,
	}
}

// Run extracts every PDF in inputDir and writes the XLSX to outputPath.
// Only an unreadable input directory or an unwritable output file aborts
// the batch.
func (d *Driver) Run(inputDir, outputPath string) error {
	paths, err := d.pdfService.FindDocuments(inputDir)
	if err != nil {
		return err
	}
	d.logger.Info("found PDF files", "count", len(paths), "dir", inputDir)

	records := d.processAll(paths)

	if err := d.writer.Write(records, outputPath); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// processAll runs the per-document loop, in input order. With more than
// one worker the documents are processed concurrently but the results
// slice keeps the input ordering for reproducible output.
func (d *Driver) processAll(paths []string) []extract.Record {
	records := make([]extract.Record, len(paths))

	if d.workers == 1 {
		for i, path := range paths {
			records[i] = d.processOne(path)
		}
		return records
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = d.processOne(paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return records
}

// processOne is the per-document error boundary: any error or panic
// becomes an Error record for that file.
func (d *Driver) processOne(path string) (rec extract.Record) {
	fileName := filepath.Base(path)
	d.logger.Info("processing", "file", fileName)

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic while processing document", "file", fileName, "panic", r)
			rec = extract.NewErrorRecord(fileName, fmt.Sprintf("panic: %v", r))
		}
	}()

	doc, err := d.pdfService.ExtractDocument(path)
	if err != nil {
		d.logger.Warn("document failed", "file", fileName, "error", err)
		return extract.NewErrorRecord(fileName, err.Error())
	}

	return d.extractor.Extract(doc)
}
