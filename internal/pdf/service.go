package pdf

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Service bundles validation and extraction behind one call per document.
// In debug mode it writes sidecar dumps of the raw text and the extracted
// tables next to each PDF.
type Service struct {
	reader    *Reader
	validator *Validator
	logger    *slog.Logger
	debug     bool
}

// NewService creates a PDF service.
func NewService(maxFileSize int64, debug bool, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		reader:    NewReader(maxFileSize),
		validator: NewValidator(maxFileSize),
		logger:    logger,
		debug:     debug,
	}
}

// ExtractDocument validates and reads one PDF. Failures here are fatal for
// the document only; the caller records them and moves on.
func (s *Service) ExtractDocument(path string) (*Document, error) {
	if err := s.validator.ValidateFile(path); err != nil {
		return nil, err
	}

	doc, err := s.reader.ReadDocument(path)
	if err != nil {
		return nil, err
	}

	if s.debug {
		s.writeSidecars(doc)
	}
	return doc, nil
}

// writeSidecars dumps the raw text and table set beside the source PDF.
// Sidecar failures are logged, never propagated.
func (s *Service) writeSidecars(doc *Document) {
	base := strings.TrimSuffix(doc.Path, filepath.Ext(doc.Path))

	textPath := base + "_text.txt"
	if err := os.WriteFile(textPath, []byte(doc.RawText), 0o644); err != nil {
		s.logger.Warn("failed to write text sidecar", "path", textPath, "error", err)
	} else {
		s.logger.Debug("wrote text sidecar", "path", textPath)
	}

	tablesPath := base + "_tables.json"
	data, err := json.MarshalIndent(doc.Tables, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode tables sidecar", "path", tablesPath, "error", err)
		return
	}
	if err := os.WriteFile(tablesPath, data, 0o644); err != nil {
		s.logger.Warn("failed to write tables sidecar", "path", tablesPath, "error", err)
	} else {
		s.logger.Debug("wrote tables sidecar", "path", tablesPath)
	}
}

// FindDocuments lists the PDFs in the input directory.
func (s *Service) FindDocuments(directory string) ([]string, error) {
	paths, err := FindPDFsInDirectory(directory)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", directory)
	}
	return paths, nil
}
