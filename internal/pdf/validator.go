package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator performs file-level checks before a document enters
// extraction. Structural validation uses pdfcpu in relaxed mode since the
// receipt PDFs are produced by a wide range of filer software.
type Validator struct {
	maxFileSize int64
	conf        *model.Configuration
}

// NewValidator creates a validator with the given file size limit.
func NewValidator(maxFileSize int64) *Validator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Validator{
		maxFileSize: maxFileSize,
		conf:        conf,
	}
}

// ValidateFile checks that the path points to a readable, structurally
// sound PDF within the size limit.
func (v *Validator) ValidateFile(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), v.maxFileSize)
	}

	if err := api.ValidateFile(path, v.conf); err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}
	return nil
}

// IsValidPDF performs a quick check to see if a file is a valid PDF.
func (v *Validator) IsValidPDF(path string) bool {
	return v.ValidateFile(path) == nil
}
