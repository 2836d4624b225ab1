package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Reader extracts page-ordered text and tables from a PDF file. A reader
// is stateless; the underlying file handle is opened and closed per call
// so a failing document never holds resources.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a reader with the given file size limit.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024,
	}
}

// ReadDocument opens the PDF and extracts text and tables in one pass.
// It returns an error when the file yields no text at all; table
// extraction is best-effort and an empty table set is not an error.
func (r *Reader) ReadDocument(path string) (*Document, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), r.maxFileSize)
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	rawText := r.extractText(pdfReader)
	tables := r.extractTables(pdfReader)

	doc := &Document{
		FileName: filepath.Base(path),
		Path:     path,
		Pages:    pdfReader.NumPage(),
		RawText:  rawText,
		Text:     Flatten(rawText),
		Tables:   tables,
	}
	return doc, nil
}

// extractText concatenates the plain text of every page. Pages that fail
// to decode are skipped; one bad page must not lose the rest.
func (r *Reader) extractText(pdfReader *pdf.Reader) string {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		builder.WriteString("\n")
		totalLength += len(content) + 1
	}

	return builder.String()
}

// Flatten collapses all whitespace runs to single spaces. Field patterns
// are written against this form of the text.
func Flatten(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}
