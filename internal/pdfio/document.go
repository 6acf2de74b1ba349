package pdfio

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document wraps one open PDF. Every extraction pass opens its own handle
// and must Close it regardless of outcome.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
	logger *slog.Logger
}

// Open validates the file and opens it for text extraction.
func Open(path string, logger *slog.Logger) (*Document, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat pdf: %w", err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	return &Document{path: path, file: f, reader: reader, logger: logger}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// Path returns the path the document was opened from.
func (d *Document) Path() string { return d.path }

// NumPages returns the page count.
func (d *Document) NumPages() int { return d.reader.NumPage() }

// Page extracts words for the 1-based page number. Backend panics on
// malformed content streams are recovered and reported as errors so one bad
// page does not abort the document.
func (d *Document) Page(number int) (page Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("pdfio.page.panic", "path", d.path, "page", number, "panic", r)
			err = fmt.Errorf("page %d: content extraction panicked: %v", number, r)
		}
	}()

	if number < 1 || number > d.reader.NumPage() {
		return Page{}, fmt.Errorf("page %d out of range (1..%d)", number, d.reader.NumPage())
	}

	p := d.reader.Page(number)
	if p.V.IsNull() {
		return Page{}, fmt.Errorf("page %d is null", number)
	}

	content := p.Content()
	return Page{Number: number, Words: wordsFromTexts(content.Text)}, nil
}

// ValidateFile checks that the file at path is a structurally sound PDF
// using relaxed validation, tolerating the wide variance in vendor PDFs.
func ValidateFile(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("validate pdf: %w", err)
	}
	return nil
}
