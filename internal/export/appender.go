package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// RowAppender receives one spreadsheet row per processed invoice. The
// pipeline does not care where rows end up; a workbook on disk and a hosted
// sheet both satisfy this.
type RowAppender interface {
	AppendRow(ctx context.Context, row []string) error
}

// WorkbookAppender appends rows to a sheet in an XLSX file on disk, creating
// the file on first use.
type WorkbookAppender struct {
	path   string
	sheet  string
	mu     sync.Mutex
	logger *slog.Logger
}

func NewWorkbookAppender(path, sheet string, logger *slog.Logger) *WorkbookAppender {
	if sheet == "" {
		sheet = invoiceSheet
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookAppender{path: path, sheet: sheet, logger: logger}
}

func (a *WorkbookAppender) AppendRow(_ context.Context, row []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := a.open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(a.sheet)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", a.sheet, err)
	}
	next := len(rows) + 1
	for i, v := range row {
		cell, _ := excelize.CoordinatesToCellName(i+1, next)
		if err := f.SetCellValue(a.sheet, cell, v); err != nil {
			return err
		}
	}
	if err := f.SaveAs(a.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	a.logger.Debug("export.row.appended", "path", a.path, "row", next)
	return nil
}

func (a *WorkbookAppender) open() (*excelize.File, error) {
	if _, err := os.Stat(a.path); os.IsNotExist(err) {
		f := excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), a.sheet); err != nil {
			return nil, err
		}
		return f, nil
	}
	f, err := excelize.OpenFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	if idx, _ := f.GetSheetIndex(a.sheet); idx == -1 {
		if _, err := f.NewSheet(a.sheet); err != nil {
			return nil, err
		}
	}
	return f, nil
}
