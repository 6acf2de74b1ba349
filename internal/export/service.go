package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/entity"
	"github.com/invoicerd/invoicerd/internal/extract"
	"github.com/invoicerd/invoicerd/internal/repository"
)

// Service produces XLSX bytes for processed documents.
type Service struct {
	docsRepo    repository.DocumentRepository
	vendorsRepo repository.VendorRepository
	logger      *slog.Logger
}

func NewService(docsRepo repository.DocumentRepository, vendorsRepo repository.VendorRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docsRepo: docsRepo, vendorsRepo: vendorsRepo, logger: logger}
}

// ExportDocumentsXLSX returns a workbook with one sheet of scalar invoice
// fields and one sheet of line items. When a vendor is given and carries a
// spreadsheet column mapping, its mapping decides the column order;
// otherwise columns are the sorted union of field names.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, vendorID *uuid.UUID) ([]byte, error) {
	start := time.Now()

	status := constants.DocumentStatusProcessed
	docs, err := s.docsRepo.List(ctx, &status, vendorID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	records := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		var rec map[string]any
		if len(d.Data) == 0 || json.Unmarshal(d.Data, &rec) != nil {
			s.logger.Warn("export.record.skip", "document_id", d.ID)
			continue
		}
		rec["message_id"] = d.MessageID
		records = append(records, rec)
	}

	columns, err := s.columnOrder(ctx, vendorID, records)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := writeInvoiceSheet(f, columns, records); err != nil {
		return nil, err
	}
	if err := writeLineItemSheet(f, records); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	s.logger.Info("export.xlsx.ok", "documents", len(records), "duration", time.Since(start))
	return buf.Bytes(), nil
}

func (s *Service) columnOrder(ctx context.Context, vendorID *uuid.UUID, records []map[string]any) ([]string, error) {
	if vendorID != nil {
		v, err := s.vendorsRepo.GetByID(ctx, *vendorID)
		if err != nil {
			return nil, err
		}
		if cols := MappedColumns(v); len(cols) > 0 {
			return cols, nil
		}
	}

	seen := map[string]struct{}{}
	var columns []string
	for _, rec := range records {
		for k, v := range rec {
			if _, isSet := v.(map[string]any); isSet {
				continue // line items go to their own sheet
			}
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return columns, nil
}

// MappedColumns orders a vendor's field names by their mapped spreadsheet
// column ("A" before "B"). Fields mapped to the same column keep name order.
func MappedColumns(v *entity.Vendor) []string {
	if len(v.SpreadsheetColumnMapping) == 0 {
		return nil
	}
	fields := make([]string, 0, len(v.SpreadsheetColumnMapping))
	for f := range v.SpreadsheetColumnMapping {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		a, b := v.SpreadsheetColumnMapping[fields[i]], v.SpreadsheetColumnMapping[fields[j]]
		if a != b {
			return a < b
		}
		return fields[i] < fields[j]
	})
	return fields
}

const (
	invoiceSheet  = "Invoices"
	lineItemSheet = "Line Items"
)

func writeInvoiceSheet(f *excelize.File, columns []string, records []map[string]any) error {
	if err := f.SetSheetName(f.GetSheetName(0), invoiceSheet); err != nil {
		return err
	}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(invoiceSheet, cell, col)
	}
	for r, rec := range records {
		for c, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(invoiceSheet, cell, cellValue(rec[col]))
		}
	}
	return nil
}

func writeLineItemSheet(f *excelize.File, records []map[string]any) error {
	if _, err := f.NewSheet(lineItemSheet); err != nil {
		return err
	}
	headers := []string{"message_id", extract.ColID, extract.ColDesc, extract.ColQuantity,
		extract.ColUnit, extract.ColUnitPrice, extract.ColTotalPrice}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(lineItemSheet, cell, h)
	}

	row := 2
	for _, rec := range records {
		msgID, _ := rec["message_id"].(string)
		for _, v := range rec {
			set, ok := v.(map[string]any)
			if !ok {
				continue
			}
			items, ok := set["items"].([]any)
			if !ok {
				continue
			}
			for _, it := range items {
				item, ok := it.(map[string]any)
				if !ok {
					continue
				}
				values := []any{msgID, item[extract.ColID], item[extract.ColDesc],
					item[extract.ColQuantity], item[extract.ColUnit],
					item[extract.ColUnitPrice], item[extract.ColTotalPrice]}
				for c, val := range values {
					cell, _ := excelize.CoordinatesToCellName(c+1, row)
					_ = f.SetCellValue(lineItemSheet, cell, cellValue(val))
				}
				row++
			}
		}
	}
	return nil
}

func cellValue(v any) any {
	if v == nil {
		return ""
	}
	return v
}
