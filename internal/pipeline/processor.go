package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/common"
	"github.com/invoicerd/invoicerd/internal/entity"
	"github.com/invoicerd/invoicerd/internal/export"
	"github.com/invoicerd/invoicerd/internal/extract"
	"github.com/invoicerd/invoicerd/internal/mail"
	"github.com/invoicerd/invoicerd/internal/pdfio"
	"github.com/invoicerd/invoicerd/internal/repository"
	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/vendors"
)

// Extractor is the slice of the extraction engine the pipeline needs.
type Extractor interface {
	ExtractFile(ctx context.Context, path string, ruleSet []rules.Rule) (extract.Record, []extract.FieldIssue, error)
}

// Processor coordinates one full pass: list mail, save attachments, extract,
// persist document status, append spreadsheet rows.
type Processor struct {
	source    mail.Source
	vendors   *vendors.Service
	docsRepo  repository.DocumentRepository
	rulesRepo repository.RuleRepository
	extractor Extractor
	appender  export.RowAppender
	validate  func(path string) error
	cfg       Config
	logger    *slog.Logger
}

type Config struct {
	Query    string
	PageSize int32
	WorkDir  string
}

func NewProcessor(source mail.Source, vendorSvc *vendors.Service, docsRepo repository.DocumentRepository,
	rulesRepo repository.RuleRepository, extractor Extractor, appender export.RowAppender,
	cfg Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	return &Processor{
		source:    source,
		vendors:   vendorSvc,
		docsRepo:  docsRepo,
		rulesRepo: rulesRepo,
		extractor: extractor,
		appender:  appender,
		validate:  pdfio.ValidateFile,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run processes every matching message once. Messages already tracked as
// documents are skipped, so reruns are safe. Per-message failures are
// persisted on the document and do not stop the pass.
func (p *Processor) Run(ctx context.Context) (processed, failed int, err error) {
	pageToken := ""
	for {
		msgs, next, err := p.source.List(ctx, p.cfg.Query, pageToken, p.cfg.PageSize)
		if err != nil {
			return processed, failed, fmt.Errorf("list messages: %w", err)
		}
		for _, msg := range msgs {
			if err := ctx.Err(); err != nil {
				return processed, failed, err
			}
			switch perr := p.processMessage(ctx, msg); {
			case perr == nil:
				processed++
			case errors.Is(perr, errAlreadyProcessed), errors.Is(perr, errNoAttachment):
				// skipped, not failed
			default:
				p.logger.Error("pipeline.message.failed", "message_id", msg.ID, "error", perr)
				failed++
			}
		}
		if next == "" {
			return processed, failed, nil
		}
		pageToken = next
	}
}

var (
	errAlreadyProcessed = errors.New("message already processed")
	errNoAttachment     = errors.New("no pdf attachment")
)

// Reprocess re-runs extraction for an already-saved document, e.g. after its
// vendor's rules changed. The attachment on disk is reused; mail is not
// consulted again.
func (p *Processor) Reprocess(ctx context.Context, messageID string) error {
	doc, err := p.docsRepo.GetByMessageID(ctx, messageID)
	if err != nil {
		return err
	}
	if doc.VendorID == nil {
		return fmt.Errorf("document %s has no vendor", messageID)
	}
	if doc.SourcePath == nil || *doc.SourcePath == "" {
		return fmt.Errorf("document %s has no saved attachment", messageID)
	}
	vendor, err := p.vendors.Get(ctx, *doc.VendorID)
	if err != nil {
		return fmt.Errorf("load vendor: %w", err)
	}

	if err := p.extractAndPersist(ctx, doc, vendor, *doc.SourcePath); err != nil {
		if merr := p.docsRepo.MarkError(ctx, doc.ID, err.Error()); merr != nil {
			p.logger.Error("pipeline.document.mark_error_failed", "document_id", doc.ID, "error", merr)
		}
		return err
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, msg mail.Message) error {
	if _, err := p.docsRepo.GetByMessageID(ctx, msg.ID); err == nil {
		return errAlreadyProcessed
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	vendor, err := p.vendors.Resolve(ctx, msg.From)
	if err != nil {
		return fmt.Errorf("resolve vendor: %w", err)
	}

	att, err := p.pdfAttachment(ctx, msg.ID)
	if err != nil {
		return err
	}

	path, err := mail.SaveAttachment(p.cfg.WorkDir, msg.ID, att)
	if err != nil {
		return err
	}

	doc, err := p.docsRepo.CreatePending(ctx, msg.ID, &vendor.ID, path)
	if err != nil {
		return err
	}
	p.logger.Info("pipeline.document.pending",
		"message_id", msg.ID, "vendor", vendor.Name, "path", path)

	if err := p.extractAndPersist(ctx, doc, vendor, path); err != nil {
		if merr := p.docsRepo.MarkError(ctx, doc.ID, err.Error()); merr != nil {
			p.logger.Error("pipeline.document.mark_error_failed", "document_id", doc.ID, "error", merr)
		}
		return err
	}
	return nil
}

func (p *Processor) pdfAttachment(ctx context.Context, messageID string) (mail.Attachment, error) {
	atts, err := p.source.Attachments(ctx, messageID)
	if err != nil {
		return mail.Attachment{}, fmt.Errorf("fetch attachments: %w", err)
	}
	for _, att := range atts {
		if constants.IsAllowedExtension(att.Filename) {
			return att, nil
		}
	}
	return mail.Attachment{}, errNoAttachment
}

func (p *Processor) extractAndPersist(ctx context.Context, doc *entity.Document, vendor *entity.Vendor, path string) error {
	if err := p.validate(path); err != nil {
		return fmt.Errorf("validate pdf: %w", err)
	}

	ruleSet, err := p.rulesRepo.ListForVendor(ctx, vendor.ID)
	if err != nil {
		return err
	}
	if len(ruleSet) == 0 {
		return fmt.Errorf("vendor %s has no extraction rules", vendor.Name)
	}

	record, issues, err := p.extractor.ExtractFile(ctx, path, ruleSet)
	if err != nil {
		return err
	}
	for _, issue := range issues {
		p.logger.Warn("pipeline.field.issue", "document_id", doc.ID,
			"field", issue.Field, "kind", issue.Kind, "detail", issue.Detail)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := p.docsRepo.MarkProcessed(ctx, doc.ID, data); err != nil {
		return err
	}
	p.logger.Info("pipeline.document.processed", "document_id", doc.ID, "fields", len(record))

	if p.appender != nil {
		if err := p.appender.AppendRow(ctx, spreadsheetRow(vendor, record)); err != nil {
			// The record is already persisted; a failed append is logged,
			// not fatal to the message.
			p.logger.Error("pipeline.append.failed", "document_id", doc.ID, "error", err)
		}
	}
	return nil
}

// spreadsheetRow flattens a record into export cells, ordered by the
// vendor's column mapping when present.
func spreadsheetRow(vendor *entity.Vendor, record extract.Record) []string {
	columns := export.MappedColumns(vendor)
	if len(columns) == 0 {
		columns = sortedScalarFields(record)
	}
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = renderValue(record[col])
	}
	return row
}

func sortedScalarFields(record extract.Record) []string {
	var fields []string
	for k, v := range record {
		if _, isSet := v.(*extract.LineItemSet); isSet {
			continue
		}
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *extract.LineItemSet:
		return fmt.Sprintf("%d items", len(t.Items))
	default:
		return fmt.Sprint(t)
	}
}
