package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicerd/invoicerd/constants"
	invoicerdpb "github.com/invoicerd/invoicerd/gen/proto/invoicerd/v1"
	"github.com/invoicerd/invoicerd/internal/async"
	"github.com/invoicerd/invoicerd/internal/common"
	"github.com/invoicerd/invoicerd/internal/export"
	"github.com/invoicerd/invoicerd/internal/extract"
	"github.com/invoicerd/invoicerd/internal/pipeline"
	"github.com/invoicerd/invoicerd/internal/repository"
	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/utils"
)

// Service is the gRPC surface over vendors, rules, documents and extraction.
type Service struct {
	invoicerdpb.UnimplementedInvoicerdServiceServer

	vendorsRepo repository.VendorRepository
	rulesRepo   repository.RuleRepository
	docsRepo    repository.DocumentRepository
	extractor   *extract.Extractor
	exporter    *export.Service
	processor   *pipeline.Processor
	queue       async.Queue
	logger      *slog.Logger
}

func NewService(vendorsRepo repository.VendorRepository, rulesRepo repository.RuleRepository,
	docsRepo repository.DocumentRepository, extractor *extract.Extractor,
	exporter *export.Service, processor *pipeline.Processor, queue async.Queue, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		vendorsRepo: vendorsRepo,
		rulesRepo:   rulesRepo,
		docsRepo:    docsRepo,
		extractor:   extractor,
		exporter:    exporter,
		processor:   processor,
		queue:       queue,
		logger:      logger,
	}
}

func (s *Service) CreateVendor(ctx context.Context, req *invoicerdpb.CreateVendorRequest) (*invoicerdpb.CreateVendorResponse, error) {
	if req.GetName() == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	v, err := s.vendorsRepo.Create(ctx, req.GetName(), req.GetSpreadsheetColumnMapping())
	if err != nil {
		s.logger.Warn("server.create_vendor.failed", "name", req.GetName(), "error", err)
		return nil, common.InternalError("create vendor failed")
	}
	for _, email := range req.GetEmails() {
		if err := s.vendorsRepo.AddEmail(ctx, v.ID, email, false); err != nil {
			return nil, common.InternalError("attach vendor email failed")
		}
	}
	return &invoicerdpb.CreateVendorResponse{Vendor: utils.ToPBVendor(v)}, nil
}

func (s *Service) ListVendors(ctx context.Context, _ *invoicerdpb.ListVendorsRequest) (*invoicerdpb.ListVendorsResponse, error) {
	vs, err := s.vendorsRepo.List(ctx)
	if err != nil {
		return nil, common.InternalError("list vendors failed")
	}
	out := make([]*invoicerdpb.Vendor, len(vs))
	for i, v := range vs {
		out[i] = utils.ToPBVendor(v)
	}
	return &invoicerdpb.ListVendorsResponse{Vendors: out}, nil
}

func (s *Service) SetVendorRules(ctx context.Context, req *invoicerdpb.SetVendorRulesRequest) (*invoicerdpb.SetVendorRulesResponse, error) {
	vendorID, err := parseVendorID(req.GetVendorId())
	if err != nil {
		return nil, err
	}
	ruleSet, err := rules.ParseRuleSet([]byte(req.GetRulesJson()))
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid rule set: %v", err)
	}
	if err := s.rulesRepo.ReplaceForVendor(ctx, vendorID, ruleSet); err != nil {
		s.logger.Warn("server.set_rules.failed", "vendor_id", vendorID, "error", err)
		return nil, common.InternalError("store rules failed")
	}
	return &invoicerdpb.SetVendorRulesResponse{Count: int32(len(ruleSet))}, nil
}

func (s *Service) GetVendorRules(ctx context.Context, req *invoicerdpb.GetVendorRulesRequest) (*invoicerdpb.GetVendorRulesResponse, error) {
	vendorID, err := parseVendorID(req.GetVendorId())
	if err != nil {
		return nil, err
	}
	ruleSet, err := s.rulesRepo.ListForVendor(ctx, vendorID)
	if err != nil {
		return nil, common.InternalError("list rules failed")
	}
	raw, err := json.Marshal(ruleSet)
	if err != nil {
		return nil, common.InternalError("encode rules failed")
	}
	return &invoicerdpb.GetVendorRulesResponse{RulesJson: string(raw)}, nil
}

func (s *Service) ListDocuments(ctx context.Context, req *invoicerdpb.ListDocumentsRequest) (*invoicerdpb.ListDocumentsResponse, error) {
	var status *constants.DocumentStatus
	if st := req.GetStatus(); st != "" {
		candidate := constants.DocumentStatus(st)
		found := false
		for _, allowed := range constants.DocumentStatuses {
			if allowed == st {
				found = true
			}
		}
		if !found {
			return nil, common.InvalidArgumentErrorf("unknown status %q", st)
		}
		status = &candidate
	}
	var vendorID *uuid.UUID
	if raw := req.GetVendorId(); raw != "" {
		id, err := parseVendorID(raw)
		if err != nil {
			return nil, err
		}
		vendorID = &id
	}

	docs, err := s.docsRepo.List(ctx, status, vendorID)
	if err != nil {
		return nil, common.InternalError("list documents failed")
	}
	out := make([]*invoicerdpb.Document, len(docs))
	for i, d := range docs {
		out[i] = utils.ToPBDocument(d)
	}
	return &invoicerdpb.ListDocumentsResponse{Documents: out}, nil
}

func (s *Service) ExtractFile(ctx context.Context, req *invoicerdpb.ExtractFileRequest) (*invoicerdpb.ExtractFileResponse, error) {
	if req.GetPath() == "" {
		return nil, common.InvalidArgumentError("path is required")
	}
	vendorID, err := parseVendorID(req.GetVendorId())
	if err != nil {
		return nil, err
	}
	ruleSet, err := s.rulesRepo.ListForVendor(ctx, vendorID)
	if err != nil {
		return nil, common.InternalError("list rules failed")
	}
	if len(ruleSet) == 0 {
		return nil, common.FailedPreconditionError("vendor has no extraction rules")
	}

	record, issues, err := s.extractor.ExtractFile(ctx, req.GetPath(), ruleSet)
	if err != nil {
		var rfe *extract.RequiredFieldsError
		if errors.As(err, &rfe) {
			return nil, common.FailedPreconditionError(err.Error())
		}
		s.logger.Warn("server.extract.failed", "path", req.GetPath(), "error", err)
		return nil, common.InternalError("extraction failed")
	}
	for _, issue := range issues {
		s.logger.Debug("server.extract.issue", "field", issue.Field, "kind", issue.Kind)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, common.InternalError("encode record failed")
	}
	return &invoicerdpb.ExtractFileResponse{RecordJson: string(raw)}, nil
}

func (s *Service) ProcessMailbox(ctx context.Context, _ *invoicerdpb.ProcessMailboxRequest) (*invoicerdpb.ProcessMailboxResponse, error) {
	if s.processor == nil {
		return nil, common.FailedPreconditionError("no mail source configured")
	}
	processed, failed, err := s.processor.Run(ctx)
	if err != nil {
		s.logger.Warn("server.process_mailbox.failed", "error", err)
		return nil, common.InternalError("mailbox processing failed")
	}
	return &invoicerdpb.ProcessMailboxResponse{
		Processed: int32(processed),
		Failed:    int32(failed),
	}, nil
}

func (s *Service) ReprocessDocument(ctx context.Context, req *invoicerdpb.ReprocessDocumentRequest) (*invoicerdpb.ReprocessDocumentResponse, error) {
	if req.GetMessageId() == "" {
		return nil, common.InvalidArgumentError("message_id is required")
	}
	if s.queue == nil {
		return nil, common.FailedPreconditionError("reprocessing queue not configured")
	}
	if _, err := s.docsRepo.GetByMessageID(ctx, req.GetMessageId()); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalError("lookup document failed")
	}
	if err := s.queue.Enqueue(ctx, async.Job{MessageID: req.GetMessageId(), SubmittedAt: time.Now()}); err != nil {
		return nil, common.InternalError("enqueue failed")
	}
	return &invoicerdpb.ReprocessDocumentResponse{Queued: true}, nil
}

func (s *Service) ExportDocuments(ctx context.Context, req *invoicerdpb.ExportDocumentsRequest) (*invoicerdpb.ExportDocumentsResponse, error) {
	var vendorID *uuid.UUID
	if raw := req.GetVendorId(); raw != "" {
		id, err := parseVendorID(raw)
		if err != nil {
			return nil, err
		}
		vendorID = &id
	}
	data, err := s.exporter.ExportDocumentsXLSX(ctx, vendorID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("vendor not found")
		}
		s.logger.Warn("server.export.failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &invoicerdpb.ExportDocumentsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("invoices-%s.xlsx", time.Now().UTC().Format("20060102-150405")),
	}, nil
}

func parseVendorID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("vendor_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("invalid vendor_id: %v", err)
	}
	return id, nil
}
