package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/gen/ent"
	"github.com/invoicerd/invoicerd/gen/ent/document"
	"github.com/invoicerd/invoicerd/internal/common"
	"github.com/invoicerd/invoicerd/internal/entity"
	"github.com/invoicerd/invoicerd/internal/utils"
)

type DocumentRepository interface {
	GetByMessageID(ctx context.Context, messageID string) (*entity.Document, error)
	CreatePending(ctx context.Context, messageID string, vendorID *uuid.UUID, sourcePath string) (*entity.Document, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, data json.RawMessage) error
	MarkError(ctx context.Context, id uuid.UUID, message string) error
	List(ctx context.Context, status *constants.DocumentStatus, vendorID *uuid.UUID) ([]*entity.Document, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) GetByMessageID(ctx context.Context, messageID string) (*entity.Document, error) {
	d, err := r.client.Document.Query().Where(document.MessageID(messageID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToDocument(d), nil
}

func (r *documentRepository) CreatePending(ctx context.Context, messageID string, vendorID *uuid.UUID, sourcePath string) (*entity.Document, error) {
	create := r.client.Document.Create().
		SetMessageID(messageID).
		SetStatus(string(constants.DocumentStatusPending))
	if vendorID != nil {
		create = create.SetVendorID(*vendorID)
	}
	if sourcePath != "" {
		create = create.SetSourcePath(sourcePath)
	}
	d, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "message_id", messageID, "error", err)
		return nil, err
	}
	r.logger.Info("document.created", "document_id", d.ID, "message_id", messageID)
	return utils.ToDocument(d), nil
}

func (r *documentRepository) MarkProcessed(ctx context.Context, id uuid.UUID, data json.RawMessage) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusProcessed)).
		SetData(data).
		SetProcessedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark document processed", "document_id", id, "error", err)
		return err
	}
	return nil
}

func (r *documentRepository) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	data, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		return err
	}
	err = r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusError)).
		SetData(data).
		SetProcessedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark document errored", "document_id", id, "error", err)
		return err
	}
	return nil
}

func (r *documentRepository) List(ctx context.Context, status *constants.DocumentStatus, vendorID *uuid.UUID) ([]*entity.Document, error) {
	q := r.client.Document.Query()
	if status != nil {
		q = q.Where(document.Status(string(*status)))
	}
	if vendorID != nil {
		q = q.Where(document.VendorID(*vendorID))
	}
	ds, err := q.Order(document.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}
	out := make([]*entity.Document, len(ds))
	for i, d := range ds {
		out[i] = utils.ToDocument(d)
	}
	return out, nil
}
