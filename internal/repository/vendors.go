package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/invoicerd/invoicerd/gen/ent"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
	"github.com/invoicerd/invoicerd/gen/ent/vendoremail"
	"github.com/invoicerd/invoicerd/internal/common"
	"github.com/invoicerd/invoicerd/internal/entity"
	"github.com/invoicerd/invoicerd/internal/utils"
)

type VendorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetByName(ctx context.Context, name string) (*entity.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	List(ctx context.Context) ([]*entity.Vendor, error)
	Create(ctx context.Context, name string, columnMapping map[string]string) (*entity.Vendor, error)
	AddEmail(ctx context.Context, vendorID uuid.UUID, email string, isPrimary bool) error
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{client: client, logger: logger}
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Query().Where(vendor.Name(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToVendor(v), nil
}

// GetByEmail resolves a vendor through one of its registered sender addresses.
func (r *vendorRepository) GetByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	ve, err := r.client.VendorEmail.Query().
		Where(vendoremail.Email(email)).
		WithVendor().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if ve.Edges.Vendor == nil {
		return nil, common.ErrNotFound
	}
	return utils.ToVendor(ve.Edges.Vendor), nil
}

func (r *vendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	vs, err := r.client.Vendor.Query().Order(vendor.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list vendors", "error", err)
		return nil, err
	}
	out := make([]*entity.Vendor, len(vs))
	for i, v := range vs {
		out[i] = utils.ToVendor(v)
	}
	return out, nil
}

func (r *vendorRepository) Create(ctx context.Context, name string, columnMapping map[string]string) (*entity.Vendor, error) {
	create := r.client.Vendor.Create().SetName(name)
	if len(columnMapping) > 0 {
		raw, err := json.Marshal(columnMapping)
		if err != nil {
			return nil, err
		}
		create = create.SetSpreadsheetColumnMapping(raw)
	}
	v, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create vendor", "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("vendor.created", "vendor_id", v.ID, "name", name)
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) AddEmail(ctx context.Context, vendorID uuid.UUID, email string, isPrimary bool) error {
	err := r.client.VendorEmail.Create().
		SetVendorID(vendorID).
		SetEmail(email).
		SetIsPrimary(isPrimary).
		OnConflictColumns(vendoremail.FieldVendorID, vendoremail.FieldEmail).
		DoNothing().
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		r.logger.Error("failed to add vendor email", "vendor_id", vendorID, "email", email, "error", err)
		return err
	}
	return nil
}
