package utils

import (
	"encoding/json"
	"time"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/gen/ent"
	invoicerdpb "github.com/invoicerd/invoicerd/gen/proto/invoicerd/v1"
	"github.com/invoicerd/invoicerd/internal/entity"
	"github.com/invoicerd/invoicerd/internal/pdfio"
	"github.com/invoicerd/invoicerd/internal/rules"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToVendor(v *ent.Vendor) *entity.Vendor {
	out := &entity.Vendor{
		ID:        v.ID,
		Name:      v.Name,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if len(v.SpreadsheetColumnMapping) > 0 {
		// A malformed mapping degrades to "no mapping"; export falls back
		// to field order.
		_ = json.Unmarshal(v.SpreadsheetColumnMapping, &out.SpreadsheetColumnMapping)
	}
	return out
}

func ToDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          d.ID,
		VendorID:    d.VendorID,
		MessageID:   d.MessageID,
		Status:      constants.DocumentStatus(d.Status),
		Data:        d.Data,
		SourcePath:  d.SourcePath,
		ProcessedAt: d.ProcessedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToRule decodes a stored extraction rule back into the engine's rule model.
func ToRule(er *ent.ExtractionRule) (rules.Rule, error) {
	r := rules.Rule{
		FieldName:    er.FieldName,
		DataType:     constants.DataType(er.DataType),
		LocationType: constants.LocationType(er.LocationType),
		Keyword:       strOrEmpty(er.Keyword),
		RegexPattern:  strOrEmpty(er.RegexPattern),
		PostProcessor: strOrEmpty(er.PostProcessor),
		Required:      er.Required,
	}
	decode := func(raw json.RawMessage, dst any) error {
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, dst)
	}
	if len(er.Coordinates) > 0 {
		r.Coordinates = &pdfio.BBox{}
		if err := decode(er.Coordinates, r.Coordinates); err != nil {
			return rules.Rule{}, err
		}
	}
	if len(er.TableConfig) > 0 {
		r.TableConfig = &rules.TableConfig{}
		if err := decode(er.TableConfig, r.TableConfig); err != nil {
			return rules.Rule{}, err
		}
	}
	if len(er.PreProcessing) > 0 {
		r.PreProcessing = &rules.PreProcessing{}
		if err := decode(er.PreProcessing, r.PreProcessing); err != nil {
			return rules.Rule{}, err
		}
	}
	if len(er.PostProcessing) > 0 {
		r.PostProcess = &rules.PostProcessing{}
		if err := decode(er.PostProcessing, r.PostProcess); err != nil {
			return rules.Rule{}, err
		}
	}
	if len(er.Validation) > 0 {
		r.Validation = &rules.Validation{}
		if err := decode(er.Validation, r.Validation); err != nil {
			return rules.Rule{}, err
		}
	}
	return r, nil
}

func ToPBVendor(v *entity.Vendor) *invoicerdpb.Vendor {
	return &invoicerdpb.Vendor{
		Id:                       v.ID.String(),
		Name:                     v.Name,
		SpreadsheetColumnMapping: v.SpreadsheetColumnMapping,
		CreatedAt:                v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:                v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *entity.Document) *invoicerdpb.Document {
	out := &invoicerdpb.Document{
		Id:         d.ID.String(),
		MessageId:  d.MessageID,
		Status:     string(d.Status),
		DataJson:   string(d.Data),
		SourcePath: strOrEmpty(d.SourcePath),
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.VendorID != nil {
		out.VendorId = d.VendorID.String()
	}
	if d.ProcessedAt != nil {
		out.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return out
}
