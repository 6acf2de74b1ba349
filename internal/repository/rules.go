package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/invoicerd/invoicerd/gen/ent"
	"github.com/invoicerd/invoicerd/gen/ent/extractionrule"
	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/utils"
)

type RuleRepository interface {
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]rules.Rule, error)
	// ReplaceForVendor swaps the vendor's whole rule set in one transaction
	// so a half-written set is never observable.
	ReplaceForVendor(ctx context.Context, vendorID uuid.UUID, ruleSet []rules.Rule) error
}

type ruleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRuleRepository(client *ent.Client, logger *slog.Logger) RuleRepository {
	return &ruleRepository{client: client, logger: logger}
}

func (r *ruleRepository) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]rules.Rule, error) {
	rows, err := r.client.ExtractionRule.Query().
		Where(extractionrule.VendorID(vendorID)).
		Order(extractionrule.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list rules", "vendor_id", vendorID, "error", err)
		return nil, err
	}
	out := make([]rules.Rule, 0, len(rows))
	for _, row := range rows {
		rule, err := utils.ToRule(row)
		if err != nil {
			return nil, fmt.Errorf("decode rule %s: %w", row.FieldName, err)
		}
		out = append(out, rule)
	}
	return out, nil
}

func (r *ruleRepository) ReplaceForVendor(ctx context.Context, vendorID uuid.UUID, ruleSet []rules.Rule) error {
	for i := range ruleSet {
		if err := ruleSet[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.ExtractionRule.Delete().
		Where(extractionrule.VendorID(vendorID)).
		Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	for _, rule := range ruleSet {
		create := tx.ExtractionRule.Create().
			SetVendorID(vendorID).
			SetFieldName(rule.FieldName).
			SetDataType(string(rule.DataType)).
			SetLocationType(string(rule.LocationType)).
			SetRequired(rule.Required)
		if rule.Keyword != "" {
			create = create.SetKeyword(rule.Keyword)
		}
		if rule.RegexPattern != "" {
			create = create.SetRegexPattern(rule.RegexPattern)
		}
		if rule.PostProcessor != "" {
			create = create.SetPostProcessor(rule.PostProcessor)
		}
		if err := setRawField(create.SetCoordinates, rule.Coordinates); err != nil {
			return rollback(tx, err)
		}
		if err := setRawField(create.SetTableConfig, rule.TableConfig); err != nil {
			return rollback(tx, err)
		}
		if err := setRawField(create.SetPreProcessing, rule.PreProcessing); err != nil {
			return rollback(tx, err)
		}
		if err := setRawField(create.SetPostProcessing, rule.PostProcess); err != nil {
			return rollback(tx, err)
		}
		if err := setRawField(create.SetValidation, rule.Validation); err != nil {
			return rollback(tx, err)
		}
		if err := create.Exec(ctx); err != nil {
			return rollback(tx, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("rules.replaced", "vendor_id", vendorID, "count", len(ruleSet))
	return nil
}

// setRawField marshals an optional rule block into its JSON column. A nil
// block leaves the column unset.
func setRawField[T any](set func(json.RawMessage) *ent.ExtractionRuleCreate, v *T) error {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	set(raw)
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback failed: %v", err, rerr)
	}
	return err
}
