// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/gen/ent/extractionrule"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
)

// ExtractionRuleCreate is the builder for creating a ExtractionRule entity.
type ExtractionRuleCreate struct {
	config
	mutation *ExtractionRuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVendorID sets the "vendor_id" field.
func (_c *ExtractionRuleCreate) SetVendorID(v uuid.UUID) *ExtractionRuleCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *ExtractionRuleCreate) SetFieldName(v string) *ExtractionRuleCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetDataType sets the "data_type" field.
func (_c *ExtractionRuleCreate) SetDataType(v string) *ExtractionRuleCreate {
	_c.mutation.SetDataType(v)
	return _c
}

// SetLocationType sets the "location_type" field.
func (_c *ExtractionRuleCreate) SetLocationType(v string) *ExtractionRuleCreate {
	_c.mutation.SetLocationType(v)
	return _c
}

// SetCoordinates sets the "coordinates" field.
func (_c *ExtractionRuleCreate) SetCoordinates(v json.RawMessage) *ExtractionRuleCreate {
	_c.mutation.SetCoordinates(v)
	return _c
}

// SetKeyword sets the "keyword" field.
func (_c *ExtractionRuleCreate) SetKeyword(v string) *ExtractionRuleCreate {
	_c.mutation.SetKeyword(v)
	return _c
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableKeyword(v *string) *ExtractionRuleCreate {
	if v != nil {
		_c.SetKeyword(*v)
	}
	return _c
}

// SetRegexPattern sets the "regex_pattern" field.
func (_c *ExtractionRuleCreate) SetRegexPattern(v string) *ExtractionRuleCreate {
	_c.mutation.SetRegexPattern(v)
	return _c
}

// SetNillableRegexPattern sets the "regex_pattern" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableRegexPattern(v *string) *ExtractionRuleCreate {
	if v != nil {
		_c.SetRegexPattern(*v)
	}
	return _c
}

// SetTableConfig sets the "table_config" field.
func (_c *ExtractionRuleCreate) SetTableConfig(v json.RawMessage) *ExtractionRuleCreate {
	_c.mutation.SetTableConfig(v)
	return _c
}

// SetRequired sets the "required" field.
func (_c *ExtractionRuleCreate) SetRequired(v bool) *ExtractionRuleCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableRequired(v *bool) *ExtractionRuleCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetPreProcessing sets the "pre_processing" field.
func (_c *ExtractionRuleCreate) SetPreProcessing(v json.RawMessage) *ExtractionRuleCreate {
	_c.mutation.SetPreProcessing(v)
	return _c
}

// SetPostProcessing sets the "post_processing" field.
func (_c *ExtractionRuleCreate) SetPostProcessing(v json.RawMessage) *ExtractionRuleCreate {
	_c.mutation.SetPostProcessing(v)
	return _c
}

// SetValidation sets the "validation" field.
func (_c *ExtractionRuleCreate) SetValidation(v json.RawMessage) *ExtractionRuleCreate {
	_c.mutation.SetValidation(v)
	return _c
}

// SetPostProcessor sets the "post_processor" field.
func (_c *ExtractionRuleCreate) SetPostProcessor(v string) *ExtractionRuleCreate {
	_c.mutation.SetPostProcessor(v)
	return _c
}

// SetNillablePostProcessor sets the "post_processor" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillablePostProcessor(v *string) *ExtractionRuleCreate {
	if v != nil {
		_c.SetPostProcessor(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExtractionRuleCreate) SetDescription(v string) *ExtractionRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableDescription(v *string) *ExtractionRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionRuleCreate) SetCreatedAt(v time.Time) *ExtractionRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableCreatedAt(v *time.Time) *ExtractionRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionRuleCreate) SetUpdatedAt(v time.Time) *ExtractionRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionRuleCreate) SetID(v uuid.UUID) *ExtractionRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableID(v *uuid.UUID) *ExtractionRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_c *ExtractionRuleCreate) SetVendor(v *Vendor) *ExtractionRuleCreate {
	return _c.SetVendorID(v.ID)
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_c *ExtractionRuleCreate) Mutation() *ExtractionRuleMutation {
	return _c.mutation
}

// Save creates the ExtractionRule in the database.
func (_c *ExtractionRuleCreate) Save(ctx context.Context) (*ExtractionRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRuleCreate) SaveX(ctx context.Context) *ExtractionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRuleCreate) defaults() {
	if _, ok := _c.mutation.Required(); !ok {
		v := extractionrule.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRuleCreate) check() error {
	if _, ok := _c.mutation.VendorID(); !ok {
		return &ValidationError{Name: "vendor_id", err: errors.New(`ent: missing required field "ExtractionRule.vendor_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "ExtractionRule.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := extractionrule.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DataType(); !ok {
		return &ValidationError{Name: "data_type", err: errors.New(`ent: missing required field "ExtractionRule.data_type"`)}
	}
	if v, ok := _c.mutation.DataType(); ok {
		if err := extractionrule.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.data_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LocationType(); !ok {
		return &ValidationError{Name: "location_type", err: errors.New(`ent: missing required field "ExtractionRule.location_type"`)}
	}
	if v, ok := _c.mutation.LocationType(); ok {
		if err := extractionrule.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.location_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "ExtractionRule.required"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionRule.updated_at"`)}
	}
	if len(_c.mutation.VendorIDs()) == 0 {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required edge "ExtractionRule.vendor"`)}
	}
	return nil
}

func (_c *ExtractionRuleCreate) sqlSave(ctx context.Context) (*ExtractionRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionRuleCreate) createSpec() (*ExtractionRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrule.Table, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(extractionrule.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.DataType(); ok {
		_spec.SetField(extractionrule.FieldDataType, field.TypeString, value)
		_node.DataType = value
	}
	if value, ok := _c.mutation.LocationType(); ok {
		_spec.SetField(extractionrule.FieldLocationType, field.TypeString, value)
		_node.LocationType = value
	}
	if value, ok := _c.mutation.Coordinates(); ok {
		_spec.SetField(extractionrule.FieldCoordinates, field.TypeJSON, value)
		_node.Coordinates = value
	}
	if value, ok := _c.mutation.Keyword(); ok {
		_spec.SetField(extractionrule.FieldKeyword, field.TypeString, value)
		_node.Keyword = &value
	}
	if value, ok := _c.mutation.RegexPattern(); ok {
		_spec.SetField(extractionrule.FieldRegexPattern, field.TypeString, value)
		_node.RegexPattern = &value
	}
	if value, ok := _c.mutation.TableConfig(); ok {
		_spec.SetField(extractionrule.FieldTableConfig, field.TypeJSON, value)
		_node.TableConfig = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(extractionrule.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.PreProcessing(); ok {
		_spec.SetField(extractionrule.FieldPreProcessing, field.TypeJSON, value)
		_node.PreProcessing = value
	}
	if value, ok := _c.mutation.PostProcessing(); ok {
		_spec.SetField(extractionrule.FieldPostProcessing, field.TypeJSON, value)
		_node.PostProcessing = value
	}
	if value, ok := _c.mutation.Validation(); ok {
		_spec.SetField(extractionrule.FieldValidation, field.TypeJSON, value)
		_node.Validation = value
	}
	if value, ok := _c.mutation.PostProcessor(); ok {
		_spec.SetField(extractionrule.FieldPostProcessor, field.TypeString, value)
		_node.PostProcessor = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(extractionrule.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrule.VendorTable,
			Columns: []string{extractionrule.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VendorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionRule.Create().
//		SetVendorID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionRuleUpsert) {
//			SetVendorID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionRuleCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionRuleUpsertOne {
	_c.conflict = opts
	return &ExtractionRuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionRuleCreate) OnConflictColumns(columns ...string) *ExtractionRuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionRuleUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionRuleUpsertOne is the builder for "upsert"-ing
	//  one ExtractionRule node.
	ExtractionRuleUpsertOne struct {
		create *ExtractionRuleCreate
	}

	// ExtractionRuleUpsert is the "OnConflict" setter.
	ExtractionRuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetVendorID sets the "vendor_id" field.
func (u *ExtractionRuleUpsert) SetVendorID(v uuid.UUID) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldVendorID, v)
	return u
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateVendorID() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldVendorID)
	return u
}

// SetFieldName sets the "field_name" field.
func (u *ExtractionRuleUpsert) SetFieldName(v string) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldFieldName, v)
	return u
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateFieldName() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldFieldName)
	return u
}

// SetDataType sets the "data_type" field.
func (u *ExtractionRuleUpsert) SetDataType(v string) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldDataType, v)
	return u
}

// UpdateDataType sets the "data_type" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateDataType() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldDataType)
	return u
}

// SetLocationType sets the "location_type" field.
func (u *ExtractionRuleUpsert) SetLocationType(v string) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldLocationType, v)
	return u
}

// UpdateLocationType sets the "location_type" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateLocationType() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldLocationType)
	return u
}

// SetCoordinates sets the "coordinates" field.
func (u *ExtractionRuleUpsert) SetCoordinates(v json.RawMessage) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldCoordinates, v)
	return u
}

// UpdateCoordinates sets the "coordinates" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateCoordinates() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldCoordinates)
	return u
}

// ClearCoordinates clears the value of the "coordinates" field.
func (u *ExtractionRuleUpsert) ClearCoordinates() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldCoordinates)
	return u
}

// SetKeyword sets the "keyword" field.
func (u *ExtractionRuleUpsert) SetKeyword(v string) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldKeyword, v)
	return u
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateKeyword() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldKeyword)
	return u
}

// ClearKeyword clears the value of the "keyword" field.
func (u *ExtractionRuleUpsert) ClearKeyword() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldKeyword)
	return u
}

// SetRegexPattern sets the "regex_pattern" field.
func (u *ExtractionRuleUpsert) SetRegexPattern(v string) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldRegexPattern, v)
	return u
}

// UpdateRegexPattern sets the "regex_pattern" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateRegexPattern() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldRegexPattern)
	return u
}

// ClearRegexPattern clears the value of the "regex_pattern" field.
func (u *ExtractionRuleUpsert) ClearRegexPattern() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldRegexPattern)
	return u
}

// SetTableConfig sets the "table_config" field.
func (u *ExtractionRuleUpsert) SetTableConfig(v json.RawMessage) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldTableConfig, v)
	return u
}

// UpdateTableConfig sets the "table_config" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateTableConfig() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldTableConfig)
	return u
}

// ClearTableConfig clears the value of the "table_config" field.
func (u *ExtractionRuleUpsert) ClearTableConfig() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldTableConfig)
	return u
}

// SetRequired sets the "required" field.
func (u *ExtractionRuleUpsert) SetRequired(v bool) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldRequired, v)
	return u
}

// UpdateRequired sets the "required" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateRequired() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldRequired)
	return u
}

// SetPreProcessing sets the "pre_processing" field.
func (u *ExtractionRuleUpsert) SetPreProcessing(v json.RawMessage) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldPreProcessing, v)
	return u
}

// UpdatePreProcessing sets the "pre_processing" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdatePreProcessing() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldPreProcessing)
	return u
}

// ClearPreProcessing clears the value of the "pre_processing" field.
func (u *ExtractionRuleUpsert) ClearPreProcessing() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldPreProcessing)
	return u
}

// SetPostProcessing sets the "post_processing" field.
func (u *ExtractionRuleUpsert) SetPostProcessing(v json.RawMessage) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldPostProcessing, v)
	return u
}

// UpdatePostProcessing sets the "post_processing" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdatePostProcessing() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldPostProcessing)
	return u
}

// ClearPostProcessing clears the value of the "post_processing" field.
func (u *ExtractionRuleUpsert) ClearPostProcessing() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldPostProcessing)
	return u
}

// SetValidation sets the "validation" field.
func (u *ExtractionRuleUpsert) SetValidation(v json.RawMessage) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldValidation, v)
	return u
}

// UpdateValidation sets the "validation" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateValidation() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldValidation)
	return u
}

// ClearValidation clears the value of the "validation" field.
func (u *ExtractionRuleUpsert) ClearValidation() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldValidation)
	return u
}

// SetPostProcessor sets the "post_processor" field.
func (u *ExtractionRuleUpsert) SetPostProcessor(v string) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldPostProcessor, v)
	return u
}

// UpdatePostProcessor sets the "post_processor" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdatePostProcessor() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldPostProcessor)
	return u
}

// ClearPostProcessor clears the value of the "post_processor" field.
func (u *ExtractionRuleUpsert) ClearPostProcessor() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldPostProcessor)
	return u
}

// SetDescription sets the "description" field.
func (u *ExtractionRuleUpsert) SetDescription(v string) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateDescription() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ExtractionRuleUpsert) ClearDescription() *ExtractionRuleUpsert {
	u.SetNull(extractionrule.FieldDescription)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ExtractionRuleUpsert) SetCreatedAt(v time.Time) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateCreatedAt() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionRuleUpsert) SetUpdatedAt(v time.Time) *ExtractionRuleUpsert {
	u.Set(extractionrule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionRuleUpsert) UpdateUpdatedAt() *ExtractionRuleUpsert {
	u.SetExcluded(extractionrule.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractionRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractionrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionRuleUpsertOne) UpdateNewValues() *ExtractionRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractionrule.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionRule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionRuleUpsertOne) Ignore() *ExtractionRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionRuleUpsertOne) DoNothing() *ExtractionRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionRuleCreate.OnConflict
// documentation for more info.
func (u *ExtractionRuleUpsertOne) Update(set func(*ExtractionRuleUpsert)) *ExtractionRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendorID sets the "vendor_id" field.
func (u *ExtractionRuleUpsertOne) SetVendorID(v uuid.UUID) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetVendorID(v)
	})
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateVendorID() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateVendorID()
	})
}

// SetFieldName sets the "field_name" field.
func (u *ExtractionRuleUpsertOne) SetFieldName(v string) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetFieldName(v)
	})
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateFieldName() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateFieldName()
	})
}

// SetDataType sets the "data_type" field.
func (u *ExtractionRuleUpsertOne) SetDataType(v string) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetDataType(v)
	})
}

// UpdateDataType sets the "data_type" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateDataType() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateDataType()
	})
}

// SetLocationType sets the "location_type" field.
func (u *ExtractionRuleUpsertOne) SetLocationType(v string) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetLocationType(v)
	})
}

// UpdateLocationType sets the "location_type" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateLocationType() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateLocationType()
	})
}

// SetCoordinates sets the "coordinates" field.
func (u *ExtractionRuleUpsertOne) SetCoordinates(v json.RawMessage) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetCoordinates(v)
	})
}

// UpdateCoordinates sets the "coordinates" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateCoordinates() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateCoordinates()
	})
}

// ClearCoordinates clears the value of the "coordinates" field.
func (u *ExtractionRuleUpsertOne) ClearCoordinates() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearCoordinates()
	})
}

// SetKeyword sets the "keyword" field.
func (u *ExtractionRuleUpsertOne) SetKeyword(v string) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetKeyword(v)
	})
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateKeyword() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateKeyword()
	})
}

// ClearKeyword clears the value of the "keyword" field.
func (u *ExtractionRuleUpsertOne) ClearKeyword() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearKeyword()
	})
}

// SetRegexPattern sets the "regex_pattern" field.
func (u *ExtractionRuleUpsertOne) SetRegexPattern(v string) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetRegexPattern(v)
	})
}

// UpdateRegexPattern sets the "regex_pattern" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateRegexPattern() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateRegexPattern()
	})
}

// ClearRegexPattern clears the value of the "regex_pattern" field.
func (u *ExtractionRuleUpsertOne) ClearRegexPattern() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearRegexPattern()
	})
}

// SetTableConfig sets the "table_config" field.
func (u *ExtractionRuleUpsertOne) SetTableConfig(v json.RawMessage) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetTableConfig(v)
	})
}

// UpdateTableConfig sets the "table_config" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateTableConfig() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateTableConfig()
	})
}

// ClearTableConfig clears the value of the "table_config" field.
func (u *ExtractionRuleUpsertOne) ClearTableConfig() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearTableConfig()
	})
}

// SetRequired sets the "required" field.
func (u *ExtractionRuleUpsertOne) SetRequired(v bool) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetRequired(v)
	})
}

// UpdateRequired sets the "required" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateRequired() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateRequired()
	})
}

// SetPreProcessing sets the "pre_processing" field.
func (u *ExtractionRuleUpsertOne) SetPreProcessing(v json.RawMessage) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetPreProcessing(v)
	})
}

// UpdatePreProcessing sets the "pre_processing" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdatePreProcessing() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdatePreProcessing()
	})
}

// ClearPreProcessing clears the value of the "pre_processing" field.
func (u *ExtractionRuleUpsertOne) ClearPreProcessing() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearPreProcessing()
	})
}

// SetPostProcessing sets the "post_processing" field.
func (u *ExtractionRuleUpsertOne) SetPostProcessing(v json.RawMessage) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetPostProcessing(v)
	})
}

// UpdatePostProcessing sets the "post_processing" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdatePostProcessing() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdatePostProcessing()
	})
}

// ClearPostProcessing clears the value of the "post_processing" field.
func (u *ExtractionRuleUpsertOne) ClearPostProcessing() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearPostProcessing()
	})
}

// SetValidation sets the "validation" field.
func (u *ExtractionRuleUpsertOne) SetValidation(v json.RawMessage) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetValidation(v)
	})
}

// UpdateValidation sets the "validation" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateValidation() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateValidation()
	})
}

// ClearValidation clears the value of the "validation" field.
func (u *ExtractionRuleUpsertOne) ClearValidation() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearValidation()
	})
}

// SetPostProcessor sets the "post_processor" field.
func (u *ExtractionRuleUpsertOne) SetPostProcessor(v string) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetPostProcessor(v)
	})
}

// UpdatePostProcessor sets the "post_processor" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdatePostProcessor() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdatePostProcessor()
	})
}

// ClearPostProcessor clears the value of the "post_processor" field.
func (u *ExtractionRuleUpsertOne) ClearPostProcessor() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearPostProcessor()
	})
}

// SetDescription sets the "description" field.
func (u *ExtractionRuleUpsertOne) SetDescription(v string) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateDescription() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExtractionRuleUpsertOne) ClearDescription() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearDescription()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ExtractionRuleUpsertOne) SetCreatedAt(v time.Time) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateCreatedAt() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionRuleUpsertOne) SetUpdatedAt(v time.Time) *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionRuleUpsertOne) UpdateUpdatedAt() *ExtractionRuleUpsertOne {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractionRuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionRuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionRuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionRuleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractionRuleUpsertOne.ID is not supported by MySQL driver. Use ExtractionRuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionRuleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionRuleCreateBulk is the builder for creating many ExtractionRule entities in bulk.
type ExtractionRuleCreateBulk struct {
	config
	err      error
	builders []*ExtractionRuleCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractionRule entities in the database.
func (_c *ExtractionRuleCreateBulk) Save(ctx context.Context) ([]*ExtractionRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionRuleCreateBulk) SaveX(ctx context.Context) []*ExtractionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionRule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionRuleUpsert) {
//			SetVendorID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionRuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionRuleUpsertBulk {
	_c.conflict = opts
	return &ExtractionRuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionRuleCreateBulk) OnConflictColumns(columns ...string) *ExtractionRuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionRuleUpsertBulk{
		create: _c,
	}
}

// ExtractionRuleUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractionRule nodes.
type ExtractionRuleUpsertBulk struct {
	create *ExtractionRuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractionRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractionrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionRuleUpsertBulk) UpdateNewValues() *ExtractionRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractionrule.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionRule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionRuleUpsertBulk) Ignore() *ExtractionRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionRuleUpsertBulk) DoNothing() *ExtractionRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionRuleCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionRuleUpsertBulk) Update(set func(*ExtractionRuleUpsert)) *ExtractionRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendorID sets the "vendor_id" field.
func (u *ExtractionRuleUpsertBulk) SetVendorID(v uuid.UUID) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetVendorID(v)
	})
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateVendorID() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateVendorID()
	})
}

// SetFieldName sets the "field_name" field.
func (u *ExtractionRuleUpsertBulk) SetFieldName(v string) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetFieldName(v)
	})
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateFieldName() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateFieldName()
	})
}

// SetDataType sets the "data_type" field.
func (u *ExtractionRuleUpsertBulk) SetDataType(v string) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetDataType(v)
	})
}

// UpdateDataType sets the "data_type" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateDataType() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateDataType()
	})
}

// SetLocationType sets the "location_type" field.
func (u *ExtractionRuleUpsertBulk) SetLocationType(v string) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetLocationType(v)
	})
}

// UpdateLocationType sets the "location_type" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateLocationType() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateLocationType()
	})
}

// SetCoordinates sets the "coordinates" field.
func (u *ExtractionRuleUpsertBulk) SetCoordinates(v json.RawMessage) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetCoordinates(v)
	})
}

// UpdateCoordinates sets the "coordinates" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateCoordinates() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateCoordinates()
	})
}

// ClearCoordinates clears the value of the "coordinates" field.
func (u *ExtractionRuleUpsertBulk) ClearCoordinates() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearCoordinates()
	})
}

// SetKeyword sets the "keyword" field.
func (u *ExtractionRuleUpsertBulk) SetKeyword(v string) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetKeyword(v)
	})
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateKeyword() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateKeyword()
	})
}

// ClearKeyword clears the value of the "keyword" field.
func (u *ExtractionRuleUpsertBulk) ClearKeyword() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearKeyword()
	})
}

// SetRegexPattern sets the "regex_pattern" field.
func (u *ExtractionRuleUpsertBulk) SetRegexPattern(v string) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetRegexPattern(v)
	})
}

// UpdateRegexPattern sets the "regex_pattern" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateRegexPattern() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateRegexPattern()
	})
}

// ClearRegexPattern clears the value of the "regex_pattern" field.
func (u *ExtractionRuleUpsertBulk) ClearRegexPattern() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearRegexPattern()
	})
}

// SetTableConfig sets the "table_config" field.
func (u *ExtractionRuleUpsertBulk) SetTableConfig(v json.RawMessage) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetTableConfig(v)
	})
}

// UpdateTableConfig sets the "table_config" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateTableConfig() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateTableConfig()
	})
}

// ClearTableConfig clears the value of the "table_config" field.
func (u *ExtractionRuleUpsertBulk) ClearTableConfig() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearTableConfig()
	})
}

// SetRequired sets the "required" field.
func (u *ExtractionRuleUpsertBulk) SetRequired(v bool) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetRequired(v)
	})
}

// UpdateRequired sets the "required" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateRequired() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateRequired()
	})
}

// SetPreProcessing sets the "pre_processing" field.
func (u *ExtractionRuleUpsertBulk) SetPreProcessing(v json.RawMessage) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetPreProcessing(v)
	})
}

// UpdatePreProcessing sets the "pre_processing" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdatePreProcessing() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdatePreProcessing()
	})
}

// ClearPreProcessing clears the value of the "pre_processing" field.
func (u *ExtractionRuleUpsertBulk) ClearPreProcessing() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearPreProcessing()
	})
}

// SetPostProcessing sets the "post_processing" field.
func (u *ExtractionRuleUpsertBulk) SetPostProcessing(v json.RawMessage) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetPostProcessing(v)
	})
}

// UpdatePostProcessing sets the "post_processing" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdatePostProcessing() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdatePostProcessing()
	})
}

// ClearPostProcessing clears the value of the "post_processing" field.
func (u *ExtractionRuleUpsertBulk) ClearPostProcessing() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearPostProcessing()
	})
}

// SetValidation sets the "validation" field.
func (u *ExtractionRuleUpsertBulk) SetValidation(v json.RawMessage) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetValidation(v)
	})
}

// UpdateValidation sets the "validation" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateValidation() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateValidation()
	})
}

// ClearValidation clears the value of the "validation" field.
func (u *ExtractionRuleUpsertBulk) ClearValidation() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearValidation()
	})
}

// SetPostProcessor sets the "post_processor" field.
func (u *ExtractionRuleUpsertBulk) SetPostProcessor(v string) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetPostProcessor(v)
	})
}

// UpdatePostProcessor sets the "post_processor" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdatePostProcessor() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdatePostProcessor()
	})
}

// ClearPostProcessor clears the value of the "post_processor" field.
func (u *ExtractionRuleUpsertBulk) ClearPostProcessor() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearPostProcessor()
	})
}

// SetDescription sets the "description" field.
func (u *ExtractionRuleUpsertBulk) SetDescription(v string) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateDescription() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExtractionRuleUpsertBulk) ClearDescription() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.ClearDescription()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ExtractionRuleUpsertBulk) SetCreatedAt(v time.Time) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateCreatedAt() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionRuleUpsertBulk) SetUpdatedAt(v time.Time) *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionRuleUpsertBulk) UpdateUpdatedAt() *ExtractionRuleUpsertBulk {
	return u.Update(func(s *ExtractionRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractionRuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionRuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionRuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionRuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
