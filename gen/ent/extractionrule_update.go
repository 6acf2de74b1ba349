// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/gen/ent/extractionrule"
	"github.com/invoicerd/invoicerd/gen/ent/predicate"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
)

// ExtractionRuleUpdate is the builder for updating ExtractionRule entities.
type ExtractionRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRuleMutation
}

// Where appends a list predicates to the ExtractionRuleUpdate builder.
func (_u *ExtractionRuleUpdate) Where(ps ...predicate.ExtractionRule) *ExtractionRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *ExtractionRuleUpdate) SetVendorID(v uuid.UUID) *ExtractionRuleUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableVendorID(v *uuid.UUID) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionRuleUpdate) SetFieldName(v string) *ExtractionRuleUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableFieldName(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *ExtractionRuleUpdate) SetDataType(v string) *ExtractionRuleUpdate {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableDataType(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetLocationType sets the "location_type" field.
func (_u *ExtractionRuleUpdate) SetLocationType(v string) *ExtractionRuleUpdate {
	_u.mutation.SetLocationType(v)
	return _u
}

// SetNillableLocationType sets the "location_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableLocationType(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetLocationType(*v)
	}
	return _u
}

// SetCoordinates sets the "coordinates" field.
func (_u *ExtractionRuleUpdate) SetCoordinates(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.SetCoordinates(v)
	return _u
}

// AppendCoordinates appends value to the "coordinates" field.
func (_u *ExtractionRuleUpdate) AppendCoordinates(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.AppendCoordinates(v)
	return _u
}

// ClearCoordinates clears the value of the "coordinates" field.
func (_u *ExtractionRuleUpdate) ClearCoordinates() *ExtractionRuleUpdate {
	_u.mutation.ClearCoordinates()
	return _u
}

// SetKeyword sets the "keyword" field.
func (_u *ExtractionRuleUpdate) SetKeyword(v string) *ExtractionRuleUpdate {
	_u.mutation.SetKeyword(v)
	return _u
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableKeyword(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetKeyword(*v)
	}
	return _u
}

// ClearKeyword clears the value of the "keyword" field.
func (_u *ExtractionRuleUpdate) ClearKeyword() *ExtractionRuleUpdate {
	_u.mutation.ClearKeyword()
	return _u
}

// SetRegexPattern sets the "regex_pattern" field.
func (_u *ExtractionRuleUpdate) SetRegexPattern(v string) *ExtractionRuleUpdate {
	_u.mutation.SetRegexPattern(v)
	return _u
}

// SetNillableRegexPattern sets the "regex_pattern" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableRegexPattern(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetRegexPattern(*v)
	}
	return _u
}

// ClearRegexPattern clears the value of the "regex_pattern" field.
func (_u *ExtractionRuleUpdate) ClearRegexPattern() *ExtractionRuleUpdate {
	_u.mutation.ClearRegexPattern()
	return _u
}

// SetTableConfig sets the "table_config" field.
func (_u *ExtractionRuleUpdate) SetTableConfig(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.SetTableConfig(v)
	return _u
}

// AppendTableConfig appends value to the "table_config" field.
func (_u *ExtractionRuleUpdate) AppendTableConfig(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.AppendTableConfig(v)
	return _u
}

// ClearTableConfig clears the value of the "table_config" field.
func (_u *ExtractionRuleUpdate) ClearTableConfig() *ExtractionRuleUpdate {
	_u.mutation.ClearTableConfig()
	return _u
}

// SetRequired sets the "required" field.
func (_u *ExtractionRuleUpdate) SetRequired(v bool) *ExtractionRuleUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableRequired(v *bool) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetPreProcessing sets the "pre_processing" field.
func (_u *ExtractionRuleUpdate) SetPreProcessing(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.SetPreProcessing(v)
	return _u
}

// AppendPreProcessing appends value to the "pre_processing" field.
func (_u *ExtractionRuleUpdate) AppendPreProcessing(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.AppendPreProcessing(v)
	return _u
}

// ClearPreProcessing clears the value of the "pre_processing" field.
func (_u *ExtractionRuleUpdate) ClearPreProcessing() *ExtractionRuleUpdate {
	_u.mutation.ClearPreProcessing()
	return _u
}

// SetPostProcessing sets the "post_processing" field.
func (_u *ExtractionRuleUpdate) SetPostProcessing(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.SetPostProcessing(v)
	return _u
}

// AppendPostProcessing appends value to the "post_processing" field.
func (_u *ExtractionRuleUpdate) AppendPostProcessing(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.AppendPostProcessing(v)
	return _u
}

// ClearPostProcessing clears the value of the "post_processing" field.
func (_u *ExtractionRuleUpdate) ClearPostProcessing() *ExtractionRuleUpdate {
	_u.mutation.ClearPostProcessing()
	return _u
}

// SetValidation sets the "validation" field.
func (_u *ExtractionRuleUpdate) SetValidation(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.SetValidation(v)
	return _u
}

// AppendValidation appends value to the "validation" field.
func (_u *ExtractionRuleUpdate) AppendValidation(v json.RawMessage) *ExtractionRuleUpdate {
	_u.mutation.AppendValidation(v)
	return _u
}

// ClearValidation clears the value of the "validation" field.
func (_u *ExtractionRuleUpdate) ClearValidation() *ExtractionRuleUpdate {
	_u.mutation.ClearValidation()
	return _u
}

// SetPostProcessor sets the "post_processor" field.
func (_u *ExtractionRuleUpdate) SetPostProcessor(v string) *ExtractionRuleUpdate {
	_u.mutation.SetPostProcessor(v)
	return _u
}

// SetNillablePostProcessor sets the "post_processor" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillablePostProcessor(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetPostProcessor(*v)
	}
	return _u
}

// ClearPostProcessor clears the value of the "post_processor" field.
func (_u *ExtractionRuleUpdate) ClearPostProcessor() *ExtractionRuleUpdate {
	_u.mutation.ClearPostProcessor()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractionRuleUpdate) SetDescription(v string) *ExtractionRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableDescription(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractionRuleUpdate) ClearDescription() *ExtractionRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionRuleUpdate) SetCreatedAt(v time.Time) *ExtractionRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionRuleUpdate) SetUpdatedAt(v time.Time) *ExtractionRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *ExtractionRuleUpdate) SetVendor(v *Vendor) *ExtractionRuleUpdate {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_u *ExtractionRuleUpdate) Mutation() *ExtractionRuleMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *ExtractionRuleUpdate) ClearVendor() *ExtractionRuleUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRuleUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractionrule.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataType(); ok {
		if err := extractionrule.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.data_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LocationType(); ok {
		if err := extractionrule.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.location_type": %w`, err)}
		}
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRule.vendor"`)
	}
	return nil
}

func (_u *ExtractionRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrule.Table, extractionrule.Columns, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractionrule.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(extractionrule.FieldDataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocationType(); ok {
		_spec.SetField(extractionrule.FieldLocationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Coordinates(); ok {
		_spec.SetField(extractionrule.FieldCoordinates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoordinates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldCoordinates, value)
		})
	}
	if _u.mutation.CoordinatesCleared() {
		_spec.ClearField(extractionrule.FieldCoordinates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Keyword(); ok {
		_spec.SetField(extractionrule.FieldKeyword, field.TypeString, value)
	}
	if _u.mutation.KeywordCleared() {
		_spec.ClearField(extractionrule.FieldKeyword, field.TypeString)
	}
	if value, ok := _u.mutation.RegexPattern(); ok {
		_spec.SetField(extractionrule.FieldRegexPattern, field.TypeString, value)
	}
	if _u.mutation.RegexPatternCleared() {
		_spec.ClearField(extractionrule.FieldRegexPattern, field.TypeString)
	}
	if value, ok := _u.mutation.TableConfig(); ok {
		_spec.SetField(extractionrule.FieldTableConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldTableConfig, value)
		})
	}
	if _u.mutation.TableConfigCleared() {
		_spec.ClearField(extractionrule.FieldTableConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(extractionrule.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreProcessing(); ok {
		_spec.SetField(extractionrule.FieldPreProcessing, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreProcessing(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldPreProcessing, value)
		})
	}
	if _u.mutation.PreProcessingCleared() {
		_spec.ClearField(extractionrule.FieldPreProcessing, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostProcessing(); ok {
		_spec.SetField(extractionrule.FieldPostProcessing, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPostProcessing(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldPostProcessing, value)
		})
	}
	if _u.mutation.PostProcessingCleared() {
		_spec.ClearField(extractionrule.FieldPostProcessing, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validation(); ok {
		_spec.SetField(extractionrule.FieldValidation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldValidation, value)
		})
	}
	if _u.mutation.ValidationCleared() {
		_spec.ClearField(extractionrule.FieldValidation, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostProcessor(); ok {
		_spec.SetField(extractionrule.FieldPostProcessor, field.TypeString, value)
	}
	if _u.mutation.PostProcessorCleared() {
		_spec.ClearField(extractionrule.FieldPostProcessor, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractionrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extractionrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRuleUpdateOne is the builder for updating a single ExtractionRule entity.
type ExtractionRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRuleMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *ExtractionRuleUpdateOne) SetVendorID(v uuid.UUID) *ExtractionRuleUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableVendorID(v *uuid.UUID) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionRuleUpdateOne) SetFieldName(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableFieldName(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *ExtractionRuleUpdateOne) SetDataType(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableDataType(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetLocationType sets the "location_type" field.
func (_u *ExtractionRuleUpdateOne) SetLocationType(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetLocationType(v)
	return _u
}

// SetNillableLocationType sets the "location_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableLocationType(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetLocationType(*v)
	}
	return _u
}

// SetCoordinates sets the "coordinates" field.
func (_u *ExtractionRuleUpdateOne) SetCoordinates(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.SetCoordinates(v)
	return _u
}

// AppendCoordinates appends value to the "coordinates" field.
func (_u *ExtractionRuleUpdateOne) AppendCoordinates(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.AppendCoordinates(v)
	return _u
}

// ClearCoordinates clears the value of the "coordinates" field.
func (_u *ExtractionRuleUpdateOne) ClearCoordinates() *ExtractionRuleUpdateOne {
	_u.mutation.ClearCoordinates()
	return _u
}

// SetKeyword sets the "keyword" field.
func (_u *ExtractionRuleUpdateOne) SetKeyword(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetKeyword(v)
	return _u
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableKeyword(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetKeyword(*v)
	}
	return _u
}

// ClearKeyword clears the value of the "keyword" field.
func (_u *ExtractionRuleUpdateOne) ClearKeyword() *ExtractionRuleUpdateOne {
	_u.mutation.ClearKeyword()
	return _u
}

// SetRegexPattern sets the "regex_pattern" field.
func (_u *ExtractionRuleUpdateOne) SetRegexPattern(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetRegexPattern(v)
	return _u
}

// SetNillableRegexPattern sets the "regex_pattern" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableRegexPattern(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetRegexPattern(*v)
	}
	return _u
}

// ClearRegexPattern clears the value of the "regex_pattern" field.
func (_u *ExtractionRuleUpdateOne) ClearRegexPattern() *ExtractionRuleUpdateOne {
	_u.mutation.ClearRegexPattern()
	return _u
}

// SetTableConfig sets the "table_config" field.
func (_u *ExtractionRuleUpdateOne) SetTableConfig(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.SetTableConfig(v)
	return _u
}

// AppendTableConfig appends value to the "table_config" field.
func (_u *ExtractionRuleUpdateOne) AppendTableConfig(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.AppendTableConfig(v)
	return _u
}

// ClearTableConfig clears the value of the "table_config" field.
func (_u *ExtractionRuleUpdateOne) ClearTableConfig() *ExtractionRuleUpdateOne {
	_u.mutation.ClearTableConfig()
	return _u
}

// SetRequired sets the "required" field.
func (_u *ExtractionRuleUpdateOne) SetRequired(v bool) *ExtractionRuleUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableRequired(v *bool) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetPreProcessing sets the "pre_processing" field.
func (_u *ExtractionRuleUpdateOne) SetPreProcessing(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.SetPreProcessing(v)
	return _u
}

// AppendPreProcessing appends value to the "pre_processing" field.
func (_u *ExtractionRuleUpdateOne) AppendPreProcessing(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.AppendPreProcessing(v)
	return _u
}

// ClearPreProcessing clears the value of the "pre_processing" field.
func (_u *ExtractionRuleUpdateOne) ClearPreProcessing() *ExtractionRuleUpdateOne {
	_u.mutation.ClearPreProcessing()
	return _u
}

// SetPostProcessing sets the "post_processing" field.
func (_u *ExtractionRuleUpdateOne) SetPostProcessing(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.SetPostProcessing(v)
	return _u
}

// AppendPostProcessing appends value to the "post_processing" field.
func (_u *ExtractionRuleUpdateOne) AppendPostProcessing(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.AppendPostProcessing(v)
	return _u
}

// ClearPostProcessing clears the value of the "post_processing" field.
func (_u *ExtractionRuleUpdateOne) ClearPostProcessing() *ExtractionRuleUpdateOne {
	_u.mutation.ClearPostProcessing()
	return _u
}

// SetValidation sets the "validation" field.
func (_u *ExtractionRuleUpdateOne) SetValidation(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.SetValidation(v)
	return _u
}

// AppendValidation appends value to the "validation" field.
func (_u *ExtractionRuleUpdateOne) AppendValidation(v json.RawMessage) *ExtractionRuleUpdateOne {
	_u.mutation.AppendValidation(v)
	return _u
}

// ClearValidation clears the value of the "validation" field.
func (_u *ExtractionRuleUpdateOne) ClearValidation() *ExtractionRuleUpdateOne {
	_u.mutation.ClearValidation()
	return _u
}

// SetPostProcessor sets the "post_processor" field.
func (_u *ExtractionRuleUpdateOne) SetPostProcessor(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetPostProcessor(v)
	return _u
}

// SetNillablePostProcessor sets the "post_processor" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillablePostProcessor(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetPostProcessor(*v)
	}
	return _u
}

// ClearPostProcessor clears the value of the "post_processor" field.
func (_u *ExtractionRuleUpdateOne) ClearPostProcessor() *ExtractionRuleUpdateOne {
	_u.mutation.ClearPostProcessor()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractionRuleUpdateOne) SetDescription(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableDescription(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractionRuleUpdateOne) ClearDescription() *ExtractionRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionRuleUpdateOne) SetCreatedAt(v time.Time) *ExtractionRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionRuleUpdateOne) SetUpdatedAt(v time.Time) *ExtractionRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *ExtractionRuleUpdateOne) SetVendor(v *Vendor) *ExtractionRuleUpdateOne {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_u *ExtractionRuleUpdateOne) Mutation() *ExtractionRuleMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *ExtractionRuleUpdateOne) ClearVendor() *ExtractionRuleUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// Where appends a list predicates to the ExtractionRuleUpdate builder.
func (_u *ExtractionRuleUpdateOne) Where(ps ...predicate.ExtractionRule) *ExtractionRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRuleUpdateOne) Select(field string, fields ...string) *ExtractionRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRule entity.
func (_u *ExtractionRuleUpdateOne) Save(ctx context.Context) (*ExtractionRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRuleUpdateOne) SaveX(ctx context.Context) *ExtractionRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRuleUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractionrule.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataType(); ok {
		if err := extractionrule.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.data_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LocationType(); ok {
		if err := extractionrule.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.location_type": %w`, err)}
		}
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRule.vendor"`)
	}
	return nil
}

func (_u *ExtractionRuleUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrule.Table, extractionrule.Columns, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrule.FieldID)
		for _, f := range fields {
			if !extractionrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractionrule.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(extractionrule.FieldDataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocationType(); ok {
		_spec.SetField(extractionrule.FieldLocationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Coordinates(); ok {
		_spec.SetField(extractionrule.FieldCoordinates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoordinates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldCoordinates, value)
		})
	}
	if _u.mutation.CoordinatesCleared() {
		_spec.ClearField(extractionrule.FieldCoordinates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Keyword(); ok {
		_spec.SetField(extractionrule.FieldKeyword, field.TypeString, value)
	}
	if _u.mutation.KeywordCleared() {
		_spec.ClearField(extractionrule.FieldKeyword, field.TypeString)
	}
	if value, ok := _u.mutation.RegexPattern(); ok {
		_spec.SetField(extractionrule.FieldRegexPattern, field.TypeString, value)
	}
	if _u.mutation.RegexPatternCleared() {
		_spec.ClearField(extractionrule.FieldRegexPattern, field.TypeString)
	}
	if value, ok := _u.mutation.TableConfig(); ok {
		_spec.SetField(extractionrule.FieldTableConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldTableConfig, value)
		})
	}
	if _u.mutation.TableConfigCleared() {
		_spec.ClearField(extractionrule.FieldTableConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(extractionrule.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreProcessing(); ok {
		_spec.SetField(extractionrule.FieldPreProcessing, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreProcessing(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldPreProcessing, value)
		})
	}
	if _u.mutation.PreProcessingCleared() {
		_spec.ClearField(extractionrule.FieldPreProcessing, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostProcessing(); ok {
		_spec.SetField(extractionrule.FieldPostProcessing, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPostProcessing(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldPostProcessing, value)
		})
	}
	if _u.mutation.PostProcessingCleared() {
		_spec.ClearField(extractionrule.FieldPostProcessing, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validation(); ok {
		_spec.SetField(extractionrule.FieldValidation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldValidation, value)
		})
	}
	if _u.mutation.ValidationCleared() {
		_spec.ClearField(extractionrule.FieldValidation, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostProcessor(); ok {
		_spec.SetField(extractionrule.FieldPostProcessor, field.TypeString, value)
	}
	if _u.mutation.PostProcessorCleared() {
		_spec.ClearField(extractionrule.FieldPostProcessor, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractionrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extractionrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
