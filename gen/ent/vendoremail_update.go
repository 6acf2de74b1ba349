// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/gen/ent/predicate"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
	"github.com/invoicerd/invoicerd/gen/ent/vendoremail"
)

// VendorEmailUpdate is the builder for updating VendorEmail entities.
type VendorEmailUpdate struct {
	config
	hooks    []Hook
	mutation *VendorEmailMutation
}

// Where appends a list predicates to the VendorEmailUpdate builder.
func (_u *VendorEmailUpdate) Where(ps ...predicate.VendorEmail) *VendorEmailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *VendorEmailUpdate) SetVendorID(v uuid.UUID) *VendorEmailUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *VendorEmailUpdate) SetNillableVendorID(v *uuid.UUID) *VendorEmailUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *VendorEmailUpdate) SetEmail(v string) *VendorEmailUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *VendorEmailUpdate) SetNillableEmail(v *string) *VendorEmailUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *VendorEmailUpdate) SetIsPrimary(v bool) *VendorEmailUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *VendorEmailUpdate) SetNillableIsPrimary(v *bool) *VendorEmailUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *VendorEmailUpdate) SetVendor(v *Vendor) *VendorEmailUpdate {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the VendorEmailMutation object of the builder.
func (_u *VendorEmailUpdate) Mutation() *VendorEmailMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *VendorEmailUpdate) ClearVendor() *VendorEmailUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VendorEmailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorEmailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VendorEmailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorEmailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorEmailUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := vendoremail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "VendorEmail.email": %w`, err)}
		}
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorEmail.vendor"`)
	}
	return nil
}

func (_u *VendorEmailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendoremail.Table, vendoremail.Columns, sqlgraph.NewFieldSpec(vendoremail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(vendoremail.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(vendoremail.FieldIsPrimary, field.TypeBool, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendoremail.VendorTable,
			Columns: []string{vendoremail.VendorColumn},
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
			Table:   vendoremail.VendorTable,
			Columns: []string{vendoremail.VendorColumn},
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
			err = &NotFoundError{vendoremail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VendorEmailUpdateOne is the builder for updating a single VendorEmail entity.
type VendorEmailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VendorEmailMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *VendorEmailUpdateOne) SetVendorID(v uuid.UUID) *VendorEmailUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *VendorEmailUpdateOne) SetNillableVendorID(v *uuid.UUID) *VendorEmailUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *VendorEmailUpdateOne) SetEmail(v string) *VendorEmailUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *VendorEmailUpdateOne) SetNillableEmail(v *string) *VendorEmailUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *VendorEmailUpdateOne) SetIsPrimary(v bool) *VendorEmailUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *VendorEmailUpdateOne) SetNillableIsPrimary(v *bool) *VendorEmailUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *VendorEmailUpdateOne) SetVendor(v *Vendor) *VendorEmailUpdateOne {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the VendorEmailMutation object of the builder.
func (_u *VendorEmailUpdateOne) Mutation() *VendorEmailMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *VendorEmailUpdateOne) ClearVendor() *VendorEmailUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// Where appends a list predicates to the VendorEmailUpdate builder.
func (_u *VendorEmailUpdateOne) Where(ps ...predicate.VendorEmail) *VendorEmailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VendorEmailUpdateOne) Select(field string, fields ...string) *VendorEmailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VendorEmail entity.
func (_u *VendorEmailUpdateOne) Save(ctx context.Context) (*VendorEmail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorEmailUpdateOne) SaveX(ctx context.Context) *VendorEmail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VendorEmailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorEmailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorEmailUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := vendoremail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "VendorEmail.email": %w`, err)}
		}
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorEmail.vendor"`)
	}
	return nil
}

func (_u *VendorEmailUpdateOne) sqlSave(ctx context.Context) (_node *VendorEmail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendoremail.Table, vendoremail.Columns, sqlgraph.NewFieldSpec(vendoremail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VendorEmail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendoremail.FieldID)
		for _, f := range fields {
			if !vendoremail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendoremail.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(vendoremail.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(vendoremail.FieldIsPrimary, field.TypeBool, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendoremail.VendorTable,
			Columns: []string{vendoremail.VendorColumn},
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
			Table:   vendoremail.VendorTable,
			Columns: []string{vendoremail.VendorColumn},
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
	_node = &VendorEmail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendoremail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
