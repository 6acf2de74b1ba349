// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicerd/invoicerd/gen/ent/vendor"
	"github.com/invoicerd/invoicerd/gen/ent/vendoremail"
)

// VendorEmailCreate is the builder for creating a VendorEmail entity.
type VendorEmailCreate struct {
	config
	mutation *VendorEmailMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVendorID sets the "vendor_id" field.
func (_c *VendorEmailCreate) SetVendorID(v uuid.UUID) *VendorEmailCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *VendorEmailCreate) SetEmail(v string) *VendorEmailCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *VendorEmailCreate) SetIsPrimary(v bool) *VendorEmailCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *VendorEmailCreate) SetNillableIsPrimary(v *bool) *VendorEmailCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VendorEmailCreate) SetID(v uuid.UUID) *VendorEmailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VendorEmailCreate) SetNillableID(v *uuid.UUID) *VendorEmailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_c *VendorEmailCreate) SetVendor(v *Vendor) *VendorEmailCreate {
	return _c.SetVendorID(v.ID)
}

// Mutation returns the VendorEmailMutation object of the builder.
func (_c *VendorEmailCreate) Mutation() *VendorEmailMutation {
	return _c.mutation
}

// Save creates the VendorEmail in the database.
func (_c *VendorEmailCreate) Save(ctx context.Context) (*VendorEmail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VendorEmailCreate) SaveX(ctx context.Context) *VendorEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorEmailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorEmailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VendorEmailCreate) defaults() {
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := vendoremail.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vendoremail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VendorEmailCreate) check() error {
	if _, ok := _c.mutation.VendorID(); !ok {
		return &ValidationError{Name: "vendor_id", err: errors.New(`ent: missing required field "VendorEmail.vendor_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "VendorEmail.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := vendoremail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "VendorEmail.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "VendorEmail.is_primary"`)}
	}
	if len(_c.mutation.VendorIDs()) == 0 {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required edge "VendorEmail.vendor"`)}
	}
	return nil
}

func (_c *VendorEmailCreate) sqlSave(ctx context.Context) (*VendorEmail, error) {
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

func (_c *VendorEmailCreate) createSpec() (*VendorEmail, *sqlgraph.CreateSpec) {
	var (
		_node = &VendorEmail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vendoremail.Table, sqlgraph.NewFieldSpec(vendoremail.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(vendoremail.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(vendoremail.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if nodes := _c.mutation.VendorIDs(); len(nodes) > 0 {
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
		_node.VendorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VendorEmail.Create().
//		SetVendorID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VendorEmailUpsert) {
//			SetVendorID(v+v).
//		}).
//		Exec(ctx)
func (_c *VendorEmailCreate) OnConflict(opts ...sql.ConflictOption) *VendorEmailUpsertOne {
	_c.conflict = opts
	return &VendorEmailUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VendorEmail.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VendorEmailCreate) OnConflictColumns(columns ...string) *VendorEmailUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VendorEmailUpsertOne{
		create: _c,
	}
}

type (
	// VendorEmailUpsertOne is the builder for "upsert"-ing
	//  one VendorEmail node.
	VendorEmailUpsertOne struct {
		create *VendorEmailCreate
	}

	// VendorEmailUpsert is the "OnConflict" setter.
	VendorEmailUpsert struct {
		*sql.UpdateSet
	}
)

// SetVendorID sets the "vendor_id" field.
func (u *VendorEmailUpsert) SetVendorID(v uuid.UUID) *VendorEmailUpsert {
	u.Set(vendoremail.FieldVendorID, v)
	return u
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *VendorEmailUpsert) UpdateVendorID() *VendorEmailUpsert {
	u.SetExcluded(vendoremail.FieldVendorID)
	return u
}

// SetEmail sets the "email" field.
func (u *VendorEmailUpsert) SetEmail(v string) *VendorEmailUpsert {
	u.Set(vendoremail.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *VendorEmailUpsert) UpdateEmail() *VendorEmailUpsert {
	u.SetExcluded(vendoremail.FieldEmail)
	return u
}

// SetIsPrimary sets the "is_primary" field.
func (u *VendorEmailUpsert) SetIsPrimary(v bool) *VendorEmailUpsert {
	u.Set(vendoremail.FieldIsPrimary, v)
	return u
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *VendorEmailUpsert) UpdateIsPrimary() *VendorEmailUpsert {
	u.SetExcluded(vendoremail.FieldIsPrimary)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.VendorEmail.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vendoremail.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VendorEmailUpsertOne) UpdateNewValues() *VendorEmailUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(vendoremail.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VendorEmail.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VendorEmailUpsertOne) Ignore() *VendorEmailUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VendorEmailUpsertOne) DoNothing() *VendorEmailUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VendorEmailCreate.OnConflict
// documentation for more info.
func (u *VendorEmailUpsertOne) Update(set func(*VendorEmailUpsert)) *VendorEmailUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VendorEmailUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendorID sets the "vendor_id" field.
func (u *VendorEmailUpsertOne) SetVendorID(v uuid.UUID) *VendorEmailUpsertOne {
	return u.Update(func(s *VendorEmailUpsert) {
		s.SetVendorID(v)
	})
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *VendorEmailUpsertOne) UpdateVendorID() *VendorEmailUpsertOne {
	return u.Update(func(s *VendorEmailUpsert) {
		s.UpdateVendorID()
	})
}

// SetEmail sets the "email" field.
func (u *VendorEmailUpsertOne) SetEmail(v string) *VendorEmailUpsertOne {
	return u.Update(func(s *VendorEmailUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *VendorEmailUpsertOne) UpdateEmail() *VendorEmailUpsertOne {
	return u.Update(func(s *VendorEmailUpsert) {
		s.UpdateEmail()
	})
}

// SetIsPrimary sets the "is_primary" field.
func (u *VendorEmailUpsertOne) SetIsPrimary(v bool) *VendorEmailUpsertOne {
	return u.Update(func(s *VendorEmailUpsert) {
		s.SetIsPrimary(v)
	})
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *VendorEmailUpsertOne) UpdateIsPrimary() *VendorEmailUpsertOne {
	return u.Update(func(s *VendorEmailUpsert) {
		s.UpdateIsPrimary()
	})
}

// Exec executes the query.
func (u *VendorEmailUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VendorEmailCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VendorEmailUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VendorEmailUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VendorEmailUpsertOne.ID is not supported by MySQL driver. Use VendorEmailUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VendorEmailUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VendorEmailCreateBulk is the builder for creating many VendorEmail entities in bulk.
type VendorEmailCreateBulk struct {
	config
	err      error
	builders []*VendorEmailCreate
	conflict []sql.ConflictOption
}

// Save creates the VendorEmail entities in the database.
func (_c *VendorEmailCreateBulk) Save(ctx context.Context) ([]*VendorEmail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VendorEmail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VendorEmailMutation)
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
func (_c *VendorEmailCreateBulk) SaveX(ctx context.Context) []*VendorEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorEmailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorEmailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VendorEmail.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VendorEmailUpsert) {
//			SetVendorID(v+v).
//		}).
//		Exec(ctx)
func (_c *VendorEmailCreateBulk) OnConflict(opts ...sql.ConflictOption) *VendorEmailUpsertBulk {
	_c.conflict = opts
	return &VendorEmailUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VendorEmail.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VendorEmailCreateBulk) OnConflictColumns(columns ...string) *VendorEmailUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VendorEmailUpsertBulk{
		create: _c,
	}
}

// VendorEmailUpsertBulk is the builder for "upsert"-ing
// a bulk of VendorEmail nodes.
type VendorEmailUpsertBulk struct {
	create *VendorEmailCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VendorEmail.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vendoremail.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VendorEmailUpsertBulk) UpdateNewValues() *VendorEmailUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(vendoremail.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VendorEmail.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VendorEmailUpsertBulk) Ignore() *VendorEmailUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VendorEmailUpsertBulk) DoNothing() *VendorEmailUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VendorEmailCreateBulk.OnConflict
// documentation for more info.
func (u *VendorEmailUpsertBulk) Update(set func(*VendorEmailUpsert)) *VendorEmailUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VendorEmailUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendorID sets the "vendor_id" field.
func (u *VendorEmailUpsertBulk) SetVendorID(v uuid.UUID) *VendorEmailUpsertBulk {
	return u.Update(func(s *VendorEmailUpsert) {
		s.SetVendorID(v)
	})
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *VendorEmailUpsertBulk) UpdateVendorID() *VendorEmailUpsertBulk {
	return u.Update(func(s *VendorEmailUpsert) {
		s.UpdateVendorID()
	})
}

// SetEmail sets the "email" field.
func (u *VendorEmailUpsertBulk) SetEmail(v string) *VendorEmailUpsertBulk {
	return u.Update(func(s *VendorEmailUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *VendorEmailUpsertBulk) UpdateEmail() *VendorEmailUpsertBulk {
	return u.Update(func(s *VendorEmailUpsert) {
		s.UpdateEmail()
	})
}

// SetIsPrimary sets the "is_primary" field.
func (u *VendorEmailUpsertBulk) SetIsPrimary(v bool) *VendorEmailUpsertBulk {
	return u.Update(func(s *VendorEmailUpsert) {
		s.SetIsPrimary(v)
	})
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *VendorEmailUpsertBulk) UpdateIsPrimary() *VendorEmailUpsertBulk {
	return u.Update(func(s *VendorEmailUpsert) {
		s.UpdateIsPrimary()
	})
}

// Exec executes the query.
func (u *VendorEmailUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VendorEmailCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VendorEmailCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VendorEmailUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
