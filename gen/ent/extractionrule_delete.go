// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoicerd/invoicerd/gen/ent/extractionrule"
	"github.com/invoicerd/invoicerd/gen/ent/predicate"
)

// ExtractionRuleDelete is the builder for deleting a ExtractionRule entity.
type ExtractionRuleDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionRuleMutation
}

// Where appends a list predicates to the ExtractionRuleDelete builder.
func (_d *ExtractionRuleDelete) Where(ps ...predicate.ExtractionRule) *ExtractionRuleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionRuleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractionrule.Table, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractionRuleDeleteOne is the builder for deleting a single ExtractionRule entity.
type ExtractionRuleDeleteOne struct {
	_d *ExtractionRuleDelete
}

// Where appends a list predicates to the ExtractionRuleDelete builder.
func (_d *ExtractionRuleDeleteOne) Where(ps ...predicate.ExtractionRule) *ExtractionRuleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractionrule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionRuleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
