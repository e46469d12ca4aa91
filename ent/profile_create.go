// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/selah-app/selah/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProfileCreate) SetUserID(v string) *ProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTotalActions sets the "total_actions" field.
func (_c *ProfileCreate) SetTotalActions(v int) *ProfileCreate {
	_c.mutation.SetTotalActions(v)
	return _c
}

// SetNillableTotalActions sets the "total_actions" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableTotalActions(v *int) *ProfileCreate {
	if v != nil {
		_c.SetTotalActions(*v)
	}
	return _c
}

// SetIsPaid sets the "is_paid" field.
func (_c *ProfileCreate) SetIsPaid(v bool) *ProfileCreate {
	_c.mutation.SetIsPaid(v)
	return _c
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableIsPaid(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetIsPaid(*v)
	}
	return _c
}

// SetDailyCredits sets the "daily_credits" field.
func (_c *ProfileCreate) SetDailyCredits(v int) *ProfileCreate {
	_c.mutation.SetDailyCredits(v)
	return _c
}

// SetNillableDailyCredits sets the "daily_credits" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDailyCredits(v *int) *ProfileCreate {
	if v != nil {
		_c.SetDailyCredits(*v)
	}
	return _c
}

// SetCreditDate sets the "credit_date" field.
func (_c *ProfileCreate) SetCreditDate(v string) *ProfileCreate {
	_c.mutation.SetCreditDate(v)
	return _c
}

// SetNillableCreditDate sets the "credit_date" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCreditDate(v *string) *ProfileCreate {
	if v != nil {
		_c.SetCreditDate(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.TotalActions(); !ok {
		v := profile.DefaultTotalActions
		_c.mutation.SetTotalActions(v)
	}
	if _, ok := _c.mutation.IsPaid(); !ok {
		v := profile.DefaultIsPaid
		_c.mutation.SetIsPaid(v)
	}
	if _, ok := _c.mutation.DailyCredits(); !ok {
		v := profile.DefaultDailyCredits
		_c.mutation.SetDailyCredits(v)
	}
	if _, ok := _c.mutation.CreditDate(); !ok {
		v := profile.DefaultCreditDate
		_c.mutation.SetCreditDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Profile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := profile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Profile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalActions(); !ok {
		return &ValidationError{Name: "total_actions", err: errors.New(`ent: missing required field "Profile.total_actions"`)}
	}
	if v, ok := _c.mutation.TotalActions(); ok {
		if err := profile.TotalActionsValidator(v); err != nil {
			return &ValidationError{Name: "total_actions", err: fmt.Errorf(`ent: validator failed for field "Profile.total_actions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPaid(); !ok {
		return &ValidationError{Name: "is_paid", err: errors.New(`ent: missing required field "Profile.is_paid"`)}
	}
	if _, ok := _c.mutation.DailyCredits(); !ok {
		return &ValidationError{Name: "daily_credits", err: errors.New(`ent: missing required field "Profile.daily_credits"`)}
	}
	if v, ok := _c.mutation.DailyCredits(); ok {
		if err := profile.DailyCreditsValidator(v); err != nil {
			return &ValidationError{Name: "daily_credits", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_credits": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreditDate(); !ok {
		return &ValidationError{Name: "credit_date", err: errors.New(`ent: missing required field "Profile.credit_date"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TotalActions(); ok {
		_spec.SetField(profile.FieldTotalActions, field.TypeInt, value)
		_node.TotalActions = value
	}
	if value, ok := _c.mutation.IsPaid(); ok {
		_spec.SetField(profile.FieldIsPaid, field.TypeBool, value)
		_node.IsPaid = value
	}
	if value, ok := _c.mutation.DailyCredits(); ok {
		_spec.SetField(profile.FieldDailyCredits, field.TypeInt, value)
		_node.DailyCredits = value
	}
	if value, ok := _c.mutation.CreditDate(); ok {
		_spec.SetField(profile.FieldCreditDate, field.TypeString, value)
		_node.CreditDate = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
