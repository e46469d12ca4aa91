// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/selah-app/selah/ent/predicate"
	"github.com/selah-app/selah/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalActions sets the "total_actions" field.
func (_u *ProfileUpdate) SetTotalActions(v int) *ProfileUpdate {
	_u.mutation.ResetTotalActions()
	_u.mutation.SetTotalActions(v)
	return _u
}

// SetNillableTotalActions sets the "total_actions" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTotalActions(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTotalActions(*v)
	}
	return _u
}

// AddTotalActions adds value to the "total_actions" field.
func (_u *ProfileUpdate) AddTotalActions(v int) *ProfileUpdate {
	_u.mutation.AddTotalActions(v)
	return _u
}

// SetIsPaid sets the "is_paid" field.
func (_u *ProfileUpdate) SetIsPaid(v bool) *ProfileUpdate {
	_u.mutation.SetIsPaid(v)
	return _u
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableIsPaid(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetIsPaid(*v)
	}
	return _u
}

// SetDailyCredits sets the "daily_credits" field.
func (_u *ProfileUpdate) SetDailyCredits(v int) *ProfileUpdate {
	_u.mutation.ResetDailyCredits()
	_u.mutation.SetDailyCredits(v)
	return _u
}

// SetNillableDailyCredits sets the "daily_credits" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDailyCredits(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetDailyCredits(*v)
	}
	return _u
}

// AddDailyCredits adds value to the "daily_credits" field.
func (_u *ProfileUpdate) AddDailyCredits(v int) *ProfileUpdate {
	_u.mutation.AddDailyCredits(v)
	return _u
}

// SetCreditDate sets the "credit_date" field.
func (_u *ProfileUpdate) SetCreditDate(v string) *ProfileUpdate {
	_u.mutation.SetCreditDate(v)
	return _u
}

// SetNillableCreditDate sets the "credit_date" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCreditDate(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetCreditDate(*v)
	}
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.TotalActions(); ok {
		if err := profile.TotalActionsValidator(v); err != nil {
			return &ValidationError{Name: "total_actions", err: fmt.Errorf(`ent: validator failed for field "Profile.total_actions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyCredits(); ok {
		if err := profile.DailyCreditsValidator(v); err != nil {
			return &ValidationError{Name: "daily_credits", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_credits": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalActions(); ok {
		_spec.SetField(profile.FieldTotalActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalActions(); ok {
		_spec.AddField(profile.FieldTotalActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPaid(); ok {
		_spec.SetField(profile.FieldIsPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DailyCredits(); ok {
		_spec.SetField(profile.FieldDailyCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyCredits(); ok {
		_spec.AddField(profile.FieldDailyCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditDate(); ok {
		_spec.SetField(profile.FieldCreditDate, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetTotalActions sets the "total_actions" field.
func (_u *ProfileUpdateOne) SetTotalActions(v int) *ProfileUpdateOne {
	_u.mutation.ResetTotalActions()
	_u.mutation.SetTotalActions(v)
	return _u
}

// SetNillableTotalActions sets the "total_actions" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTotalActions(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTotalActions(*v)
	}
	return _u
}

// AddTotalActions adds value to the "total_actions" field.
func (_u *ProfileUpdateOne) AddTotalActions(v int) *ProfileUpdateOne {
	_u.mutation.AddTotalActions(v)
	return _u
}

// SetIsPaid sets the "is_paid" field.
func (_u *ProfileUpdateOne) SetIsPaid(v bool) *ProfileUpdateOne {
	_u.mutation.SetIsPaid(v)
	return _u
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableIsPaid(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetIsPaid(*v)
	}
	return _u
}

// SetDailyCredits sets the "daily_credits" field.
func (_u *ProfileUpdateOne) SetDailyCredits(v int) *ProfileUpdateOne {
	_u.mutation.ResetDailyCredits()
	_u.mutation.SetDailyCredits(v)
	return _u
}

// SetNillableDailyCredits sets the "daily_credits" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDailyCredits(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetDailyCredits(*v)
	}
	return _u
}

// AddDailyCredits adds value to the "daily_credits" field.
func (_u *ProfileUpdateOne) AddDailyCredits(v int) *ProfileUpdateOne {
	_u.mutation.AddDailyCredits(v)
	return _u
}

// SetCreditDate sets the "credit_date" field.
func (_u *ProfileUpdateOne) SetCreditDate(v string) *ProfileUpdateOne {
	_u.mutation.SetCreditDate(v)
	return _u
}

// SetNillableCreditDate sets the "credit_date" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCreditDate(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetCreditDate(*v)
	}
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.TotalActions(); ok {
		if err := profile.TotalActionsValidator(v); err != nil {
			return &ValidationError{Name: "total_actions", err: fmt.Errorf(`ent: validator failed for field "Profile.total_actions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyCredits(); ok {
		if err := profile.DailyCreditsValidator(v); err != nil {
			return &ValidationError{Name: "daily_credits", err: fmt.Errorf(`ent: validator failed for field "Profile.daily_credits": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.TotalActions(); ok {
		_spec.SetField(profile.FieldTotalActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalActions(); ok {
		_spec.AddField(profile.FieldTotalActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPaid(); ok {
		_spec.SetField(profile.FieldIsPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DailyCredits(); ok {
		_spec.SetField(profile.FieldDailyCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyCredits(); ok {
		_spec.AddField(profile.FieldDailyCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditDate(); ok {
		_spec.SetField(profile.FieldCreditDate, field.TypeString, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
