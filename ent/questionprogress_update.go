// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/selah-app/selah/ent/predicate"
	"github.com/selah-app/selah/ent/questionprogress"
)

// QuestionProgressUpdate is the builder for updating QuestionProgress entities.
type QuestionProgressUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionProgressMutation
}

// Where appends a list predicates to the QuestionProgressUpdate builder.
func (_u *QuestionProgressUpdate) Where(ps ...predicate.QuestionProgress) *QuestionProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionProgressUpdate) SetTopic(v string) *QuestionProgressUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionProgressUpdate) SetNillableTopic(v *string) *QuestionProgressUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuestionProgressUpdate) SetCorrect(v bool) *QuestionProgressUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuestionProgressUpdate) SetNillableCorrect(v *bool) *QuestionProgressUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionProgressUpdate) SetUpdatedAt(v time.Time) *QuestionProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuestionProgressMutation object of the builder.
func (_u *QuestionProgressUpdate) Mutation() *QuestionProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionProgressUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := questionprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionprogress.Table, questionprogress.Columns, sqlgraph.NewFieldSpec(questionprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questionprogress.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(questionprogress.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(questionprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionProgressUpdateOne is the builder for updating a single QuestionProgress entity.
type QuestionProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionProgressMutation
}

// SetTopic sets the "topic" field.
func (_u *QuestionProgressUpdateOne) SetTopic(v string) *QuestionProgressUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionProgressUpdateOne) SetNillableTopic(v *string) *QuestionProgressUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuestionProgressUpdateOne) SetCorrect(v bool) *QuestionProgressUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuestionProgressUpdateOne) SetNillableCorrect(v *bool) *QuestionProgressUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionProgressUpdateOne) SetUpdatedAt(v time.Time) *QuestionProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuestionProgressMutation object of the builder.
func (_u *QuestionProgressUpdateOne) Mutation() *QuestionProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionProgressUpdate builder.
func (_u *QuestionProgressUpdateOne) Where(ps ...predicate.QuestionProgress) *QuestionProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionProgressUpdateOne) Select(field string, fields ...string) *QuestionProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionProgress entity.
func (_u *QuestionProgressUpdateOne) Save(ctx context.Context) (*QuestionProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionProgressUpdateOne) SaveX(ctx context.Context) *QuestionProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := questionprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionProgressUpdateOne) sqlSave(ctx context.Context) (_node *QuestionProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionprogress.Table, questionprogress.Columns, sqlgraph.NewFieldSpec(questionprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionprogress.FieldID)
		for _, f := range fields {
			if !questionprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionprogress.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questionprogress.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(questionprogress.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(questionprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QuestionProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
