// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilleval/ent/answer"
	"github.com/abhisek/skilleval/ent/attempt"
	"github.com/abhisek/skilleval/ent/concept"
	"github.com/abhisek/skilleval/ent/question"
	"github.com/google/uuid"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AttemptCreate) SetUpdatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableUpdatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptCreate) SetUserID(v string) *AttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *AttemptCreate) SetConceptID(v int) *AttemptCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *AttemptCreate) SetCompleted(v bool) *AttemptCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCompleted(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetEasyScore sets the "easy_score" field.
func (_c *AttemptCreate) SetEasyScore(v int) *AttemptCreate {
	_c.mutation.SetEasyScore(v)
	return _c
}

// SetNillableEasyScore sets the "easy_score" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableEasyScore(v *int) *AttemptCreate {
	if v != nil {
		_c.SetEasyScore(*v)
	}
	return _c
}

// SetMediumScore sets the "medium_score" field.
func (_c *AttemptCreate) SetMediumScore(v int) *AttemptCreate {
	_c.mutation.SetMediumScore(v)
	return _c
}

// SetNillableMediumScore sets the "medium_score" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableMediumScore(v *int) *AttemptCreate {
	if v != nil {
		_c.SetMediumScore(*v)
	}
	return _c
}

// SetHardScore sets the "hard_score" field.
func (_c *AttemptCreate) SetHardScore(v int) *AttemptCreate {
	_c.mutation.SetHardScore(v)
	return _c
}

// SetNillableHardScore sets the "hard_score" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableHardScore(v *int) *AttemptCreate {
	if v != nil {
		_c.SetHardScore(*v)
	}
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *AttemptCreate) SetTotalScore(v int) *AttemptCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTotalScore(v *int) *AttemptCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *AttemptCreate) SetPercentage(v int) *AttemptCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *AttemptCreate) SetNillablePercentage(v *int) *AttemptCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetBand sets the "band" field.
func (_c *AttemptCreate) SetBand(v string) *AttemptCreate {
	_c.mutation.SetBand(v)
	return _c
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableBand(v *string) *AttemptCreate {
	if v != nil {
		_c.SetBand(*v)
	}
	return _c
}

// SetWeakAreas sets the "weak_areas" field.
func (_c *AttemptCreate) SetWeakAreas(v []string) *AttemptCreate {
	_c.mutation.SetWeakAreas(v)
	return _c
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (_c *AttemptCreate) SetTimeLimitMinutes(v int) *AttemptCreate {
	_c.mutation.SetTimeLimitMinutes(v)
	return _c
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTimeLimitMinutes(v *int) *AttemptCreate {
	if v != nil {
		_c.SetTimeLimitMinutes(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AttemptCreate) SetCompletedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCompletedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttemptCreate) SetID(v uuid.UUID) *AttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableID(v *uuid.UUID) *AttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetConcept sets the "concept" edge to the Concept entity.
func (_c *AttemptCreate) SetConcept(v *Concept) *AttemptCreate {
	return _c.SetConceptID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *AttemptCreate) AddQuestionIDs(ids ...int) *AttemptCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *AttemptCreate) AddQuestions(v ...*Question) *AttemptCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *AttemptCreate) AddAnswerIDs(ids ...int) *AttemptCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *AttemptCreate) AddAnswers(v ...*Answer) *AttemptCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := attempt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := attempt.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.EasyScore(); !ok {
		v := attempt.DefaultEasyScore
		_c.mutation.SetEasyScore(v)
	}
	if _, ok := _c.mutation.MediumScore(); !ok {
		v := attempt.DefaultMediumScore
		_c.mutation.SetMediumScore(v)
	}
	if _, ok := _c.mutation.HardScore(); !ok {
		v := attempt.DefaultHardScore
		_c.mutation.SetHardScore(v)
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		v := attempt.DefaultTotalScore
		_c.mutation.SetTotalScore(v)
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		v := attempt.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
	if _, ok := _c.mutation.Band(); !ok {
		v := attempt.DefaultBand
		_c.mutation.SetBand(v)
	}
	if _, ok := _c.mutation.TimeLimitMinutes(); !ok {
		v := attempt.DefaultTimeLimitMinutes
		_c.mutation.SetTimeLimitMinutes(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Attempt.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Attempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "Attempt.concept_id"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Attempt.completed"`)}
	}
	if _, ok := _c.mutation.EasyScore(); !ok {
		return &ValidationError{Name: "easy_score", err: errors.New(`ent: missing required field "Attempt.easy_score"`)}
	}
	if v, ok := _c.mutation.EasyScore(); ok {
		if err := attempt.EasyScoreValidator(v); err != nil {
			return &ValidationError{Name: "easy_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.easy_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MediumScore(); !ok {
		return &ValidationError{Name: "medium_score", err: errors.New(`ent: missing required field "Attempt.medium_score"`)}
	}
	if v, ok := _c.mutation.MediumScore(); ok {
		if err := attempt.MediumScoreValidator(v); err != nil {
			return &ValidationError{Name: "medium_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.medium_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HardScore(); !ok {
		return &ValidationError{Name: "hard_score", err: errors.New(`ent: missing required field "Attempt.hard_score"`)}
	}
	if v, ok := _c.mutation.HardScore(); ok {
		if err := attempt.HardScoreValidator(v); err != nil {
			return &ValidationError{Name: "hard_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.hard_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "Attempt.total_score"`)}
	}
	if v, ok := _c.mutation.TotalScore(); ok {
		if err := attempt.TotalScoreValidator(v); err != nil {
			return &ValidationError{Name: "total_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.total_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "Attempt.percentage"`)}
	}
	if v, ok := _c.mutation.Percentage(); ok {
		if err := attempt.PercentageValidator(v); err != nil {
			return &ValidationError{Name: "percentage", err: fmt.Errorf(`ent: validator failed for field "Attempt.percentage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Band(); !ok {
		return &ValidationError{Name: "band", err: errors.New(`ent: missing required field "Attempt.band"`)}
	}
	if _, ok := _c.mutation.TimeLimitMinutes(); !ok {
		return &ValidationError{Name: "time_limit_minutes", err: errors.New(`ent: missing required field "Attempt.time_limit_minutes"`)}
	}
	if len(_c.mutation.ConceptIDs()) == 0 {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required edge "Attempt.concept"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(attempt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(attempt.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.EasyScore(); ok {
		_spec.SetField(attempt.FieldEasyScore, field.TypeInt, value)
		_node.EasyScore = value
	}
	if value, ok := _c.mutation.MediumScore(); ok {
		_spec.SetField(attempt.FieldMediumScore, field.TypeInt, value)
		_node.MediumScore = value
	}
	if value, ok := _c.mutation.HardScore(); ok {
		_spec.SetField(attempt.FieldHardScore, field.TypeInt, value)
		_node.HardScore = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(attempt.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(attempt.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.Band(); ok {
		_spec.SetField(attempt.FieldBand, field.TypeString, value)
		_node.Band = value
	}
	if value, ok := _c.mutation.WeakAreas(); ok {
		_spec.SetField(attempt.FieldWeakAreas, field.TypeJSON, value)
		_node.WeakAreas = value
	}
	if value, ok := _c.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(attempt.FieldTimeLimitMinutes, field.TypeInt, value)
		_node.TimeLimitMinutes = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ConceptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.ConceptTable,
			Columns: []string{attempt.ConceptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConceptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.QuestionsTable,
			Columns: []string{attempt.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
