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
	"github.com/abhisek/skilleval/ent/question"
	"github.com/google/uuid"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AnswerCreate) SetAttemptID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerCreate) SetQuestionID(v int) *AnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *AnswerCreate) SetUserAnswer(v string) *AnswerCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AnswerCreate) SetIsCorrect(v bool) *AnswerCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AnswerCreate) SetDifficulty(v answer.Difficulty) *AnswerCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetConceptTag sets the "concept_tag" field.
func (_c *AnswerCreate) SetConceptTag(v string) *AnswerCreate {
	_c.mutation.SetConceptTag(v)
	return _c
}

// SetTimeSpent sets the "time_spent" field.
func (_c *AnswerCreate) SetTimeSpent(v int) *AnswerCreate {
	_c.mutation.SetTimeSpent(v)
	return _c
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableTimeSpent(v *int) *AnswerCreate {
	if v != nil {
		_c.SetTimeSpent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnswerCreate) SetCreatedAt(v time.Time) *AnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableCreatedAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_c *AnswerCreate) SetAttempt(v *Attempt) *AnswerCreate {
	return _c.SetAttemptID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *AnswerCreate) SetQuestion(v *Question) *AnswerCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := answer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "Answer.attempt_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Answer.question_id"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "Answer.user_answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "Answer.is_correct"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Answer.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := answer.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Answer.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptTag(); !ok {
		return &ValidationError{Name: "concept_tag", err: errors.New(`ent: missing required field "Answer.concept_tag"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Answer.created_at"`)}
	}
	if len(_c.mutation.AttemptIDs()) == 0 {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required edge "Answer.attempt"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "Answer.question"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
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

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(answer.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(answer.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(answer.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ConceptTag(); ok {
		_spec.SetField(answer.FieldConceptTag, field.TypeString, value)
		_node.ConceptTag = value
	}
	if value, ok := _c.mutation.TimeSpent(); ok {
		_spec.SetField(answer.FieldTimeSpent, field.TypeInt, value)
		_node.TimeSpent = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AttemptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.AttemptTable,
			Columns: []string{answer.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AttemptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
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
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
