// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilleval/ent/answer"
	"github.com/abhisek/skilleval/ent/attempt"
	"github.com/abhisek/skilleval/ent/predicate"
	"github.com/abhisek/skilleval/ent/question"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttemptUpdate) SetUpdatedAt(v time.Time) *AttemptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *AttemptUpdate) SetCompleted(v bool) *AttemptUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCompleted(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetEasyScore sets the "easy_score" field.
func (_u *AttemptUpdate) SetEasyScore(v int) *AttemptUpdate {
	_u.mutation.ResetEasyScore()
	_u.mutation.SetEasyScore(v)
	return _u
}

// SetNillableEasyScore sets the "easy_score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableEasyScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetEasyScore(*v)
	}
	return _u
}

// AddEasyScore adds value to the "easy_score" field.
func (_u *AttemptUpdate) AddEasyScore(v int) *AttemptUpdate {
	_u.mutation.AddEasyScore(v)
	return _u
}

// SetMediumScore sets the "medium_score" field.
func (_u *AttemptUpdate) SetMediumScore(v int) *AttemptUpdate {
	_u.mutation.ResetMediumScore()
	_u.mutation.SetMediumScore(v)
	return _u
}

// SetNillableMediumScore sets the "medium_score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableMediumScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetMediumScore(*v)
	}
	return _u
}

// AddMediumScore adds value to the "medium_score" field.
func (_u *AttemptUpdate) AddMediumScore(v int) *AttemptUpdate {
	_u.mutation.AddMediumScore(v)
	return _u
}

// SetHardScore sets the "hard_score" field.
func (_u *AttemptUpdate) SetHardScore(v int) *AttemptUpdate {
	_u.mutation.ResetHardScore()
	_u.mutation.SetHardScore(v)
	return _u
}

// SetNillableHardScore sets the "hard_score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableHardScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetHardScore(*v)
	}
	return _u
}

// AddHardScore adds value to the "hard_score" field.
func (_u *AttemptUpdate) AddHardScore(v int) *AttemptUpdate {
	_u.mutation.AddHardScore(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *AttemptUpdate) SetTotalScore(v int) *AttemptUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTotalScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *AttemptUpdate) AddTotalScore(v int) *AttemptUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *AttemptUpdate) SetPercentage(v int) *AttemptUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillablePercentage(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *AttemptUpdate) AddPercentage(v int) *AttemptUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetBand sets the "band" field.
func (_u *AttemptUpdate) SetBand(v string) *AttemptUpdate {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableBand(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *AttemptUpdate) SetWeakAreas(v []string) *AttemptUpdate {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *AttemptUpdate) AppendWeakAreas(v []string) *AttemptUpdate {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *AttemptUpdate) ClearWeakAreas() *AttemptUpdate {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (_u *AttemptUpdate) SetTimeLimitMinutes(v int) *AttemptUpdate {
	_u.mutation.ResetTimeLimitMinutes()
	_u.mutation.SetTimeLimitMinutes(v)
	return _u
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTimeLimitMinutes(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTimeLimitMinutes(*v)
	}
	return _u
}

// AddTimeLimitMinutes adds value to the "time_limit_minutes" field.
func (_u *AttemptUpdate) AddTimeLimitMinutes(v int) *AttemptUpdate {
	_u.mutation.AddTimeLimitMinutes(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdate) SetCompletedAt(v time.Time) *AttemptUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCompletedAt(v *time.Time) *AttemptUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdate) ClearCompletedAt() *AttemptUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *AttemptUpdate) AddQuestionIDs(ids ...int) *AttemptUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *AttemptUpdate) AddQuestions(v ...*Question) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *AttemptUpdate) AddAnswerIDs(ids ...int) *AttemptUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *AttemptUpdate) AddAnswers(v ...*Answer) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *AttemptUpdate) ClearQuestions() *AttemptUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *AttemptUpdate) RemoveQuestionIDs(ids ...int) *AttemptUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *AttemptUpdate) RemoveQuestions(v ...*Question) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *AttemptUpdate) ClearAnswers() *AttemptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *AttemptUpdate) RemoveAnswerIDs(ids ...int) *AttemptUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *AttemptUpdate) RemoveAnswers(v ...*Answer) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttemptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attempt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.EasyScore(); ok {
		if err := attempt.EasyScoreValidator(v); err != nil {
			return &ValidationError{Name: "easy_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.easy_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MediumScore(); ok {
		if err := attempt.MediumScoreValidator(v); err != nil {
			return &ValidationError{Name: "medium_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.medium_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HardScore(); ok {
		if err := attempt.HardScoreValidator(v); err != nil {
			return &ValidationError{Name: "hard_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.hard_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalScore(); ok {
		if err := attempt.TotalScoreValidator(v); err != nil {
			return &ValidationError{Name: "total_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.total_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Percentage(); ok {
		if err := attempt.PercentageValidator(v); err != nil {
			return &ValidationError{Name: "percentage", err: fmt.Errorf(`ent: validator failed for field "Attempt.percentage": %w`, err)}
		}
	}
	if _u.mutation.ConceptCleared() && len(_u.mutation.ConceptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.concept"`)
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attempt.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(attempt.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EasyScore(); ok {
		_spec.SetField(attempt.FieldEasyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEasyScore(); ok {
		_spec.AddField(attempt.FieldEasyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumScore(); ok {
		_spec.SetField(attempt.FieldMediumScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumScore(); ok {
		_spec.AddField(attempt.FieldMediumScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HardScore(); ok {
		_spec.SetField(attempt.FieldHardScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHardScore(); ok {
		_spec.AddField(attempt.FieldHardScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(attempt.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(attempt.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(attempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(attempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(attempt.FieldBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(attempt.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(attempt.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(attempt.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMinutes(); ok {
		_spec.AddField(attempt.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttemptUpdateOne) SetUpdatedAt(v time.Time) *AttemptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *AttemptUpdateOne) SetCompleted(v bool) *AttemptUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCompleted(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetEasyScore sets the "easy_score" field.
func (_u *AttemptUpdateOne) SetEasyScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetEasyScore()
	_u.mutation.SetEasyScore(v)
	return _u
}

// SetNillableEasyScore sets the "easy_score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableEasyScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetEasyScore(*v)
	}
	return _u
}

// AddEasyScore adds value to the "easy_score" field.
func (_u *AttemptUpdateOne) AddEasyScore(v int) *AttemptUpdateOne {
	_u.mutation.AddEasyScore(v)
	return _u
}

// SetMediumScore sets the "medium_score" field.
func (_u *AttemptUpdateOne) SetMediumScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetMediumScore()
	_u.mutation.SetMediumScore(v)
	return _u
}

// SetNillableMediumScore sets the "medium_score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableMediumScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetMediumScore(*v)
	}
	return _u
}

// AddMediumScore adds value to the "medium_score" field.
func (_u *AttemptUpdateOne) AddMediumScore(v int) *AttemptUpdateOne {
	_u.mutation.AddMediumScore(v)
	return _u
}

// SetHardScore sets the "hard_score" field.
func (_u *AttemptUpdateOne) SetHardScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetHardScore()
	_u.mutation.SetHardScore(v)
	return _u
}

// SetNillableHardScore sets the "hard_score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableHardScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetHardScore(*v)
	}
	return _u
}

// AddHardScore adds value to the "hard_score" field.
func (_u *AttemptUpdateOne) AddHardScore(v int) *AttemptUpdateOne {
	_u.mutation.AddHardScore(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *AttemptUpdateOne) SetTotalScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTotalScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *AttemptUpdateOne) AddTotalScore(v int) *AttemptUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *AttemptUpdateOne) SetPercentage(v int) *AttemptUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillablePercentage(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *AttemptUpdateOne) AddPercentage(v int) *AttemptUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetBand sets the "band" field.
func (_u *AttemptUpdateOne) SetBand(v string) *AttemptUpdateOne {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableBand(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *AttemptUpdateOne) SetWeakAreas(v []string) *AttemptUpdateOne {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *AttemptUpdateOne) AppendWeakAreas(v []string) *AttemptUpdateOne {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *AttemptUpdateOne) ClearWeakAreas() *AttemptUpdateOne {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (_u *AttemptUpdateOne) SetTimeLimitMinutes(v int) *AttemptUpdateOne {
	_u.mutation.ResetTimeLimitMinutes()
	_u.mutation.SetTimeLimitMinutes(v)
	return _u
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTimeLimitMinutes(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTimeLimitMinutes(*v)
	}
	return _u
}

// AddTimeLimitMinutes adds value to the "time_limit_minutes" field.
func (_u *AttemptUpdateOne) AddTimeLimitMinutes(v int) *AttemptUpdateOne {
	_u.mutation.AddTimeLimitMinutes(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdateOne) SetCompletedAt(v time.Time) *AttemptUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCompletedAt(v *time.Time) *AttemptUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdateOne) ClearCompletedAt() *AttemptUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *AttemptUpdateOne) AddQuestionIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *AttemptUpdateOne) AddQuestions(v ...*Question) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *AttemptUpdateOne) AddAnswerIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *AttemptUpdateOne) AddAnswers(v ...*Answer) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *AttemptUpdateOne) ClearQuestions() *AttemptUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *AttemptUpdateOne) RemoveQuestionIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *AttemptUpdateOne) RemoveQuestions(v ...*Question) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *AttemptUpdateOne) ClearAnswers() *AttemptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *AttemptUpdateOne) RemoveAnswerIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *AttemptUpdateOne) RemoveAnswers(v ...*Answer) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttemptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attempt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.EasyScore(); ok {
		if err := attempt.EasyScoreValidator(v); err != nil {
			return &ValidationError{Name: "easy_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.easy_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MediumScore(); ok {
		if err := attempt.MediumScoreValidator(v); err != nil {
			return &ValidationError{Name: "medium_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.medium_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HardScore(); ok {
		if err := attempt.HardScoreValidator(v); err != nil {
			return &ValidationError{Name: "hard_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.hard_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalScore(); ok {
		if err := attempt.TotalScoreValidator(v); err != nil {
			return &ValidationError{Name: "total_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.total_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Percentage(); ok {
		if err := attempt.PercentageValidator(v); err != nil {
			return &ValidationError{Name: "percentage", err: fmt.Errorf(`ent: validator failed for field "Attempt.percentage": %w`, err)}
		}
	}
	if _u.mutation.ConceptCleared() && len(_u.mutation.ConceptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.concept"`)
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attempt.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(attempt.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EasyScore(); ok {
		_spec.SetField(attempt.FieldEasyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEasyScore(); ok {
		_spec.AddField(attempt.FieldEasyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumScore(); ok {
		_spec.SetField(attempt.FieldMediumScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumScore(); ok {
		_spec.AddField(attempt.FieldMediumScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HardScore(); ok {
		_spec.SetField(attempt.FieldHardScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHardScore(); ok {
		_spec.AddField(attempt.FieldHardScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(attempt.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(attempt.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(attempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(attempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(attempt.FieldBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(attempt.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(attempt.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(attempt.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMinutes(); ok {
		_spec.AddField(attempt.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
