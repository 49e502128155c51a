// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/skilleval/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAttemptID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldUserAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldIsCorrect, v))
}

// ConceptTag applies equality check predicate on the "concept_tag" field. It's identical to ConceptTagEQ.
func ConceptTag(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldConceptTag, v))
}

// TimeSpent applies equality check predicate on the "time_spent" field. It's identical to TimeSpentEQ.
func TimeSpent(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSpent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldAttemptID, vs...))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldUserAnswer, v))
}

// UserAnswerContains applies the Contains predicate on the "user_answer" field.
func UserAnswerContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldUserAnswer, v))
}

// UserAnswerHasPrefix applies the HasPrefix predicate on the "user_answer" field.
func UserAnswerHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldUserAnswer, v))
}

// UserAnswerHasSuffix applies the HasSuffix predicate on the "user_answer" field.
func UserAnswerHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldUserAnswer, v))
}

// UserAnswerEqualFold applies the EqualFold predicate on the "user_answer" field.
func UserAnswerEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldUserAnswer, v))
}

// UserAnswerContainsFold applies the ContainsFold predicate on the "user_answer" field.
func UserAnswerContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldUserAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldIsCorrect, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v Difficulty) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v Difficulty) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...Difficulty) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...Difficulty) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldDifficulty, vs...))
}

// ConceptTagEQ applies the EQ predicate on the "concept_tag" field.
func ConceptTagEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldConceptTag, v))
}

// ConceptTagNEQ applies the NEQ predicate on the "concept_tag" field.
func ConceptTagNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldConceptTag, v))
}

// ConceptTagIn applies the In predicate on the "concept_tag" field.
func ConceptTagIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldConceptTag, vs...))
}

// ConceptTagNotIn applies the NotIn predicate on the "concept_tag" field.
func ConceptTagNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldConceptTag, vs...))
}

// ConceptTagGT applies the GT predicate on the "concept_tag" field.
func ConceptTagGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldConceptTag, v))
}

// ConceptTagGTE applies the GTE predicate on the "concept_tag" field.
func ConceptTagGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldConceptTag, v))
}

// ConceptTagLT applies the LT predicate on the "concept_tag" field.
func ConceptTagLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldConceptTag, v))
}

// ConceptTagLTE applies the LTE predicate on the "concept_tag" field.
func ConceptTagLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldConceptTag, v))
}

// ConceptTagContains applies the Contains predicate on the "concept_tag" field.
func ConceptTagContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldConceptTag, v))
}

// ConceptTagHasPrefix applies the HasPrefix predicate on the "concept_tag" field.
func ConceptTagHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldConceptTag, v))
}

// ConceptTagHasSuffix applies the HasSuffix predicate on the "concept_tag" field.
func ConceptTagHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldConceptTag, v))
}

// ConceptTagEqualFold applies the EqualFold predicate on the "concept_tag" field.
func ConceptTagEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldConceptTag, v))
}

// ConceptTagContainsFold applies the ContainsFold predicate on the "concept_tag" field.
func ConceptTagContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldConceptTag, v))
}

// TimeSpentEQ applies the EQ predicate on the "time_spent" field.
func TimeSpentEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSpent, v))
}

// TimeSpentNEQ applies the NEQ predicate on the "time_spent" field.
func TimeSpentNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldTimeSpent, v))
}

// TimeSpentIn applies the In predicate on the "time_spent" field.
func TimeSpentIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldTimeSpent, vs...))
}

// TimeSpentNotIn applies the NotIn predicate on the "time_spent" field.
func TimeSpentNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldTimeSpent, vs...))
}

// TimeSpentGT applies the GT predicate on the "time_spent" field.
func TimeSpentGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldTimeSpent, v))
}

// TimeSpentGTE applies the GTE predicate on the "time_spent" field.
func TimeSpentGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldTimeSpent, v))
}

// TimeSpentLT applies the LT predicate on the "time_spent" field.
func TimeSpentLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldTimeSpent, v))
}

// TimeSpentLTE applies the LTE predicate on the "time_spent" field.
func TimeSpentLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldTimeSpent, v))
}

// TimeSpentIsNil applies the IsNil predicate on the "time_spent" field.
func TimeSpentIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldTimeSpent))
}

// TimeSpentNotNil applies the NotNil predicate on the "time_spent" field.
func TimeSpentNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldTimeSpent))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAttempt applies the HasEdge predicate on the "attempt" edge.
func HasAttempt() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AttemptTable, AttemptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptWith applies the HasEdge predicate on the "attempt" edge with a given conditions (other predicates).
func HasAttemptWith(preds ...predicate.Attempt) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newAttemptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
