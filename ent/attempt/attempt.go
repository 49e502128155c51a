// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldEasyScore holds the string denoting the easy_score field in the database.
	FieldEasyScore = "easy_score"
	// FieldMediumScore holds the string denoting the medium_score field in the database.
	FieldMediumScore = "medium_score"
	// FieldHardScore holds the string denoting the hard_score field in the database.
	FieldHardScore = "hard_score"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldPercentage holds the string denoting the percentage field in the database.
	FieldPercentage = "percentage"
	// FieldBand holds the string denoting the band field in the database.
	FieldBand = "band"
	// FieldWeakAreas holds the string denoting the weak_areas field in the database.
	FieldWeakAreas = "weak_areas"
	// FieldTimeLimitMinutes holds the string denoting the time_limit_minutes field in the database.
	FieldTimeLimitMinutes = "time_limit_minutes"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeConcept holds the string denoting the concept edge name in mutations.
	EdgeConcept = "concept"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
	// ConceptTable is the table that holds the concept relation/edge.
	ConceptTable = "attempts"
	// ConceptInverseTable is the table name for the Concept entity.
	// It exists in this package in order to avoid circular dependency with the "concept" package.
	ConceptInverseTable = "concepts"
	// ConceptColumn is the table column denoting the concept relation/edge.
	ConceptColumn = "concept_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "questions"
	// QuestionsInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionsInverseTable = "questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "attempt_id"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "answers"
	// AnswersInverseTable is the table name for the Answer entity.
	// It exists in this package in order to avoid circular dependency with the "answer" package.
	AnswersInverseTable = "answers"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "attempt_id"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldConceptID,
	FieldCompleted,
	FieldEasyScore,
	FieldMediumScore,
	FieldHardScore,
	FieldTotalScore,
	FieldPercentage,
	FieldBand,
	FieldWeakAreas,
	FieldTimeLimitMinutes,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultEasyScore holds the default value on creation for the "easy_score" field.
	DefaultEasyScore int
	// EasyScoreValidator is a validator for the "easy_score" field. It is called by the builders before save.
	EasyScoreValidator func(int) error
	// DefaultMediumScore holds the default value on creation for the "medium_score" field.
	DefaultMediumScore int
	// MediumScoreValidator is a validator for the "medium_score" field. It is called by the builders before save.
	MediumScoreValidator func(int) error
	// DefaultHardScore holds the default value on creation for the "hard_score" field.
	DefaultHardScore int
	// HardScoreValidator is a validator for the "hard_score" field. It is called by the builders before save.
	HardScoreValidator func(int) error
	// DefaultTotalScore holds the default value on creation for the "total_score" field.
	DefaultTotalScore int
	// TotalScoreValidator is a validator for the "total_score" field. It is called by the builders before save.
	TotalScoreValidator func(int) error
	// DefaultPercentage holds the default value on creation for the "percentage" field.
	DefaultPercentage int
	// PercentageValidator is a validator for the "percentage" field. It is called by the builders before save.
	PercentageValidator func(int) error
	// DefaultBand holds the default value on creation for the "band" field.
	DefaultBand string
	// DefaultTimeLimitMinutes holds the default value on creation for the "time_limit_minutes" field.
	DefaultTimeLimitMinutes int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByEasyScore orders the results by the easy_score field.
func ByEasyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasyScore, opts...).ToFunc()
}

// ByMediumScore orders the results by the medium_score field.
func ByMediumScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediumScore, opts...).ToFunc()
}

// ByHardScore orders the results by the hard_score field.
func ByHardScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHardScore, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByPercentage orders the results by the percentage field.
func ByPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentage, opts...).ToFunc()
}

// ByBand orders the results by the band field.
func ByBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBand, opts...).ToFunc()
}

// ByTimeLimitMinutes orders the results by the time_limit_minutes field.
func ByTimeLimitMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitMinutes, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByConceptField orders the results by concept field.
func ByConceptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConceptStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConceptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConceptInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConceptTable, ConceptColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
