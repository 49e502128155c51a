// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilleval/ent/attempt"
	"github.com/abhisek/skilleval/ent/concept"
	"github.com/google/uuid"
)

// Attempt is the model entity for the Attempt schema.
type Attempt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UTC wall-clock time of the last update
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Identity of the owning user
	UserID string `json:"user_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID int `json:"concept_id,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// EasyScore holds the value of the "easy_score" field.
	EasyScore int `json:"easy_score,omitempty"`
	// MediumScore holds the value of the "medium_score" field.
	MediumScore int `json:"medium_score,omitempty"`
	// HardScore holds the value of the "hard_score" field.
	HardScore int `json:"hard_score,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore int `json:"total_score,omitempty"`
	// Percentage holds the value of the "percentage" field.
	Percentage int `json:"percentage,omitempty"`
	// EXCELLENT, GOOD, AVERAGE or NEEDS_IMPROVEMENT once completed
	Band string `json:"band,omitempty"`
	// Distinct concept tags of incorrectly answered questions
	WeakAreas []string `json:"weak_areas,omitempty"`
	// TimeLimitMinutes holds the value of the "time_limit_minutes" field.
	TimeLimitMinutes int `json:"time_limit_minutes,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttemptQuery when eager-loading is set.
	Edges        AttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttemptEdges holds the relations/edges for other nodes in the graph.
type AttemptEdges struct {
	// Concept holds the value of the concept edge.
	Concept *Concept `json:"concept,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ConceptOrErr returns the Concept value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttemptEdges) ConceptOrErr() (*Concept, error) {
	if e.Concept != nil {
		return e.Concept, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: concept.Label}
	}
	return nil, &NotLoadedError{edge: "concept"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e AttemptEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e AttemptEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[2] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attempt.FieldWeakAreas:
			values[i] = new([]byte)
		case attempt.FieldCompleted:
			values[i] = new(sql.NullBool)
		case attempt.FieldConceptID, attempt.FieldEasyScore, attempt.FieldMediumScore, attempt.FieldHardScore, attempt.FieldTotalScore, attempt.FieldPercentage, attempt.FieldTimeLimitMinutes:
			values[i] = new(sql.NullInt64)
		case attempt.FieldUserID, attempt.FieldBand:
			values[i] = new(sql.NullString)
		case attempt.FieldCreatedAt, attempt.FieldUpdatedAt, attempt.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case attempt.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attempt fields.
func (_m *Attempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attempt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case attempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case attempt.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case attempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case attempt.FieldConceptID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = int(value.Int64)
			}
		case attempt.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case attempt.FieldEasyScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field easy_score", values[i])
			} else if value.Valid {
				_m.EasyScore = int(value.Int64)
			}
		case attempt.FieldMediumScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field medium_score", values[i])
			} else if value.Valid {
				_m.MediumScore = int(value.Int64)
			}
		case attempt.FieldHardScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hard_score", values[i])
			} else if value.Valid {
				_m.HardScore = int(value.Int64)
			}
		case attempt.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case attempt.FieldPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = int(value.Int64)
			}
		case attempt.FieldBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field band", values[i])
			} else if value.Valid {
				_m.Band = value.String
			}
		case attempt.FieldWeakAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakAreas); err != nil {
					return fmt.Errorf("unmarshal field weak_areas: %w", err)
				}
			}
		case attempt.FieldTimeLimitMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit_minutes", values[i])
			} else if value.Valid {
				_m.TimeLimitMinutes = int(value.Int64)
			}
		case attempt.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Attempt.
// This includes values selected through modifiers, order, etc.
func (_m *Attempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConcept queries the "concept" edge of the Attempt entity.
func (_m *Attempt) QueryConcept() *ConceptQuery {
	return NewAttemptClient(_m.config).QueryConcept(_m)
}

// QueryQuestions queries the "questions" edge of the Attempt entity.
func (_m *Attempt) QueryQuestions() *QuestionQuery {
	return NewAttemptClient(_m.config).QueryQuestions(_m)
}

// QueryAnswers queries the "answers" edge of the Attempt entity.
func (_m *Attempt) QueryAnswers() *AnswerQuery {
	return NewAttemptClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this Attempt.
// Note that you need to call Attempt.Unwrap() before calling this method if this Attempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attempt) Update() *AttemptUpdateOne {
	return NewAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attempt) Unwrap() *Attempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attempt) String() string {
	var builder strings.Builder
	builder.WriteString("Attempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptID))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("easy_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EasyScore))
	builder.WriteString(", ")
	builder.WriteString("medium_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediumScore))
	builder.WriteString(", ")
	builder.WriteString("hard_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.HardScore))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percentage))
	builder.WriteString(", ")
	builder.WriteString("band=")
	builder.WriteString(_m.Band)
	builder.WriteString(", ")
	builder.WriteString("weak_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakAreas))
	builder.WriteString(", ")
	builder.WriteString("time_limit_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimitMinutes))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Attempts is a parsable slice of Attempt.
type Attempts []*Attempt
