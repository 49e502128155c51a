// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"EASY", "MEDIUM", "HARD"}},
		{Name: "concept_tag", Type: field.TypeString},
		{Name: "time_spent", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeUUID},
		{Name: "question_id", Type: field.TypeInt},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_attempts_answers",
				Columns:    []*schema.Column{AnswersColumns[7]},
				RefColumns: []*schema.Column{AttemptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "answers_questions_answers",
				Columns:    []*schema.Column{AnswersColumns[8]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_attempt_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[7], AnswersColumns[8]},
			},
			{
				Name:    "answer_is_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[2]},
			},
		},
	}
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "easy_score", Type: field.TypeInt, Default: 0},
		{Name: "medium_score", Type: field.TypeInt, Default: 0},
		{Name: "hard_score", Type: field.TypeInt, Default: 0},
		{Name: "total_score", Type: field.TypeInt, Default: 0},
		{Name: "percentage", Type: field.TypeInt, Default: 0},
		{Name: "band", Type: field.TypeString, Default: ""},
		{Name: "weak_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "time_limit_minutes", Type: field.TypeInt, Default: 45},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "concept_id", Type: field.TypeInt},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_concepts_attempts",
				Columns:    []*schema.Column{AttemptsColumns[14]},
				RefColumns: []*schema.Column{ConceptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_user_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{AttemptsColumns[3], AttemptsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "completed = false",
				},
			},
			{
				Name:    "attempt_user_id_completed",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3], AttemptsColumns[4]},
			},
			{
				Name:    "attempt_completed_completed_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[4], AttemptsColumns[13]},
			},
		},
	}
	// ConceptsColumns holds the columns for the "concepts" table.
	ConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ConceptsTable holds the schema information for the "concepts" table.
	ConceptsTable = &schema.Table{
		Name:       "concepts",
		Columns:    ConceptsColumns,
		PrimaryKey: []*schema.Column{ConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concept_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"EASY", "MEDIUM", "HARD"}},
		{Name: "concept_tag", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "attempt_id", Type: field.TypeUUID},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_attempts_questions",
				Columns:    []*schema.Column{QuestionsColumns[8]},
				RefColumns: []*schema.Column{AttemptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_attempt_id_position",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[8], QuestionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		AttemptsTable,
		ConceptsTable,
		LlmRequestEventsTable,
		QuestionsTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = AttemptsTable
	AnswersTable.ForeignKeys[1].RefTable = QuestionsTable
	AttemptsTable.ForeignKeys[0].RefTable = ConceptsTable
	QuestionsTable.ForeignKeys[0].RefTable = AttemptsTable
}
