package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Answer records a user's submitted option for one question of an attempt.
// Difficulty and concept tag are copied from the question at write time.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("attempt_id", uuid.UUID{}).
			Immutable(),
		field.Int("question_id").
			Immutable(),
		field.Text("user_answer").
			Immutable().
			Comment("What the user submitted"),
		field.Bool("is_correct").
			Immutable(),
		field.Enum("difficulty").
			Values("EASY", "MEDIUM", "HARD").
			Immutable(),
		field.String("concept_tag").
			Immutable(),
		field.Int("time_spent").
			Optional().
			Nillable().
			Immutable().
			Comment("Seconds spent on the question, when reported"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attempt", Attempt.Type).
			Ref("answers").
			Field("attempt_id").
			Unique().
			Required().
			Immutable(),
		edge.From("question", Question.Type).
			Ref("answers").
			Field("question_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id", "question_id").Unique(),
		index.Fields("is_correct"),
	}
}
