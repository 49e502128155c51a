package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Question is one generated question owned by exactly one attempt.
// Questions are immutable after creation.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("attempt_id", uuid.UUID{}).
			Immutable(),
		field.Int("position").
			Min(0).
			Immutable().
			Comment("Display order within the attempt"),
		field.Text("text").
			NotEmpty().
			Immutable(),
		field.JSON("options", []string{}).
			Immutable(),
		field.String("correct_answer").
			NotEmpty().
			Immutable().
			Comment("Always one of options"),
		field.Enum("difficulty").
			Values("EASY", "MEDIUM", "HARD").
			Immutable(),
		field.String("concept_tag").
			NotEmpty().
			Immutable(),
		field.Text("explanation").
			Default("").
			Immutable(),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attempt", Attempt.Type).
			Ref("questions").
			Field("attempt_id").
			Unique().
			Required().
			Immutable(),
		edge.To("answers", Answer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id", "position").Unique(),
	}
}
