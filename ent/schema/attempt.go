package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Attempt is one user's assessment instance for one concept.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Identity of the owning user"),
		field.Int("concept_id").
			Immutable(),
		field.Bool("completed").
			Default(false),
		field.Int("easy_score").
			Default(0).
			Min(0).Max(10),
		field.Int("medium_score").
			Default(0).
			Min(0).Max(10),
		field.Int("hard_score").
			Default(0).
			Min(0).Max(10),
		field.Int("total_score").
			Default(0).
			Min(0).Max(30),
		field.Int("percentage").
			Default(0).
			Min(0).Max(100),
		field.String("band").
			Default("").
			Comment("EXCELLENT, GOOD, AVERAGE or NEEDS_IMPROVEMENT once completed"),
		field.JSON("weak_areas", []string{}).
			Optional().
			Comment("Distinct concept tags of incorrectly answered questions"),
		field.Int("time_limit_minutes").
			Default(45),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("concept", Concept.Type).
			Ref("attempts").
			Field("concept_id").
			Unique().
			Required().
			Immutable(),
		edge.To("questions", Question.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("answers", Answer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		// At most one unfinished attempt per (user, concept).
		index.Fields("user_id", "concept_id").
			Unique().
			Annotations(entsql.IndexWhere("completed = false")),
		index.Fields("user_id", "completed"),
		index.Fields("completed", "completed_at"),
	}
}
