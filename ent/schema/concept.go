package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Concept is an assessable subject. Concepts are never deleted; they are
// retired by clearing the active flag.
type Concept struct {
	ent.Schema
}

func (Concept) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Stable lowercase identifier, e.g. python"),
		field.Text("description").
			Default("").
			Comment("Human description used in prompts and listings"),
		field.Bool("active").
			Default(true).
			Comment("Inactive concepts cannot be started"),
	}
}

func (Concept) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", Attempt.Type),
	}
}
