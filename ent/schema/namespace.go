package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Namespace holds the schema definition for the Namespace entity.
// A namespace is the tenant boundary: all scheduling decisions are
// made per namespace.
type Namespace struct {
	ent.Schema
}

// Fields of the Namespace.
func (Namespace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("namespace_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("description").
			Optional().
			Nillable(),

		// Denormalized assignment-status counters. Each assignment status
		// transition adjusts exactly two of these in the same transaction.
		// Drift is repaired by NamespaceService.BackfillCounts.
		field.Int("pending_count").
			Default(0),
		field.Int("active_count").
			Default(0),
		field.Int("blocked_count").
			Default(0),
		field.Int("complete_count").
			Default(0),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Namespace.
func (Namespace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("assignments", Assignment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_threads", ChatThread.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_jobs", ChatJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Namespace.
func (Namespace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").
			Unique(),
	}
}
