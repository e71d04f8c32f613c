package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment holds the schema definition for the Assignment entity.
// An assignment is a stateful, named goal carrying a singly-linked
// chain of job groups (head_group_id → next_group_id → ...).
type Assignment struct {
	ent.Schema
}

// Fields of the Assignment.
func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("assignment_id").
			Unique().
			Immutable(),
		field.String("namespace_id").
			Immutable(),
		field.Text("north_star").
			Comment("Free-form goal string"),
		field.Enum("status").
			Values("pending", "active", "blocked", "complete").
			Default("pending"),
		field.Bool("independent").
			Default(false).
			Comment("false ⇒ competes for the namespace's single sequential slot"),
		field.Int("priority").
			Default(10).
			Comment("Lower runs earlier; chat-triggered assignments use 0"),
		field.Text("artifacts").
			Optional().
			Nillable(),
		field.Text("decisions").
			Optional().
			Nillable(),
		field.String("blocked_reason").
			Optional().
			Nillable().
			Comment("Set iff status = blocked"),
		field.Enum("alignment_status").
			Values("aligned", "uncertain", "misaligned").
			Optional().
			Nillable().
			Comment("Guardian-mode annotation; no scheduling effect"),
		field.String("head_group_id").
			Optional().
			Nillable().
			Comment("Start of the group chain; null until the first group exists"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Assignment.
func (Assignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("namespace", Namespace.Type).
			Ref("assignments").
			Field("namespace_id").
			Unique().
			Required().
			Immutable(),
		edge.To("groups", JobGroup.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// Guardian-mode threads reference an assignment; deleting the
		// assignment clears the back-reference rather than the thread.
		edge.To("chat_threads", ChatThread.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Assignment.
func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace_id"),
		index.Fields("namespace_id", "status"),
		index.Fields("status"),
	}
}
