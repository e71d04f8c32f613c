package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatThread holds the schema definition for the ChatThread entity.
// Threads feed chat jobs — a conversational path that shares the runner
// worker pool but never touches the assignment chain.
type ChatThread struct {
	ent.Schema
}

// Fields of the ChatThread.
func (ChatThread) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("thread_id").
			Unique().
			Immutable(),
		field.String("namespace_id").
			Immutable(),
		field.String("title"),
		field.Enum("mode").
			Values("jam", "cook", "guardian").
			Default("jam"),
		field.Enum("last_prompt_mode").
			Values("jam", "cook").
			Optional().
			Nillable().
			Comment("Last non-guardian mode sent to the harness; the runner uses it to decide on differential prompts"),
		field.String("assignment_id").
			Optional().
			Nillable().
			Comment("Guardian mode links a thread to an assignment"),
		field.String("claude_session_id").
			Optional().
			Nillable().
			Comment("Opaque resumable-session token owned by the harness"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatThread.
func (ChatThread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("namespace", Namespace.Type).
			Ref("chat_threads").
			Field("namespace_id").
			Unique().
			Required().
			Immutable(),
		edge.From("assignment", Assignment.Type).
			Ref("chat_threads").
			Field("assignment_id").
			Unique(),
		edge.To("messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_jobs", ChatJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChatThread.
func (ChatThread) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace_id"),
		index.Fields("namespace_id", "updated_at"),
		index.Fields("assignment_id"),
	}
}
