package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatJob holds the schema definition for the ChatJob entity.
// Same shape as Job, but owned by a thread instead of a group: chat
// jobs never participate in the group chain and never contribute to
// assignment status.
type ChatJob struct {
	ent.Schema
}

// Fields of the ChatJob.
func (ChatJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_job_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("namespace_id").
			Immutable().
			Comment("Denormalized for queue indexing"),
		field.Enum("harness").
			Values("claude", "codex", "gemini").
			Default("claude"),
		field.Text("context").
			Comment("JSON-encoded thread snapshot (opaque to the engine)"),
		field.Text("prompt").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "running", "complete", "failed").
			Default("pending"),
		field.Text("result").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Int("tool_call_count").
			Default(0),
		field.Int("subagent_count").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Time("last_event_at").
			Optional().
			Nillable(),
		field.Bool("exit_forced").
			Default(false),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatJob.
func (ChatJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", ChatThread.Type).
			Ref("chat_jobs").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
		edge.From("namespace", Namespace.Type).
			Ref("chat_jobs").
			Field("namespace_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatJob.
func (ChatJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace_id"),
		index.Fields("status"),
		index.Fields("namespace_id", "status"),
		index.Fields("thread_id"),
		index.Fields("thread_id", "status"),
	}
}
