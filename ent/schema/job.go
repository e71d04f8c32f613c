package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: a single harness
// invocation dispatched to the out-of-process runner.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.String("job_type").
			Comment("e.g. 'pm', 'review', 'implement', 'uat'"),
		field.Enum("harness").
			Values("claude", "codex", "gemini"),
		field.Text("context").
			Optional().
			Nillable().
			Comment("Opaque string passed through to the runner"),
		field.Text("prompt").
			Optional().
			Nillable().
			Comment("Exact prompt the runner sent, recorded on start"),
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

		// Runner-reported metrics; last write wins per field.
		field.Int("tool_call_count").
			Default(0),
		field.Int("subagent_count").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Time("last_event_at").
			Optional().
			Nillable().
			Comment("Staleness signal for hung runs"),
		field.Bool("exit_forced").
			Default(false).
			Comment("Set when a terminal state was forced rather than reported"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", JobGroup.Type).
			Ref("jobs").
			Field("group_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id"),
		index.Fields("group_id", "status"),
		index.Fields("status"),
	}
}
