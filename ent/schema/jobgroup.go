package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobGroup holds the schema definition for the JobGroup entity.
// A group is the unit of parallelism: all member jobs are logically
// simultaneous, and group status is derived from member-job statuses.
type JobGroup struct {
	ent.Schema
}

// Fields of the JobGroup.
func (JobGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("assignment_id").
			Immutable(),
		field.String("next_group_id").
			Optional().
			Nillable().
			Comment("Forward pointer in the per-assignment chain; null = tail"),
		field.Enum("status").
			Values("pending", "running", "complete", "failed").
			Default("pending"),
		field.Text("aggregated_result").
			Optional().
			Nillable().
			Comment("Joined member results, populated at terminal status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the JobGroup.
func (JobGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assignment", Assignment.Type).
			Ref("groups").
			Field("assignment_id").
			Unique().
			Required().
			Immutable(),
		edge.To("jobs", Job.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the JobGroup.
func (JobGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assignment_id"),
		index.Fields("assignment_id", "status"),
		index.Fields("status"),
	}
}
