package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// Jobs are the unit of asynchronous work: queued by the API, claimed by
// the worker pool, and driven through the status DAG
// queued → started → progress* → completed | failed.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable().
			Comment("UUID, assigned at creation"),
		field.Enum("type").
			Values("assistant_response", "chart_build").
			Immutable(),
		field.JSON("params", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Enum("status").
			Values("queued", "started", "progress", "completed", "failed").
			Default("queued"),
		field.Int("progress").
			Default(0).
			Comment("0-100, monotonically non-decreasing"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Set exactly once, on completion"),
		field.Text("error").
			Optional().
			Nillable().
			Comment("Set only when status is failed"),
		field.Int("conversation_id").
			Optional().
			Nillable(),
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
		edge.From("conversation", Conversation.Type).
			Ref("jobs").
			Field("conversation_id").
			Unique(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("conversation_id"),
	}
}
