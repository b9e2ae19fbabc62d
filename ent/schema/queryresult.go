package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueryResult holds the schema definition for the QueryResult entity.
// One row per (user, query fingerprint): re-executing the same query
// with the same time range updates the existing row in place.
type QueryResult struct {
	ent.Schema
}

// Fields of the QueryResult.
func (QueryResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.Text("query"),
		field.String("query_hash").
			Comment("sha256 of query|earliest|latest"),
		field.String("earliest").
			Optional().
			Nillable(),
		field.String("latest").
			Optional().
			Nillable(),
		field.JSON("columns", []string{}).
			Optional(),
		field.JSON("rows", [][]interface{}{}).
			Optional().
			Comment("Row values in column order"),
		field.Int("row_count").
			Default(0),
		field.Float("execution_time").
			Optional().
			Nillable(),
		field.String("visualization_type").
			Optional().
			Nillable().
			Comment("table, chart, single-value or timechart"),
		field.JSON("visualization_config", map[string]interface{}{}).
			Optional(),
		field.Float("single_value").
			Optional().
			Nillable(),
		field.Float("gauge_value").
			Optional().
			Nillable(),
		field.JSON("chart_data", []map[string]interface{}{}).
			Optional(),
		field.Bool("is_time_series").
			Default(false),
		field.Bool("allow_chart_type_switch").
			Default(false),
		field.String("search_job_id").
			Optional().
			Nillable().
			Comment("Backend search job id, for debugging"),
		field.Text("error").
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

// Indexes of the QueryResult.
func (QueryResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "query_hash").
			Unique(),
		index.Fields("updated_at"),
	}
}
