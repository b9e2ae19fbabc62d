// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"assistant_response", "chart_build"}},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "started", "progress", "completed", "failed"}, Default: "queued"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeInt, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_conversations_jobs",
				Columns:    []*schema.Column{JobsColumns[9]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[7]},
			},
			{
				Name:    "job_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[9]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeInt},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[4]},
			},
		},
	}
	// QueryResultsColumns holds the columns for the "query_results" table.
	QueryResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "query_hash", Type: field.TypeString},
		{Name: "earliest", Type: field.TypeString, Nullable: true},
		{Name: "latest", Type: field.TypeString, Nullable: true},
		{Name: "columns", Type: field.TypeJSON, Nullable: true},
		{Name: "rows", Type: field.TypeJSON, Nullable: true},
		{Name: "row_count", Type: field.TypeInt, Default: 0},
		{Name: "execution_time", Type: field.TypeFloat64, Nullable: true},
		{Name: "visualization_type", Type: field.TypeString, Nullable: true},
		{Name: "visualization_config", Type: field.TypeJSON, Nullable: true},
		{Name: "single_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "gauge_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "chart_data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_time_series", Type: field.TypeBool, Default: false},
		{Name: "allow_chart_type_switch", Type: field.TypeBool, Default: false},
		{Name: "search_job_id", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QueryResultsTable holds the schema information for the "query_results" table.
	QueryResultsTable = &schema.Table{
		Name:       "query_results",
		Columns:    QueryResultsColumns,
		PrimaryKey: []*schema.Column{QueryResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queryresult_user_id_query_hash",
				Unique:  true,
				Columns: []*schema.Column{QueryResultsColumns[1], QueryResultsColumns[3]},
			},
			{
				Name:    "queryresult_updated_at",
				Unique:  false,
				Columns: []*schema.Column{QueryResultsColumns[20]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		JobsTable,
		MessagesTable,
		QueryResultsTable,
	}
)

func init() {
	JobsTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
}
