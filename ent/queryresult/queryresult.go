// Code generated by ent, DO NOT EDIT.

package queryresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queryresult type in the database.
	Label = "query_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldQueryHash holds the string denoting the query_hash field in the database.
	FieldQueryHash = "query_hash"
	// FieldEarliest holds the string denoting the earliest field in the database.
	FieldEarliest = "earliest"
	// FieldLatest holds the string denoting the latest field in the database.
	FieldLatest = "latest"
	// FieldColumns holds the string denoting the columns field in the database.
	FieldColumns = "columns"
	// FieldRows holds the string denoting the rows field in the database.
	FieldRows = "rows"
	// FieldRowCount holds the string denoting the row_count field in the database.
	FieldRowCount = "row_count"
	// FieldExecutionTime holds the string denoting the execution_time field in the database.
	FieldExecutionTime = "execution_time"
	// FieldVisualizationType holds the string denoting the visualization_type field in the database.
	FieldVisualizationType = "visualization_type"
	// FieldVisualizationConfig holds the string denoting the visualization_config field in the database.
	FieldVisualizationConfig = "visualization_config"
	// FieldSingleValue holds the string denoting the single_value field in the database.
	FieldSingleValue = "single_value"
	// FieldGaugeValue holds the string denoting the gauge_value field in the database.
	FieldGaugeValue = "gauge_value"
	// FieldChartData holds the string denoting the chart_data field in the database.
	FieldChartData = "chart_data"
	// FieldIsTimeSeries holds the string denoting the is_time_series field in the database.
	FieldIsTimeSeries = "is_time_series"
	// FieldAllowChartTypeSwitch holds the string denoting the allow_chart_type_switch field in the database.
	FieldAllowChartTypeSwitch = "allow_chart_type_switch"
	// FieldSearchJobID holds the string denoting the search_job_id field in the database.
	FieldSearchJobID = "search_job_id"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the queryresult in the database.
	Table = "query_results"
)

// Columns holds all SQL columns for queryresult fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuery,
	FieldQueryHash,
	FieldEarliest,
	FieldLatest,
	FieldColumns,
	FieldRows,
	FieldRowCount,
	FieldExecutionTime,
	FieldVisualizationType,
	FieldVisualizationConfig,
	FieldSingleValue,
	FieldGaugeValue,
	FieldChartData,
	FieldIsTimeSeries,
	FieldAllowChartTypeSwitch,
	FieldSearchJobID,
	FieldError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRowCount holds the default value on creation for the "row_count" field.
	DefaultRowCount int
	// DefaultIsTimeSeries holds the default value on creation for the "is_time_series" field.
	DefaultIsTimeSeries bool
	// DefaultAllowChartTypeSwitch holds the default value on creation for the "allow_chart_type_switch" field.
	DefaultAllowChartTypeSwitch bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the QueryResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// ByQueryHash orders the results by the query_hash field.
func ByQueryHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryHash, opts...).ToFunc()
}

// ByEarliest orders the results by the earliest field.
func ByEarliest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarliest, opts...).ToFunc()
}

// ByLatest orders the results by the latest field.
func ByLatest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatest, opts...).ToFunc()
}

// ByRowCount orders the results by the row_count field.
func ByRowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowCount, opts...).ToFunc()
}

// ByExecutionTime orders the results by the execution_time field.
func ByExecutionTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTime, opts...).ToFunc()
}

// ByVisualizationType orders the results by the visualization_type field.
func ByVisualizationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisualizationType, opts...).ToFunc()
}

// BySingleValue orders the results by the single_value field.
func BySingleValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingleValue, opts...).ToFunc()
}

// ByGaugeValue orders the results by the gauge_value field.
func ByGaugeValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGaugeValue, opts...).ToFunc()
}

// ByIsTimeSeries orders the results by the is_time_series field.
func ByIsTimeSeries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTimeSeries, opts...).ToFunc()
}

// ByAllowChartTypeSwitch orders the results by the allow_chart_type_switch field.
func ByAllowChartTypeSwitch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowChartTypeSwitch, opts...).ToFunc()
}

// BySearchJobID orders the results by the search_job_id field.
func BySearchJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchJobID, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
