// Code generated by ent, DO NOT EDIT.

package queryresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/splunk-genie/genie/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldUserID, v))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldQuery, v))
}

// QueryHash applies equality check predicate on the "query_hash" field. It's identical to QueryHashEQ.
func QueryHash(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldQueryHash, v))
}

// Earliest applies equality check predicate on the "earliest" field. It's identical to EarliestEQ.
func Earliest(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldEarliest, v))
}

// Latest applies equality check predicate on the "latest" field. It's identical to LatestEQ.
func Latest(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldLatest, v))
}

// RowCount applies equality check predicate on the "row_count" field. It's identical to RowCountEQ.
func RowCount(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldRowCount, v))
}

// ExecutionTime applies equality check predicate on the "execution_time" field. It's identical to ExecutionTimeEQ.
func ExecutionTime(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldExecutionTime, v))
}

// VisualizationType applies equality check predicate on the "visualization_type" field. It's identical to VisualizationTypeEQ.
func VisualizationType(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldVisualizationType, v))
}

// SingleValue applies equality check predicate on the "single_value" field. It's identical to SingleValueEQ.
func SingleValue(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldSingleValue, v))
}

// GaugeValue applies equality check predicate on the "gauge_value" field. It's identical to GaugeValueEQ.
func GaugeValue(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldGaugeValue, v))
}

// IsTimeSeries applies equality check predicate on the "is_time_series" field. It's identical to IsTimeSeriesEQ.
func IsTimeSeries(v bool) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldIsTimeSeries, v))
}

// AllowChartTypeSwitch applies equality check predicate on the "allow_chart_type_switch" field. It's identical to AllowChartTypeSwitchEQ.
func AllowChartTypeSwitch(v bool) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldAllowChartTypeSwitch, v))
}

// SearchJobID applies equality check predicate on the "search_job_id" field. It's identical to SearchJobIDEQ.
func SearchJobID(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldSearchJobID, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldUserID, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldQuery, v))
}

// QueryHashEQ applies the EQ predicate on the "query_hash" field.
func QueryHashEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldQueryHash, v))
}

// QueryHashNEQ applies the NEQ predicate on the "query_hash" field.
func QueryHashNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldQueryHash, v))
}

// QueryHashIn applies the In predicate on the "query_hash" field.
func QueryHashIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldQueryHash, vs...))
}

// QueryHashNotIn applies the NotIn predicate on the "query_hash" field.
func QueryHashNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldQueryHash, vs...))
}

// QueryHashGT applies the GT predicate on the "query_hash" field.
func QueryHashGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldQueryHash, v))
}

// QueryHashGTE applies the GTE predicate on the "query_hash" field.
func QueryHashGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldQueryHash, v))
}

// QueryHashLT applies the LT predicate on the "query_hash" field.
func QueryHashLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldQueryHash, v))
}

// QueryHashLTE applies the LTE predicate on the "query_hash" field.
func QueryHashLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldQueryHash, v))
}

// QueryHashContains applies the Contains predicate on the "query_hash" field.
func QueryHashContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldQueryHash, v))
}

// QueryHashHasPrefix applies the HasPrefix predicate on the "query_hash" field.
func QueryHashHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldQueryHash, v))
}

// QueryHashHasSuffix applies the HasSuffix predicate on the "query_hash" field.
func QueryHashHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldQueryHash, v))
}

// QueryHashEqualFold applies the EqualFold predicate on the "query_hash" field.
func QueryHashEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldQueryHash, v))
}

// QueryHashContainsFold applies the ContainsFold predicate on the "query_hash" field.
func QueryHashContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldQueryHash, v))
}

// EarliestEQ applies the EQ predicate on the "earliest" field.
func EarliestEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldEarliest, v))
}

// EarliestNEQ applies the NEQ predicate on the "earliest" field.
func EarliestNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldEarliest, v))
}

// EarliestIn applies the In predicate on the "earliest" field.
func EarliestIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldEarliest, vs...))
}

// EarliestNotIn applies the NotIn predicate on the "earliest" field.
func EarliestNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldEarliest, vs...))
}

// EarliestGT applies the GT predicate on the "earliest" field.
func EarliestGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldEarliest, v))
}

// EarliestGTE applies the GTE predicate on the "earliest" field.
func EarliestGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldEarliest, v))
}

// EarliestLT applies the LT predicate on the "earliest" field.
func EarliestLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldEarliest, v))
}

// EarliestLTE applies the LTE predicate on the "earliest" field.
func EarliestLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldEarliest, v))
}

// EarliestContains applies the Contains predicate on the "earliest" field.
func EarliestContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldEarliest, v))
}

// EarliestHasPrefix applies the HasPrefix predicate on the "earliest" field.
func EarliestHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldEarliest, v))
}

// EarliestHasSuffix applies the HasSuffix predicate on the "earliest" field.
func EarliestHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldEarliest, v))
}

// EarliestIsNil applies the IsNil predicate on the "earliest" field.
func EarliestIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldEarliest))
}

// EarliestNotNil applies the NotNil predicate on the "earliest" field.
func EarliestNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldEarliest))
}

// EarliestEqualFold applies the EqualFold predicate on the "earliest" field.
func EarliestEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldEarliest, v))
}

// EarliestContainsFold applies the ContainsFold predicate on the "earliest" field.
func EarliestContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldEarliest, v))
}

// LatestEQ applies the EQ predicate on the "latest" field.
func LatestEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldLatest, v))
}

// LatestNEQ applies the NEQ predicate on the "latest" field.
func LatestNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldLatest, v))
}

// LatestIn applies the In predicate on the "latest" field.
func LatestIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldLatest, vs...))
}

// LatestNotIn applies the NotIn predicate on the "latest" field.
func LatestNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldLatest, vs...))
}

// LatestGT applies the GT predicate on the "latest" field.
func LatestGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldLatest, v))
}

// LatestGTE applies the GTE predicate on the "latest" field.
func LatestGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldLatest, v))
}

// LatestLT applies the LT predicate on the "latest" field.
func LatestLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldLatest, v))
}

// LatestLTE applies the LTE predicate on the "latest" field.
func LatestLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldLatest, v))
}

// LatestContains applies the Contains predicate on the "latest" field.
func LatestContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldLatest, v))
}

// LatestHasPrefix applies the HasPrefix predicate on the "latest" field.
func LatestHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldLatest, v))
}

// LatestHasSuffix applies the HasSuffix predicate on the "latest" field.
func LatestHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldLatest, v))
}

// LatestIsNil applies the IsNil predicate on the "latest" field.
func LatestIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldLatest))
}

// LatestNotNil applies the NotNil predicate on the "latest" field.
func LatestNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldLatest))
}

// LatestEqualFold applies the EqualFold predicate on the "latest" field.
func LatestEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldLatest, v))
}

// LatestContainsFold applies the ContainsFold predicate on the "latest" field.
func LatestContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldLatest, v))
}

// ColumnsIsNil applies the IsNil predicate on the "columns" field.
func ColumnsIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldColumns))
}

// ColumnsNotNil applies the NotNil predicate on the "columns" field.
func ColumnsNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldColumns))
}

// RowsIsNil applies the IsNil predicate on the "rows" field.
func RowsIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldRows))
}

// RowsNotNil applies the NotNil predicate on the "rows" field.
func RowsNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldRows))
}

// RowCountEQ applies the EQ predicate on the "row_count" field.
func RowCountEQ(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldRowCount, v))
}

// RowCountNEQ applies the NEQ predicate on the "row_count" field.
func RowCountNEQ(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldRowCount, v))
}

// RowCountIn applies the In predicate on the "row_count" field.
func RowCountIn(vs ...int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldRowCount, vs...))
}

// RowCountNotIn applies the NotIn predicate on the "row_count" field.
func RowCountNotIn(vs ...int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldRowCount, vs...))
}

// RowCountGT applies the GT predicate on the "row_count" field.
func RowCountGT(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldRowCount, v))
}

// RowCountGTE applies the GTE predicate on the "row_count" field.
func RowCountGTE(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldRowCount, v))
}

// RowCountLT applies the LT predicate on the "row_count" field.
func RowCountLT(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldRowCount, v))
}

// RowCountLTE applies the LTE predicate on the "row_count" field.
func RowCountLTE(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldRowCount, v))
}

// ExecutionTimeEQ applies the EQ predicate on the "execution_time" field.
func ExecutionTimeEQ(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldExecutionTime, v))
}

// ExecutionTimeNEQ applies the NEQ predicate on the "execution_time" field.
func ExecutionTimeNEQ(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldExecutionTime, v))
}

// ExecutionTimeIn applies the In predicate on the "execution_time" field.
func ExecutionTimeIn(vs ...float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldExecutionTime, vs...))
}

// ExecutionTimeNotIn applies the NotIn predicate on the "execution_time" field.
func ExecutionTimeNotIn(vs ...float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldExecutionTime, vs...))
}

// ExecutionTimeGT applies the GT predicate on the "execution_time" field.
func ExecutionTimeGT(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldExecutionTime, v))
}

// ExecutionTimeGTE applies the GTE predicate on the "execution_time" field.
func ExecutionTimeGTE(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldExecutionTime, v))
}

// ExecutionTimeLT applies the LT predicate on the "execution_time" field.
func ExecutionTimeLT(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldExecutionTime, v))
}

// ExecutionTimeLTE applies the LTE predicate on the "execution_time" field.
func ExecutionTimeLTE(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldExecutionTime, v))
}

// ExecutionTimeIsNil applies the IsNil predicate on the "execution_time" field.
func ExecutionTimeIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldExecutionTime))
}

// ExecutionTimeNotNil applies the NotNil predicate on the "execution_time" field.
func ExecutionTimeNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldExecutionTime))
}

// VisualizationTypeEQ applies the EQ predicate on the "visualization_type" field.
func VisualizationTypeEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldVisualizationType, v))
}

// VisualizationTypeNEQ applies the NEQ predicate on the "visualization_type" field.
func VisualizationTypeNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldVisualizationType, v))
}

// VisualizationTypeIn applies the In predicate on the "visualization_type" field.
func VisualizationTypeIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldVisualizationType, vs...))
}

// VisualizationTypeNotIn applies the NotIn predicate on the "visualization_type" field.
func VisualizationTypeNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldVisualizationType, vs...))
}

// VisualizationTypeGT applies the GT predicate on the "visualization_type" field.
func VisualizationTypeGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldVisualizationType, v))
}

// VisualizationTypeGTE applies the GTE predicate on the "visualization_type" field.
func VisualizationTypeGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldVisualizationType, v))
}

// VisualizationTypeLT applies the LT predicate on the "visualization_type" field.
func VisualizationTypeLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldVisualizationType, v))
}

// VisualizationTypeLTE applies the LTE predicate on the "visualization_type" field.
func VisualizationTypeLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldVisualizationType, v))
}

// VisualizationTypeContains applies the Contains predicate on the "visualization_type" field.
func VisualizationTypeContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldVisualizationType, v))
}

// VisualizationTypeHasPrefix applies the HasPrefix predicate on the "visualization_type" field.
func VisualizationTypeHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldVisualizationType, v))
}

// VisualizationTypeHasSuffix applies the HasSuffix predicate on the "visualization_type" field.
func VisualizationTypeHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldVisualizationType, v))
}

// VisualizationTypeIsNil applies the IsNil predicate on the "visualization_type" field.
func VisualizationTypeIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldVisualizationType))
}

// VisualizationTypeNotNil applies the NotNil predicate on the "visualization_type" field.
func VisualizationTypeNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldVisualizationType))
}

// VisualizationTypeEqualFold applies the EqualFold predicate on the "visualization_type" field.
func VisualizationTypeEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldVisualizationType, v))
}

// VisualizationTypeContainsFold applies the ContainsFold predicate on the "visualization_type" field.
func VisualizationTypeContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldVisualizationType, v))
}

// VisualizationConfigIsNil applies the IsNil predicate on the "visualization_config" field.
func VisualizationConfigIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldVisualizationConfig))
}

// VisualizationConfigNotNil applies the NotNil predicate on the "visualization_config" field.
func VisualizationConfigNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldVisualizationConfig))
}

// SingleValueEQ applies the EQ predicate on the "single_value" field.
func SingleValueEQ(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldSingleValue, v))
}

// SingleValueNEQ applies the NEQ predicate on the "single_value" field.
func SingleValueNEQ(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldSingleValue, v))
}

// SingleValueIn applies the In predicate on the "single_value" field.
func SingleValueIn(vs ...float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldSingleValue, vs...))
}

// SingleValueNotIn applies the NotIn predicate on the "single_value" field.
func SingleValueNotIn(vs ...float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldSingleValue, vs...))
}

// SingleValueGT applies the GT predicate on the "single_value" field.
func SingleValueGT(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldSingleValue, v))
}

// SingleValueGTE applies the GTE predicate on the "single_value" field.
func SingleValueGTE(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldSingleValue, v))
}

// SingleValueLT applies the LT predicate on the "single_value" field.
func SingleValueLT(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldSingleValue, v))
}

// SingleValueLTE applies the LTE predicate on the "single_value" field.
func SingleValueLTE(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldSingleValue, v))
}

// SingleValueIsNil applies the IsNil predicate on the "single_value" field.
func SingleValueIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldSingleValue))
}

// SingleValueNotNil applies the NotNil predicate on the "single_value" field.
func SingleValueNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldSingleValue))
}

// GaugeValueEQ applies the EQ predicate on the "gauge_value" field.
func GaugeValueEQ(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldGaugeValue, v))
}

// GaugeValueNEQ applies the NEQ predicate on the "gauge_value" field.
func GaugeValueNEQ(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldGaugeValue, v))
}

// GaugeValueIn applies the In predicate on the "gauge_value" field.
func GaugeValueIn(vs ...float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldGaugeValue, vs...))
}

// GaugeValueNotIn applies the NotIn predicate on the "gauge_value" field.
func GaugeValueNotIn(vs ...float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldGaugeValue, vs...))
}

// GaugeValueGT applies the GT predicate on the "gauge_value" field.
func GaugeValueGT(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldGaugeValue, v))
}

// GaugeValueGTE applies the GTE predicate on the "gauge_value" field.
func GaugeValueGTE(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldGaugeValue, v))
}

// GaugeValueLT applies the LT predicate on the "gauge_value" field.
func GaugeValueLT(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldGaugeValue, v))
}

// GaugeValueLTE applies the LTE predicate on the "gauge_value" field.
func GaugeValueLTE(v float64) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldGaugeValue, v))
}

// GaugeValueIsNil applies the IsNil predicate on the "gauge_value" field.
func GaugeValueIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldGaugeValue))
}

// GaugeValueNotNil applies the NotNil predicate on the "gauge_value" field.
func GaugeValueNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldGaugeValue))
}

// ChartDataIsNil applies the IsNil predicate on the "chart_data" field.
func ChartDataIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldChartData))
}

// ChartDataNotNil applies the NotNil predicate on the "chart_data" field.
func ChartDataNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldChartData))
}

// IsTimeSeriesEQ applies the EQ predicate on the "is_time_series" field.
func IsTimeSeriesEQ(v bool) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldIsTimeSeries, v))
}

// IsTimeSeriesNEQ applies the NEQ predicate on the "is_time_series" field.
func IsTimeSeriesNEQ(v bool) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldIsTimeSeries, v))
}

// AllowChartTypeSwitchEQ applies the EQ predicate on the "allow_chart_type_switch" field.
func AllowChartTypeSwitchEQ(v bool) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldAllowChartTypeSwitch, v))
}

// AllowChartTypeSwitchNEQ applies the NEQ predicate on the "allow_chart_type_switch" field.
func AllowChartTypeSwitchNEQ(v bool) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldAllowChartTypeSwitch, v))
}

// SearchJobIDEQ applies the EQ predicate on the "search_job_id" field.
func SearchJobIDEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldSearchJobID, v))
}

// SearchJobIDNEQ applies the NEQ predicate on the "search_job_id" field.
func SearchJobIDNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldSearchJobID, v))
}

// SearchJobIDIn applies the In predicate on the "search_job_id" field.
func SearchJobIDIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldSearchJobID, vs...))
}

// SearchJobIDNotIn applies the NotIn predicate on the "search_job_id" field.
func SearchJobIDNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldSearchJobID, vs...))
}

// SearchJobIDGT applies the GT predicate on the "search_job_id" field.
func SearchJobIDGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldSearchJobID, v))
}

// SearchJobIDGTE applies the GTE predicate on the "search_job_id" field.
func SearchJobIDGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldSearchJobID, v))
}

// SearchJobIDLT applies the LT predicate on the "search_job_id" field.
func SearchJobIDLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldSearchJobID, v))
}

// SearchJobIDLTE applies the LTE predicate on the "search_job_id" field.
func SearchJobIDLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldSearchJobID, v))
}

// SearchJobIDContains applies the Contains predicate on the "search_job_id" field.
func SearchJobIDContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldSearchJobID, v))
}

// SearchJobIDHasPrefix applies the HasPrefix predicate on the "search_job_id" field.
func SearchJobIDHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldSearchJobID, v))
}

// SearchJobIDHasSuffix applies the HasSuffix predicate on the "search_job_id" field.
func SearchJobIDHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldSearchJobID, v))
}

// SearchJobIDIsNil applies the IsNil predicate on the "search_job_id" field.
func SearchJobIDIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldSearchJobID))
}

// SearchJobIDNotNil applies the NotNil predicate on the "search_job_id" field.
func SearchJobIDNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldSearchJobID))
}

// SearchJobIDEqualFold applies the EqualFold predicate on the "search_job_id" field.
func SearchJobIDEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldSearchJobID, v))
}

// SearchJobIDContainsFold applies the ContainsFold predicate on the "search_job_id" field.
func SearchJobIDContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldSearchJobID, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueryResult) predicate.QueryResult {
	return predicate.QueryResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueryResult) predicate.QueryResult {
	return predicate.QueryResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueryResult) predicate.QueryResult {
	return predicate.QueryResult(sql.NotPredicates(p))
}
