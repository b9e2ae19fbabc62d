// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/splunk-genie/genie/ent/predicate"
	"github.com/splunk-genie/genie/ent/queryresult"
)

// QueryResultUpdate is the builder for updating QueryResult entities.
type QueryResultUpdate struct {
	config
	hooks    []Hook
	mutation *QueryResultMutation
}

// Where appends a list predicates to the QueryResultUpdate builder.
func (_u *QueryResultUpdate) Where(ps ...predicate.QueryResult) *QueryResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QueryResultUpdate) SetUserID(v string) *QueryResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableUserID(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *QueryResultUpdate) SetQuery(v string) *QueryResultUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableQuery(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetQueryHash sets the "query_hash" field.
func (_u *QueryResultUpdate) SetQueryHash(v string) *QueryResultUpdate {
	_u.mutation.SetQueryHash(v)
	return _u
}

// SetNillableQueryHash sets the "query_hash" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableQueryHash(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetQueryHash(*v)
	}
	return _u
}

// SetEarliest sets the "earliest" field.
func (_u *QueryResultUpdate) SetEarliest(v string) *QueryResultUpdate {
	_u.mutation.SetEarliest(v)
	return _u
}

// SetNillableEarliest sets the "earliest" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableEarliest(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetEarliest(*v)
	}
	return _u
}

// ClearEarliest clears the value of the "earliest" field.
func (_u *QueryResultUpdate) ClearEarliest() *QueryResultUpdate {
	_u.mutation.ClearEarliest()
	return _u
}

// SetLatest sets the "latest" field.
func (_u *QueryResultUpdate) SetLatest(v string) *QueryResultUpdate {
	_u.mutation.SetLatest(v)
	return _u
}

// SetNillableLatest sets the "latest" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableLatest(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetLatest(*v)
	}
	return _u
}

// ClearLatest clears the value of the "latest" field.
func (_u *QueryResultUpdate) ClearLatest() *QueryResultUpdate {
	_u.mutation.ClearLatest()
	return _u
}

// SetColumns sets the "columns" field.
func (_u *QueryResultUpdate) SetColumns(v []string) *QueryResultUpdate {
	_u.mutation.SetColumns(v)
	return _u
}

// AppendColumns appends value to the "columns" field.
func (_u *QueryResultUpdate) AppendColumns(v []string) *QueryResultUpdate {
	_u.mutation.AppendColumns(v)
	return _u
}

// ClearColumns clears the value of the "columns" field.
func (_u *QueryResultUpdate) ClearColumns() *QueryResultUpdate {
	_u.mutation.ClearColumns()
	return _u
}

// SetRows sets the "rows" field.
func (_u *QueryResultUpdate) SetRows(v [][]interface{}) *QueryResultUpdate {
	_u.mutation.SetRows(v)
	return _u
}

// AppendRows appends value to the "rows" field.
func (_u *QueryResultUpdate) AppendRows(v [][]interface{}) *QueryResultUpdate {
	_u.mutation.AppendRows(v)
	return _u
}

// ClearRows clears the value of the "rows" field.
func (_u *QueryResultUpdate) ClearRows() *QueryResultUpdate {
	_u.mutation.ClearRows()
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *QueryResultUpdate) SetRowCount(v int) *QueryResultUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableRowCount(v *int) *QueryResultUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *QueryResultUpdate) AddRowCount(v int) *QueryResultUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetExecutionTime sets the "execution_time" field.
func (_u *QueryResultUpdate) SetExecutionTime(v float64) *QueryResultUpdate {
	_u.mutation.ResetExecutionTime()
	_u.mutation.SetExecutionTime(v)
	return _u
}

// SetNillableExecutionTime sets the "execution_time" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableExecutionTime(v *float64) *QueryResultUpdate {
	if v != nil {
		_u.SetExecutionTime(*v)
	}
	return _u
}

// AddExecutionTime adds value to the "execution_time" field.
func (_u *QueryResultUpdate) AddExecutionTime(v float64) *QueryResultUpdate {
	_u.mutation.AddExecutionTime(v)
	return _u
}

// ClearExecutionTime clears the value of the "execution_time" field.
func (_u *QueryResultUpdate) ClearExecutionTime() *QueryResultUpdate {
	_u.mutation.ClearExecutionTime()
	return _u
}

// SetVisualizationType sets the "visualization_type" field.
func (_u *QueryResultUpdate) SetVisualizationType(v string) *QueryResultUpdate {
	_u.mutation.SetVisualizationType(v)
	return _u
}

// SetNillableVisualizationType sets the "visualization_type" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableVisualizationType(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetVisualizationType(*v)
	}
	return _u
}

// ClearVisualizationType clears the value of the "visualization_type" field.
func (_u *QueryResultUpdate) ClearVisualizationType() *QueryResultUpdate {
	_u.mutation.ClearVisualizationType()
	return _u
}

// SetVisualizationConfig sets the "visualization_config" field.
func (_u *QueryResultUpdate) SetVisualizationConfig(v map[string]interface{}) *QueryResultUpdate {
	_u.mutation.SetVisualizationConfig(v)
	return _u
}

// ClearVisualizationConfig clears the value of the "visualization_config" field.
func (_u *QueryResultUpdate) ClearVisualizationConfig() *QueryResultUpdate {
	_u.mutation.ClearVisualizationConfig()
	return _u
}

// SetSingleValue sets the "single_value" field.
func (_u *QueryResultUpdate) SetSingleValue(v float64) *QueryResultUpdate {
	_u.mutation.ResetSingleValue()
	_u.mutation.SetSingleValue(v)
	return _u
}

// SetNillableSingleValue sets the "single_value" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableSingleValue(v *float64) *QueryResultUpdate {
	if v != nil {
		_u.SetSingleValue(*v)
	}
	return _u
}

// AddSingleValue adds value to the "single_value" field.
func (_u *QueryResultUpdate) AddSingleValue(v float64) *QueryResultUpdate {
	_u.mutation.AddSingleValue(v)
	return _u
}

// ClearSingleValue clears the value of the "single_value" field.
func (_u *QueryResultUpdate) ClearSingleValue() *QueryResultUpdate {
	_u.mutation.ClearSingleValue()
	return _u
}

// SetGaugeValue sets the "gauge_value" field.
func (_u *QueryResultUpdate) SetGaugeValue(v float64) *QueryResultUpdate {
	_u.mutation.ResetGaugeValue()
	_u.mutation.SetGaugeValue(v)
	return _u
}

// SetNillableGaugeValue sets the "gauge_value" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableGaugeValue(v *float64) *QueryResultUpdate {
	if v != nil {
		_u.SetGaugeValue(*v)
	}
	return _u
}

// AddGaugeValue adds value to the "gauge_value" field.
func (_u *QueryResultUpdate) AddGaugeValue(v float64) *QueryResultUpdate {
	_u.mutation.AddGaugeValue(v)
	return _u
}

// ClearGaugeValue clears the value of the "gauge_value" field.
func (_u *QueryResultUpdate) ClearGaugeValue() *QueryResultUpdate {
	_u.mutation.ClearGaugeValue()
	return _u
}

// SetChartData sets the "chart_data" field.
func (_u *QueryResultUpdate) SetChartData(v []map[string]interface{}) *QueryResultUpdate {
	_u.mutation.SetChartData(v)
	return _u
}

// AppendChartData appends value to the "chart_data" field.
func (_u *QueryResultUpdate) AppendChartData(v []map[string]interface{}) *QueryResultUpdate {
	_u.mutation.AppendChartData(v)
	return _u
}

// ClearChartData clears the value of the "chart_data" field.
func (_u *QueryResultUpdate) ClearChartData() *QueryResultUpdate {
	_u.mutation.ClearChartData()
	return _u
}

// SetIsTimeSeries sets the "is_time_series" field.
func (_u *QueryResultUpdate) SetIsTimeSeries(v bool) *QueryResultUpdate {
	_u.mutation.SetIsTimeSeries(v)
	return _u
}

// SetNillableIsTimeSeries sets the "is_time_series" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableIsTimeSeries(v *bool) *QueryResultUpdate {
	if v != nil {
		_u.SetIsTimeSeries(*v)
	}
	return _u
}

// SetAllowChartTypeSwitch sets the "allow_chart_type_switch" field.
func (_u *QueryResultUpdate) SetAllowChartTypeSwitch(v bool) *QueryResultUpdate {
	_u.mutation.SetAllowChartTypeSwitch(v)
	return _u
}

// SetNillableAllowChartTypeSwitch sets the "allow_chart_type_switch" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableAllowChartTypeSwitch(v *bool) *QueryResultUpdate {
	if v != nil {
		_u.SetAllowChartTypeSwitch(*v)
	}
	return _u
}

// SetSearchJobID sets the "search_job_id" field.
func (_u *QueryResultUpdate) SetSearchJobID(v string) *QueryResultUpdate {
	_u.mutation.SetSearchJobID(v)
	return _u
}

// SetNillableSearchJobID sets the "search_job_id" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableSearchJobID(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetSearchJobID(*v)
	}
	return _u
}

// ClearSearchJobID clears the value of the "search_job_id" field.
func (_u *QueryResultUpdate) ClearSearchJobID() *QueryResultUpdate {
	_u.mutation.ClearSearchJobID()
	return _u
}

// SetError sets the "error" field.
func (_u *QueryResultUpdate) SetError(v string) *QueryResultUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableError(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *QueryResultUpdate) ClearError() *QueryResultUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueryResultUpdate) SetUpdatedAt(v time.Time) *QueryResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueryResultMutation object of the builder.
func (_u *QueryResultUpdate) Mutation() *QueryResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueryResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queryresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QueryResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queryresult.Table, queryresult.Columns, sqlgraph.NewFieldSpec(queryresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(queryresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(queryresult.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryHash(); ok {
		_spec.SetField(queryresult.FieldQueryHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Earliest(); ok {
		_spec.SetField(queryresult.FieldEarliest, field.TypeString, value)
	}
	if _u.mutation.EarliestCleared() {
		_spec.ClearField(queryresult.FieldEarliest, field.TypeString)
	}
	if value, ok := _u.mutation.Latest(); ok {
		_spec.SetField(queryresult.FieldLatest, field.TypeString, value)
	}
	if _u.mutation.LatestCleared() {
		_spec.ClearField(queryresult.FieldLatest, field.TypeString)
	}
	if value, ok := _u.mutation.Columns(); ok {
		_spec.SetField(queryresult.FieldColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryresult.FieldColumns, value)
		})
	}
	if _u.mutation.ColumnsCleared() {
		_spec.ClearField(queryresult.FieldColumns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(queryresult.FieldRows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryresult.FieldRows, value)
		})
	}
	if _u.mutation.RowsCleared() {
		_spec.ClearField(queryresult.FieldRows, field.TypeJSON)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(queryresult.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(queryresult.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionTime(); ok {
		_spec.SetField(queryresult.FieldExecutionTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTime(); ok {
		_spec.AddField(queryresult.FieldExecutionTime, field.TypeFloat64, value)
	}
	if _u.mutation.ExecutionTimeCleared() {
		_spec.ClearField(queryresult.FieldExecutionTime, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VisualizationType(); ok {
		_spec.SetField(queryresult.FieldVisualizationType, field.TypeString, value)
	}
	if _u.mutation.VisualizationTypeCleared() {
		_spec.ClearField(queryresult.FieldVisualizationType, field.TypeString)
	}
	if value, ok := _u.mutation.VisualizationConfig(); ok {
		_spec.SetField(queryresult.FieldVisualizationConfig, field.TypeJSON, value)
	}
	if _u.mutation.VisualizationConfigCleared() {
		_spec.ClearField(queryresult.FieldVisualizationConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.SingleValue(); ok {
		_spec.SetField(queryresult.FieldSingleValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSingleValue(); ok {
		_spec.AddField(queryresult.FieldSingleValue, field.TypeFloat64, value)
	}
	if _u.mutation.SingleValueCleared() {
		_spec.ClearField(queryresult.FieldSingleValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GaugeValue(); ok {
		_spec.SetField(queryresult.FieldGaugeValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGaugeValue(); ok {
		_spec.AddField(queryresult.FieldGaugeValue, field.TypeFloat64, value)
	}
	if _u.mutation.GaugeValueCleared() {
		_spec.ClearField(queryresult.FieldGaugeValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ChartData(); ok {
		_spec.SetField(queryresult.FieldChartData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChartData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryresult.FieldChartData, value)
		})
	}
	if _u.mutation.ChartDataCleared() {
		_spec.ClearField(queryresult.FieldChartData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsTimeSeries(); ok {
		_spec.SetField(queryresult.FieldIsTimeSeries, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowChartTypeSwitch(); ok {
		_spec.SetField(queryresult.FieldAllowChartTypeSwitch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SearchJobID(); ok {
		_spec.SetField(queryresult.FieldSearchJobID, field.TypeString, value)
	}
	if _u.mutation.SearchJobIDCleared() {
		_spec.ClearField(queryresult.FieldSearchJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(queryresult.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(queryresult.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queryresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryResultUpdateOne is the builder for updating a single QueryResult entity.
type QueryResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryResultMutation
}

// SetUserID sets the "user_id" field.
func (_u *QueryResultUpdateOne) SetUserID(v string) *QueryResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableUserID(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *QueryResultUpdateOne) SetQuery(v string) *QueryResultUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableQuery(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetQueryHash sets the "query_hash" field.
func (_u *QueryResultUpdateOne) SetQueryHash(v string) *QueryResultUpdateOne {
	_u.mutation.SetQueryHash(v)
	return _u
}

// SetNillableQueryHash sets the "query_hash" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableQueryHash(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetQueryHash(*v)
	}
	return _u
}

// SetEarliest sets the "earliest" field.
func (_u *QueryResultUpdateOne) SetEarliest(v string) *QueryResultUpdateOne {
	_u.mutation.SetEarliest(v)
	return _u
}

// SetNillableEarliest sets the "earliest" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableEarliest(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetEarliest(*v)
	}
	return _u
}

// ClearEarliest clears the value of the "earliest" field.
func (_u *QueryResultUpdateOne) ClearEarliest() *QueryResultUpdateOne {
	_u.mutation.ClearEarliest()
	return _u
}

// SetLatest sets the "latest" field.
func (_u *QueryResultUpdateOne) SetLatest(v string) *QueryResultUpdateOne {
	_u.mutation.SetLatest(v)
	return _u
}

// SetNillableLatest sets the "latest" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableLatest(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetLatest(*v)
	}
	return _u
}

// ClearLatest clears the value of the "latest" field.
func (_u *QueryResultUpdateOne) ClearLatest() *QueryResultUpdateOne {
	_u.mutation.ClearLatest()
	return _u
}

// SetColumns sets the "columns" field.
func (_u *QueryResultUpdateOne) SetColumns(v []string) *QueryResultUpdateOne {
	_u.mutation.SetColumns(v)
	return _u
}

// AppendColumns appends value to the "columns" field.
func (_u *QueryResultUpdateOne) AppendColumns(v []string) *QueryResultUpdateOne {
	_u.mutation.AppendColumns(v)
	return _u
}

// ClearColumns clears the value of the "columns" field.
func (_u *QueryResultUpdateOne) ClearColumns() *QueryResultUpdateOne {
	_u.mutation.ClearColumns()
	return _u
}

// SetRows sets the "rows" field.
func (_u *QueryResultUpdateOne) SetRows(v [][]interface{}) *QueryResultUpdateOne {
	_u.mutation.SetRows(v)
	return _u
}

// AppendRows appends value to the "rows" field.
func (_u *QueryResultUpdateOne) AppendRows(v [][]interface{}) *QueryResultUpdateOne {
	_u.mutation.AppendRows(v)
	return _u
}

// ClearRows clears the value of the "rows" field.
func (_u *QueryResultUpdateOne) ClearRows() *QueryResultUpdateOne {
	_u.mutation.ClearRows()
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *QueryResultUpdateOne) SetRowCount(v int) *QueryResultUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableRowCount(v *int) *QueryResultUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *QueryResultUpdateOne) AddRowCount(v int) *QueryResultUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetExecutionTime sets the "execution_time" field.
func (_u *QueryResultUpdateOne) SetExecutionTime(v float64) *QueryResultUpdateOne {
	_u.mutation.ResetExecutionTime()
	_u.mutation.SetExecutionTime(v)
	return _u
}

// SetNillableExecutionTime sets the "execution_time" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableExecutionTime(v *float64) *QueryResultUpdateOne {
	if v != nil {
		_u.SetExecutionTime(*v)
	}
	return _u
}

// AddExecutionTime adds value to the "execution_time" field.
func (_u *QueryResultUpdateOne) AddExecutionTime(v float64) *QueryResultUpdateOne {
	_u.mutation.AddExecutionTime(v)
	return _u
}

// ClearExecutionTime clears the value of the "execution_time" field.
func (_u *QueryResultUpdateOne) ClearExecutionTime() *QueryResultUpdateOne {
	_u.mutation.ClearExecutionTime()
	return _u
}

// SetVisualizationType sets the "visualization_type" field.
func (_u *QueryResultUpdateOne) SetVisualizationType(v string) *QueryResultUpdateOne {
	_u.mutation.SetVisualizationType(v)
	return _u
}

// SetNillableVisualizationType sets the "visualization_type" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableVisualizationType(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetVisualizationType(*v)
	}
	return _u
}

// ClearVisualizationType clears the value of the "visualization_type" field.
func (_u *QueryResultUpdateOne) ClearVisualizationType() *QueryResultUpdateOne {
	_u.mutation.ClearVisualizationType()
	return _u
}

// SetVisualizationConfig sets the "visualization_config" field.
func (_u *QueryResultUpdateOne) SetVisualizationConfig(v map[string]interface{}) *QueryResultUpdateOne {
	_u.mutation.SetVisualizationConfig(v)
	return _u
}

// ClearVisualizationConfig clears the value of the "visualization_config" field.
func (_u *QueryResultUpdateOne) ClearVisualizationConfig() *QueryResultUpdateOne {
	_u.mutation.ClearVisualizationConfig()
	return _u
}

// SetSingleValue sets the "single_value" field.
func (_u *QueryResultUpdateOne) SetSingleValue(v float64) *QueryResultUpdateOne {
	_u.mutation.ResetSingleValue()
	_u.mutation.SetSingleValue(v)
	return _u
}

// SetNillableSingleValue sets the "single_value" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableSingleValue(v *float64) *QueryResultUpdateOne {
	if v != nil {
		_u.SetSingleValue(*v)
	}
	return _u
}

// AddSingleValue adds value to the "single_value" field.
func (_u *QueryResultUpdateOne) AddSingleValue(v float64) *QueryResultUpdateOne {
	_u.mutation.AddSingleValue(v)
	return _u
}

// ClearSingleValue clears the value of the "single_value" field.
func (_u *QueryResultUpdateOne) ClearSingleValue() *QueryResultUpdateOne {
	_u.mutation.ClearSingleValue()
	return _u
}

// SetGaugeValue sets the "gauge_value" field.
func (_u *QueryResultUpdateOne) SetGaugeValue(v float64) *QueryResultUpdateOne {
	_u.mutation.ResetGaugeValue()
	_u.mutation.SetGaugeValue(v)
	return _u
}

// SetNillableGaugeValue sets the "gauge_value" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableGaugeValue(v *float64) *QueryResultUpdateOne {
	if v != nil {
		_u.SetGaugeValue(*v)
	}
	return _u
}

// AddGaugeValue adds value to the "gauge_value" field.
func (_u *QueryResultUpdateOne) AddGaugeValue(v float64) *QueryResultUpdateOne {
	_u.mutation.AddGaugeValue(v)
	return _u
}

// ClearGaugeValue clears the value of the "gauge_value" field.
func (_u *QueryResultUpdateOne) ClearGaugeValue() *QueryResultUpdateOne {
	_u.mutation.ClearGaugeValue()
	return _u
}

// SetChartData sets the "chart_data" field.
func (_u *QueryResultUpdateOne) SetChartData(v []map[string]interface{}) *QueryResultUpdateOne {
	_u.mutation.SetChartData(v)
	return _u
}

// AppendChartData appends value to the "chart_data" field.
func (_u *QueryResultUpdateOne) AppendChartData(v []map[string]interface{}) *QueryResultUpdateOne {
	_u.mutation.AppendChartData(v)
	return _u
}

// ClearChartData clears the value of the "chart_data" field.
func (_u *QueryResultUpdateOne) ClearChartData() *QueryResultUpdateOne {
	_u.mutation.ClearChartData()
	return _u
}

// SetIsTimeSeries sets the "is_time_series" field.
func (_u *QueryResultUpdateOne) SetIsTimeSeries(v bool) *QueryResultUpdateOne {
	_u.mutation.SetIsTimeSeries(v)
	return _u
}

// SetNillableIsTimeSeries sets the "is_time_series" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableIsTimeSeries(v *bool) *QueryResultUpdateOne {
	if v != nil {
		_u.SetIsTimeSeries(*v)
	}
	return _u
}

// SetAllowChartTypeSwitch sets the "allow_chart_type_switch" field.
func (_u *QueryResultUpdateOne) SetAllowChartTypeSwitch(v bool) *QueryResultUpdateOne {
	_u.mutation.SetAllowChartTypeSwitch(v)
	return _u
}

// SetNillableAllowChartTypeSwitch sets the "allow_chart_type_switch" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableAllowChartTypeSwitch(v *bool) *QueryResultUpdateOne {
	if v != nil {
		_u.SetAllowChartTypeSwitch(*v)
	}
	return _u
}

// SetSearchJobID sets the "search_job_id" field.
func (_u *QueryResultUpdateOne) SetSearchJobID(v string) *QueryResultUpdateOne {
	_u.mutation.SetSearchJobID(v)
	return _u
}

// SetNillableSearchJobID sets the "search_job_id" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableSearchJobID(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetSearchJobID(*v)
	}
	return _u
}

// ClearSearchJobID clears the value of the "search_job_id" field.
func (_u *QueryResultUpdateOne) ClearSearchJobID() *QueryResultUpdateOne {
	_u.mutation.ClearSearchJobID()
	return _u
}

// SetError sets the "error" field.
func (_u *QueryResultUpdateOne) SetError(v string) *QueryResultUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableError(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *QueryResultUpdateOne) ClearError() *QueryResultUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueryResultUpdateOne) SetUpdatedAt(v time.Time) *QueryResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueryResultMutation object of the builder.
func (_u *QueryResultUpdateOne) Mutation() *QueryResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryResultUpdate builder.
func (_u *QueryResultUpdateOne) Where(ps ...predicate.QueryResult) *QueryResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryResultUpdateOne) Select(field string, fields ...string) *QueryResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryResult entity.
func (_u *QueryResultUpdateOne) Save(ctx context.Context) (*QueryResult, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryResultUpdateOne) SaveX(ctx context.Context) *QueryResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueryResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queryresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QueryResultUpdateOne) sqlSave(ctx context.Context) (_node *QueryResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(queryresult.Table, queryresult.Columns, sqlgraph.NewFieldSpec(queryresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queryresult.FieldID)
		for _, f := range fields {
			if !queryresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queryresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(queryresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(queryresult.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryHash(); ok {
		_spec.SetField(queryresult.FieldQueryHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Earliest(); ok {
		_spec.SetField(queryresult.FieldEarliest, field.TypeString, value)
	}
	if _u.mutation.EarliestCleared() {
		_spec.ClearField(queryresult.FieldEarliest, field.TypeString)
	}
	if value, ok := _u.mutation.Latest(); ok {
		_spec.SetField(queryresult.FieldLatest, field.TypeString, value)
	}
	if _u.mutation.LatestCleared() {
		_spec.ClearField(queryresult.FieldLatest, field.TypeString)
	}
	if value, ok := _u.mutation.Columns(); ok {
		_spec.SetField(queryresult.FieldColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryresult.FieldColumns, value)
		})
	}
	if _u.mutation.ColumnsCleared() {
		_spec.ClearField(queryresult.FieldColumns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(queryresult.FieldRows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryresult.FieldRows, value)
		})
	}
	if _u.mutation.RowsCleared() {
		_spec.ClearField(queryresult.FieldRows, field.TypeJSON)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(queryresult.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(queryresult.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionTime(); ok {
		_spec.SetField(queryresult.FieldExecutionTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTime(); ok {
		_spec.AddField(queryresult.FieldExecutionTime, field.TypeFloat64, value)
	}
	if _u.mutation.ExecutionTimeCleared() {
		_spec.ClearField(queryresult.FieldExecutionTime, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VisualizationType(); ok {
		_spec.SetField(queryresult.FieldVisualizationType, field.TypeString, value)
	}
	if _u.mutation.VisualizationTypeCleared() {
		_spec.ClearField(queryresult.FieldVisualizationType, field.TypeString)
	}
	if value, ok := _u.mutation.VisualizationConfig(); ok {
		_spec.SetField(queryresult.FieldVisualizationConfig, field.TypeJSON, value)
	}
	if _u.mutation.VisualizationConfigCleared() {
		_spec.ClearField(queryresult.FieldVisualizationConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.SingleValue(); ok {
		_spec.SetField(queryresult.FieldSingleValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSingleValue(); ok {
		_spec.AddField(queryresult.FieldSingleValue, field.TypeFloat64, value)
	}
	if _u.mutation.SingleValueCleared() {
		_spec.ClearField(queryresult.FieldSingleValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GaugeValue(); ok {
		_spec.SetField(queryresult.FieldGaugeValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGaugeValue(); ok {
		_spec.AddField(queryresult.FieldGaugeValue, field.TypeFloat64, value)
	}
	if _u.mutation.GaugeValueCleared() {
		_spec.ClearField(queryresult.FieldGaugeValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ChartData(); ok {
		_spec.SetField(queryresult.FieldChartData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChartData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryresult.FieldChartData, value)
		})
	}
	if _u.mutation.ChartDataCleared() {
		_spec.ClearField(queryresult.FieldChartData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsTimeSeries(); ok {
		_spec.SetField(queryresult.FieldIsTimeSeries, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowChartTypeSwitch(); ok {
		_spec.SetField(queryresult.FieldAllowChartTypeSwitch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SearchJobID(); ok {
		_spec.SetField(queryresult.FieldSearchJobID, field.TypeString, value)
	}
	if _u.mutation.SearchJobIDCleared() {
		_spec.ClearField(queryresult.FieldSearchJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(queryresult.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(queryresult.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queryresult.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueryResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
