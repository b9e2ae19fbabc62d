// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/splunk-genie/genie/ent/queryresult"
)

// QueryResultCreate is the builder for creating a QueryResult entity.
type QueryResultCreate struct {
	config
	mutation *QueryResultMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QueryResultCreate) SetUserID(v string) *QueryResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuery sets the "query" field.
func (_c *QueryResultCreate) SetQuery(v string) *QueryResultCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetQueryHash sets the "query_hash" field.
func (_c *QueryResultCreate) SetQueryHash(v string) *QueryResultCreate {
	_c.mutation.SetQueryHash(v)
	return _c
}

// SetEarliest sets the "earliest" field.
func (_c *QueryResultCreate) SetEarliest(v string) *QueryResultCreate {
	_c.mutation.SetEarliest(v)
	return _c
}

// SetNillableEarliest sets the "earliest" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableEarliest(v *string) *QueryResultCreate {
	if v != nil {
		_c.SetEarliest(*v)
	}
	return _c
}

// SetLatest sets the "latest" field.
func (_c *QueryResultCreate) SetLatest(v string) *QueryResultCreate {
	_c.mutation.SetLatest(v)
	return _c
}

// SetNillableLatest sets the "latest" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableLatest(v *string) *QueryResultCreate {
	if v != nil {
		_c.SetLatest(*v)
	}
	return _c
}

// SetColumns sets the "columns" field.
func (_c *QueryResultCreate) SetColumns(v []string) *QueryResultCreate {
	_c.mutation.SetColumns(v)
	return _c
}

// SetRows sets the "rows" field.
func (_c *QueryResultCreate) SetRows(v [][]interface{}) *QueryResultCreate {
	_c.mutation.SetRows(v)
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *QueryResultCreate) SetRowCount(v int) *QueryResultCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableRowCount(v *int) *QueryResultCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetExecutionTime sets the "execution_time" field.
func (_c *QueryResultCreate) SetExecutionTime(v float64) *QueryResultCreate {
	_c.mutation.SetExecutionTime(v)
	return _c
}

// SetNillableExecutionTime sets the "execution_time" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableExecutionTime(v *float64) *QueryResultCreate {
	if v != nil {
		_c.SetExecutionTime(*v)
	}
	return _c
}

// SetVisualizationType sets the "visualization_type" field.
func (_c *QueryResultCreate) SetVisualizationType(v string) *QueryResultCreate {
	_c.mutation.SetVisualizationType(v)
	return _c
}

// SetNillableVisualizationType sets the "visualization_type" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableVisualizationType(v *string) *QueryResultCreate {
	if v != nil {
		_c.SetVisualizationType(*v)
	}
	return _c
}

// SetVisualizationConfig sets the "visualization_config" field.
func (_c *QueryResultCreate) SetVisualizationConfig(v map[string]interface{}) *QueryResultCreate {
	_c.mutation.SetVisualizationConfig(v)
	return _c
}

// SetSingleValue sets the "single_value" field.
func (_c *QueryResultCreate) SetSingleValue(v float64) *QueryResultCreate {
	_c.mutation.SetSingleValue(v)
	return _c
}

// SetNillableSingleValue sets the "single_value" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableSingleValue(v *float64) *QueryResultCreate {
	if v != nil {
		_c.SetSingleValue(*v)
	}
	return _c
}

// SetGaugeValue sets the "gauge_value" field.
func (_c *QueryResultCreate) SetGaugeValue(v float64) *QueryResultCreate {
	_c.mutation.SetGaugeValue(v)
	return _c
}

// SetNillableGaugeValue sets the "gauge_value" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableGaugeValue(v *float64) *QueryResultCreate {
	if v != nil {
		_c.SetGaugeValue(*v)
	}
	return _c
}

// SetChartData sets the "chart_data" field.
func (_c *QueryResultCreate) SetChartData(v []map[string]interface{}) *QueryResultCreate {
	_c.mutation.SetChartData(v)
	return _c
}

// SetIsTimeSeries sets the "is_time_series" field.
func (_c *QueryResultCreate) SetIsTimeSeries(v bool) *QueryResultCreate {
	_c.mutation.SetIsTimeSeries(v)
	return _c
}

// SetNillableIsTimeSeries sets the "is_time_series" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableIsTimeSeries(v *bool) *QueryResultCreate {
	if v != nil {
		_c.SetIsTimeSeries(*v)
	}
	return _c
}

// SetAllowChartTypeSwitch sets the "allow_chart_type_switch" field.
func (_c *QueryResultCreate) SetAllowChartTypeSwitch(v bool) *QueryResultCreate {
	_c.mutation.SetAllowChartTypeSwitch(v)
	return _c
}

// SetNillableAllowChartTypeSwitch sets the "allow_chart_type_switch" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableAllowChartTypeSwitch(v *bool) *QueryResultCreate {
	if v != nil {
		_c.SetAllowChartTypeSwitch(*v)
	}
	return _c
}

// SetSearchJobID sets the "search_job_id" field.
func (_c *QueryResultCreate) SetSearchJobID(v string) *QueryResultCreate {
	_c.mutation.SetSearchJobID(v)
	return _c
}

// SetNillableSearchJobID sets the "search_job_id" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableSearchJobID(v *string) *QueryResultCreate {
	if v != nil {
		_c.SetSearchJobID(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *QueryResultCreate) SetError(v string) *QueryResultCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableError(v *string) *QueryResultCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueryResultCreate) SetCreatedAt(v time.Time) *QueryResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableCreatedAt(v *time.Time) *QueryResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueryResultCreate) SetUpdatedAt(v time.Time) *QueryResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableUpdatedAt(v *time.Time) *QueryResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the QueryResultMutation object of the builder.
func (_c *QueryResultCreate) Mutation() *QueryResultMutation {
	return _c.mutation
}

// Save creates the QueryResult in the database.
func (_c *QueryResultCreate) Save(ctx context.Context) (*QueryResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryResultCreate) SaveX(ctx context.Context) *QueryResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryResultCreate) defaults() {
	if _, ok := _c.mutation.RowCount(); !ok {
		v := queryresult.DefaultRowCount
		_c.mutation.SetRowCount(v)
	}
	if _, ok := _c.mutation.IsTimeSeries(); !ok {
		v := queryresult.DefaultIsTimeSeries
		_c.mutation.SetIsTimeSeries(v)
	}
	if _, ok := _c.mutation.AllowChartTypeSwitch(); !ok {
		v := queryresult.DefaultAllowChartTypeSwitch
		_c.mutation.SetAllowChartTypeSwitch(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queryresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queryresult.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryResultCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QueryResult.user_id"`)}
	}
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "QueryResult.query"`)}
	}
	if _, ok := _c.mutation.QueryHash(); !ok {
		return &ValidationError{Name: "query_hash", err: errors.New(`ent: missing required field "QueryResult.query_hash"`)}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "QueryResult.row_count"`)}
	}
	if _, ok := _c.mutation.IsTimeSeries(); !ok {
		return &ValidationError{Name: "is_time_series", err: errors.New(`ent: missing required field "QueryResult.is_time_series"`)}
	}
	if _, ok := _c.mutation.AllowChartTypeSwitch(); !ok {
		return &ValidationError{Name: "allow_chart_type_switch", err: errors.New(`ent: missing required field "QueryResult.allow_chart_type_switch"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueryResult.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueryResult.updated_at"`)}
	}
	return nil
}

func (_c *QueryResultCreate) sqlSave(ctx context.Context) (*QueryResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueryResultCreate) createSpec() (*QueryResult, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queryresult.Table, sqlgraph.NewFieldSpec(queryresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(queryresult.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(queryresult.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.QueryHash(); ok {
		_spec.SetField(queryresult.FieldQueryHash, field.TypeString, value)
		_node.QueryHash = value
	}
	if value, ok := _c.mutation.Earliest(); ok {
		_spec.SetField(queryresult.FieldEarliest, field.TypeString, value)
		_node.Earliest = &value
	}
	if value, ok := _c.mutation.Latest(); ok {
		_spec.SetField(queryresult.FieldLatest, field.TypeString, value)
		_node.Latest = &value
	}
	if value, ok := _c.mutation.Columns(); ok {
		_spec.SetField(queryresult.FieldColumns, field.TypeJSON, value)
		_node.Columns = value
	}
	if value, ok := _c.mutation.Rows(); ok {
		_spec.SetField(queryresult.FieldRows, field.TypeJSON, value)
		_node.Rows = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(queryresult.FieldRowCount, field.TypeInt, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.ExecutionTime(); ok {
		_spec.SetField(queryresult.FieldExecutionTime, field.TypeFloat64, value)
		_node.ExecutionTime = &value
	}
	if value, ok := _c.mutation.VisualizationType(); ok {
		_spec.SetField(queryresult.FieldVisualizationType, field.TypeString, value)
		_node.VisualizationType = &value
	}
	if value, ok := _c.mutation.VisualizationConfig(); ok {
		_spec.SetField(queryresult.FieldVisualizationConfig, field.TypeJSON, value)
		_node.VisualizationConfig = value
	}
	if value, ok := _c.mutation.SingleValue(); ok {
		_spec.SetField(queryresult.FieldSingleValue, field.TypeFloat64, value)
		_node.SingleValue = &value
	}
	if value, ok := _c.mutation.GaugeValue(); ok {
		_spec.SetField(queryresult.FieldGaugeValue, field.TypeFloat64, value)
		_node.GaugeValue = &value
	}
	if value, ok := _c.mutation.ChartData(); ok {
		_spec.SetField(queryresult.FieldChartData, field.TypeJSON, value)
		_node.ChartData = value
	}
	if value, ok := _c.mutation.IsTimeSeries(); ok {
		_spec.SetField(queryresult.FieldIsTimeSeries, field.TypeBool, value)
		_node.IsTimeSeries = value
	}
	if value, ok := _c.mutation.AllowChartTypeSwitch(); ok {
		_spec.SetField(queryresult.FieldAllowChartTypeSwitch, field.TypeBool, value)
		_node.AllowChartTypeSwitch = value
	}
	if value, ok := _c.mutation.SearchJobID(); ok {
		_spec.SetField(queryresult.FieldSearchJobID, field.TypeString, value)
		_node.SearchJobID = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(queryresult.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queryresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queryresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// QueryResultCreateBulk is the builder for creating many QueryResult entities in bulk.
type QueryResultCreateBulk struct {
	config
	err      error
	builders []*QueryResultCreate
}

// Save creates the QueryResult entities in the database.
func (_c *QueryResultCreateBulk) Save(ctx context.Context) ([]*QueryResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QueryResultCreateBulk) SaveX(ctx context.Context) []*QueryResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
