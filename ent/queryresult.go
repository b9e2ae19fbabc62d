// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/splunk-genie/genie/ent/queryresult"
)

// QueryResult is the model entity for the QueryResult schema.
type QueryResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Query holds the value of the "query" field.
	Query string `json:"query,omitempty"`
	// sha256 of query|earliest|latest
	QueryHash string `json:"query_hash,omitempty"`
	// Earliest holds the value of the "earliest" field.
	Earliest *string `json:"earliest,omitempty"`
	// Latest holds the value of the "latest" field.
	Latest *string `json:"latest,omitempty"`
	// Columns holds the value of the "columns" field.
	Columns []string `json:"columns,omitempty"`
	// Row values in column order
	Rows [][]interface{} `json:"rows,omitempty"`
	// RowCount holds the value of the "row_count" field.
	RowCount int `json:"row_count,omitempty"`
	// ExecutionTime holds the value of the "execution_time" field.
	ExecutionTime *float64 `json:"execution_time,omitempty"`
	// table, chart, single-value or timechart
	VisualizationType *string `json:"visualization_type,omitempty"`
	// VisualizationConfig holds the value of the "visualization_config" field.
	VisualizationConfig map[string]interface{} `json:"visualization_config,omitempty"`
	// SingleValue holds the value of the "single_value" field.
	SingleValue *float64 `json:"single_value,omitempty"`
	// GaugeValue holds the value of the "gauge_value" field.
	GaugeValue *float64 `json:"gauge_value,omitempty"`
	// ChartData holds the value of the "chart_data" field.
	ChartData []map[string]interface{} `json:"chart_data,omitempty"`
	// IsTimeSeries holds the value of the "is_time_series" field.
	IsTimeSeries bool `json:"is_time_series,omitempty"`
	// AllowChartTypeSwitch holds the value of the "allow_chart_type_switch" field.
	AllowChartTypeSwitch bool `json:"allow_chart_type_switch,omitempty"`
	// Backend search job id, for debugging
	SearchJobID *string `json:"search_job_id,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueryResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queryresult.FieldColumns, queryresult.FieldRows, queryresult.FieldVisualizationConfig, queryresult.FieldChartData:
			values[i] = new([]byte)
		case queryresult.FieldIsTimeSeries, queryresult.FieldAllowChartTypeSwitch:
			values[i] = new(sql.NullBool)
		case queryresult.FieldExecutionTime, queryresult.FieldSingleValue, queryresult.FieldGaugeValue:
			values[i] = new(sql.NullFloat64)
		case queryresult.FieldID, queryresult.FieldRowCount:
			values[i] = new(sql.NullInt64)
		case queryresult.FieldUserID, queryresult.FieldQuery, queryresult.FieldQueryHash, queryresult.FieldEarliest, queryresult.FieldLatest, queryresult.FieldVisualizationType, queryresult.FieldSearchJobID, queryresult.FieldError:
			values[i] = new(sql.NullString)
		case queryresult.FieldCreatedAt, queryresult.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueryResult fields.
func (_m *QueryResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queryresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case queryresult.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case queryresult.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case queryresult.FieldQueryHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_hash", values[i])
			} else if value.Valid {
				_m.QueryHash = value.String
			}
		case queryresult.FieldEarliest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field earliest", values[i])
			} else if value.Valid {
				_m.Earliest = new(string)
				*_m.Earliest = value.String
			}
		case queryresult.FieldLatest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field latest", values[i])
			} else if value.Valid {
				_m.Latest = new(string)
				*_m.Latest = value.String
			}
		case queryresult.FieldColumns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field columns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Columns); err != nil {
					return fmt.Errorf("unmarshal field columns: %w", err)
				}
			}
		case queryresult.FieldRows:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rows", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rows); err != nil {
					return fmt.Errorf("unmarshal field rows: %w", err)
				}
			}
		case queryresult.FieldRowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_count", values[i])
			} else if value.Valid {
				_m.RowCount = int(value.Int64)
			}
		case queryresult.FieldExecutionTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time", values[i])
			} else if value.Valid {
				_m.ExecutionTime = new(float64)
				*_m.ExecutionTime = value.Float64
			}
		case queryresult.FieldVisualizationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visualization_type", values[i])
			} else if value.Valid {
				_m.VisualizationType = new(string)
				*_m.VisualizationType = value.String
			}
		case queryresult.FieldVisualizationConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field visualization_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VisualizationConfig); err != nil {
					return fmt.Errorf("unmarshal field visualization_config: %w", err)
				}
			}
		case queryresult.FieldSingleValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field single_value", values[i])
			} else if value.Valid {
				_m.SingleValue = new(float64)
				*_m.SingleValue = value.Float64
			}
		case queryresult.FieldGaugeValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gauge_value", values[i])
			} else if value.Valid {
				_m.GaugeValue = new(float64)
				*_m.GaugeValue = value.Float64
			}
		case queryresult.FieldChartData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chart_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChartData); err != nil {
					return fmt.Errorf("unmarshal field chart_data: %w", err)
				}
			}
		case queryresult.FieldIsTimeSeries:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_time_series", values[i])
			} else if value.Valid {
				_m.IsTimeSeries = value.Bool
			}
		case queryresult.FieldAllowChartTypeSwitch:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_chart_type_switch", values[i])
			} else if value.Valid {
				_m.AllowChartTypeSwitch = value.Bool
			}
		case queryresult.FieldSearchJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_job_id", values[i])
			} else if value.Valid {
				_m.SearchJobID = new(string)
				*_m.SearchJobID = value.String
			}
		case queryresult.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case queryresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case queryresult.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueryResult.
// This includes values selected through modifiers, order, etc.
func (_m *QueryResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueryResult.
// Note that you need to call QueryResult.Unwrap() before calling this method if this QueryResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueryResult) Update() *QueryResultUpdateOne {
	return NewQueryResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueryResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueryResult) Unwrap() *QueryResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueryResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueryResult) String() string {
	var builder strings.Builder
	builder.WriteString("QueryResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	builder.WriteString("query_hash=")
	builder.WriteString(_m.QueryHash)
	builder.WriteString(", ")
	if v := _m.Earliest; v != nil {
		builder.WriteString("earliest=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Latest; v != nil {
		builder.WriteString("latest=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("columns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Columns))
	builder.WriteString(", ")
	builder.WriteString("rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rows))
	builder.WriteString(", ")
	builder.WriteString("row_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowCount))
	builder.WriteString(", ")
	if v := _m.ExecutionTime; v != nil {
		builder.WriteString("execution_time=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VisualizationType; v != nil {
		builder.WriteString("visualization_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("visualization_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisualizationConfig))
	builder.WriteString(", ")
	if v := _m.SingleValue; v != nil {
		builder.WriteString("single_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GaugeValue; v != nil {
		builder.WriteString("gauge_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("chart_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartData))
	builder.WriteString(", ")
	builder.WriteString("is_time_series=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTimeSeries))
	builder.WriteString(", ")
	builder.WriteString("allow_chart_type_switch=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowChartTypeSwitch))
	builder.WriteString(", ")
	if v := _m.SearchJobID; v != nil {
		builder.WriteString("search_job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QueryResults is a parsable slice of QueryResult.
type QueryResults []*QueryResult
