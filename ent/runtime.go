// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/splunk-genie/genie/ent/conversation"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/ent/message"
	"github.com/splunk-genie/genie/ent/queryresult"
	"github.com/splunk-genie/genie/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[1].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[2].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescProgress is the schema descriptor for progress field.
	jobDescProgress := jobFields[4].Descriptor()
	// job.DefaultProgress holds the default value on creation for the progress field.
	job.DefaultProgress = jobDescProgress.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[9].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[2].Descriptor()
	// message.DefaultContent holds the default value on creation for the content field.
	message.DefaultContent = messageDescContent.Default.(string)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[4].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescUpdatedAt is the schema descriptor for updated_at field.
	messageDescUpdatedAt := messageFields[5].Descriptor()
	// message.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	message.DefaultUpdatedAt = messageDescUpdatedAt.Default.(func() time.Time)
	// message.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	message.UpdateDefaultUpdatedAt = messageDescUpdatedAt.UpdateDefault.(func() time.Time)
	queryresultFields := schema.QueryResult{}.Fields()
	_ = queryresultFields
	// queryresultDescRowCount is the schema descriptor for row_count field.
	queryresultDescRowCount := queryresultFields[7].Descriptor()
	// queryresult.DefaultRowCount holds the default value on creation for the row_count field.
	queryresult.DefaultRowCount = queryresultDescRowCount.Default.(int)
	// queryresultDescIsTimeSeries is the schema descriptor for is_time_series field.
	queryresultDescIsTimeSeries := queryresultFields[14].Descriptor()
	// queryresult.DefaultIsTimeSeries holds the default value on creation for the is_time_series field.
	queryresult.DefaultIsTimeSeries = queryresultDescIsTimeSeries.Default.(bool)
	// queryresultDescAllowChartTypeSwitch is the schema descriptor for allow_chart_type_switch field.
	queryresultDescAllowChartTypeSwitch := queryresultFields[15].Descriptor()
	// queryresult.DefaultAllowChartTypeSwitch holds the default value on creation for the allow_chart_type_switch field.
	queryresult.DefaultAllowChartTypeSwitch = queryresultDescAllowChartTypeSwitch.Default.(bool)
	// queryresultDescCreatedAt is the schema descriptor for created_at field.
	queryresultDescCreatedAt := queryresultFields[18].Descriptor()
	// queryresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	queryresult.DefaultCreatedAt = queryresultDescCreatedAt.Default.(func() time.Time)
	// queryresultDescUpdatedAt is the schema descriptor for updated_at field.
	queryresultDescUpdatedAt := queryresultFields[19].Descriptor()
	// queryresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queryresult.DefaultUpdatedAt = queryresultDescUpdatedAt.Default.(func() time.Time)
	// queryresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	queryresult.UpdateDefaultUpdatedAt = queryresultDescUpdatedAt.UpdateDefault.(func() time.Time)
}
