// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/chatmessage"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/event"
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
	"github.com/dirigent-io/dirigent/ent/namespace"
	"github.com/dirigent-io/dirigent/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescIndependent is the schema descriptor for independent field.
	assignmentDescIndependent := assignmentFields[4].Descriptor()
	// assignment.DefaultIndependent holds the default value on creation for the independent field.
	assignment.DefaultIndependent = assignmentDescIndependent.Default.(bool)
	// assignmentDescPriority is the schema descriptor for priority field.
	assignmentDescPriority := assignmentFields[5].Descriptor()
	// assignment.DefaultPriority holds the default value on creation for the priority field.
	assignment.DefaultPriority = assignmentDescPriority.Default.(int)
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentFields[11].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	// assignmentDescUpdatedAt is the schema descriptor for updated_at field.
	assignmentDescUpdatedAt := assignmentFields[12].Descriptor()
	// assignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assignment.DefaultUpdatedAt = assignmentDescUpdatedAt.Default.(func() time.Time)
	// assignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assignment.UpdateDefaultUpdatedAt = assignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatjobFields := schema.ChatJob{}.Fields()
	_ = chatjobFields
	// chatjobDescToolCallCount is the schema descriptor for tool_call_count field.
	chatjobDescToolCallCount := chatjobFields[10].Descriptor()
	// chatjob.DefaultToolCallCount holds the default value on creation for the tool_call_count field.
	chatjob.DefaultToolCallCount = chatjobDescToolCallCount.Default.(int)
	// chatjobDescSubagentCount is the schema descriptor for subagent_count field.
	chatjobDescSubagentCount := chatjobFields[11].Descriptor()
	// chatjob.DefaultSubagentCount holds the default value on creation for the subagent_count field.
	chatjob.DefaultSubagentCount = chatjobDescSubagentCount.Default.(int)
	// chatjobDescTotalTokens is the schema descriptor for total_tokens field.
	chatjobDescTotalTokens := chatjobFields[12].Descriptor()
	// chatjob.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	chatjob.DefaultTotalTokens = chatjobDescTotalTokens.Default.(int)
	// chatjobDescExitForced is the schema descriptor for exit_forced field.
	chatjobDescExitForced := chatjobFields[14].Descriptor()
	// chatjob.DefaultExitForced holds the default value on creation for the exit_forced field.
	chatjob.DefaultExitForced = chatjobDescExitForced.Default.(bool)
	// chatjobDescCreatedAt is the schema descriptor for created_at field.
	chatjobDescCreatedAt := chatjobFields[15].Descriptor()
	// chatjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatjob.DefaultCreatedAt = chatjobDescCreatedAt.Default.(func() time.Time)
	// chatjobDescUpdatedAt is the schema descriptor for updated_at field.
	chatjobDescUpdatedAt := chatjobFields[16].Descriptor()
	// chatjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatjob.DefaultUpdatedAt = chatjobDescUpdatedAt.Default.(func() time.Time)
	// chatjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatjob.UpdateDefaultUpdatedAt = chatjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	chatthreadFields := schema.ChatThread{}.Fields()
	_ = chatthreadFields
	// chatthreadDescCreatedAt is the schema descriptor for created_at field.
	chatthreadDescCreatedAt := chatthreadFields[7].Descriptor()
	// chatthread.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatthread.DefaultCreatedAt = chatthreadDescCreatedAt.Default.(func() time.Time)
	// chatthreadDescUpdatedAt is the schema descriptor for updated_at field.
	chatthreadDescUpdatedAt := chatthreadFields[8].Descriptor()
	// chatthread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatthread.DefaultUpdatedAt = chatthreadDescUpdatedAt.Default.(func() time.Time)
	// chatthread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatthread.UpdateDefaultUpdatedAt = chatthreadDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[2].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescToolCallCount is the schema descriptor for tool_call_count field.
	jobDescToolCallCount := jobFields[10].Descriptor()
	// job.DefaultToolCallCount holds the default value on creation for the tool_call_count field.
	job.DefaultToolCallCount = jobDescToolCallCount.Default.(int)
	// jobDescSubagentCount is the schema descriptor for subagent_count field.
	jobDescSubagentCount := jobFields[11].Descriptor()
	// job.DefaultSubagentCount holds the default value on creation for the subagent_count field.
	job.DefaultSubagentCount = jobDescSubagentCount.Default.(int)
	// jobDescTotalTokens is the schema descriptor for total_tokens field.
	jobDescTotalTokens := jobFields[12].Descriptor()
	// job.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	job.DefaultTotalTokens = jobDescTotalTokens.Default.(int)
	// jobDescExitForced is the schema descriptor for exit_forced field.
	jobDescExitForced := jobFields[14].Descriptor()
	// job.DefaultExitForced holds the default value on creation for the exit_forced field.
	job.DefaultExitForced = jobDescExitForced.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[15].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[16].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobgroupFields := schema.JobGroup{}.Fields()
	_ = jobgroupFields
	// jobgroupDescCreatedAt is the schema descriptor for created_at field.
	jobgroupDescCreatedAt := jobgroupFields[5].Descriptor()
	// jobgroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobgroup.DefaultCreatedAt = jobgroupDescCreatedAt.Default.(func() time.Time)
	// jobgroupDescUpdatedAt is the schema descriptor for updated_at field.
	jobgroupDescUpdatedAt := jobgroupFields[6].Descriptor()
	// jobgroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobgroup.DefaultUpdatedAt = jobgroupDescUpdatedAt.Default.(func() time.Time)
	// jobgroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobgroup.UpdateDefaultUpdatedAt = jobgroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	namespaceFields := schema.Namespace{}.Fields()
	_ = namespaceFields
	// namespaceDescPendingCount is the schema descriptor for pending_count field.
	namespaceDescPendingCount := namespaceFields[3].Descriptor()
	// namespace.DefaultPendingCount holds the default value on creation for the pending_count field.
	namespace.DefaultPendingCount = namespaceDescPendingCount.Default.(int)
	// namespaceDescActiveCount is the schema descriptor for active_count field.
	namespaceDescActiveCount := namespaceFields[4].Descriptor()
	// namespace.DefaultActiveCount holds the default value on creation for the active_count field.
	namespace.DefaultActiveCount = namespaceDescActiveCount.Default.(int)
	// namespaceDescBlockedCount is the schema descriptor for blocked_count field.
	namespaceDescBlockedCount := namespaceFields[5].Descriptor()
	// namespace.DefaultBlockedCount holds the default value on creation for the blocked_count field.
	namespace.DefaultBlockedCount = namespaceDescBlockedCount.Default.(int)
	// namespaceDescCompleteCount is the schema descriptor for complete_count field.
	namespaceDescCompleteCount := namespaceFields[6].Descriptor()
	// namespace.DefaultCompleteCount holds the default value on creation for the complete_count field.
	namespace.DefaultCompleteCount = namespaceDescCompleteCount.Default.(int)
	// namespaceDescCreatedAt is the schema descriptor for created_at field.
	namespaceDescCreatedAt := namespaceFields[7].Descriptor()
	// namespace.DefaultCreatedAt holds the default value on creation for the created_at field.
	namespace.DefaultCreatedAt = namespaceDescCreatedAt.Default.(func() time.Time)
	// namespaceDescUpdatedAt is the schema descriptor for updated_at field.
	namespaceDescUpdatedAt := namespaceFields[8].Descriptor()
	// namespace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	namespace.DefaultUpdatedAt = namespaceDescUpdatedAt.Default.(func() time.Time)
	// namespace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	namespace.UpdateDefaultUpdatedAt = namespaceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
