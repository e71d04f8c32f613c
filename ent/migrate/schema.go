// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "assignment_id", Type: field.TypeString, Unique: true},
		{Name: "north_star", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "blocked", "complete"}, Default: "pending"},
		{Name: "independent", Type: field.TypeBool, Default: false},
		{Name: "priority", Type: field.TypeInt, Default: 10},
		{Name: "artifacts", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "decisions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "blocked_reason", Type: field.TypeString, Nullable: true},
		{Name: "alignment_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"aligned", "uncertain", "misaligned"}},
		{Name: "head_group_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "namespace_id", Type: field.TypeString},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignments_namespaces_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[12]},
				RefColumns: []*schema.Column{NamespacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_namespace_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[12]},
			},
			{
				Name:    "assignment_namespace_id_status",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[12], AssignmentsColumns[2]},
			},
			{
				Name:    "assignment_status",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[2]},
			},
		},
	}
	// ChatJobsColumns holds the columns for the "chat_jobs" table.
	ChatJobsColumns = []*schema.Column{
		{Name: "chat_job_id", Type: field.TypeString, Unique: true},
		{Name: "harness", Type: field.TypeEnum, Enums: []string{"claude", "codex", "gemini"}, Default: "claude"},
		{Name: "context", Type: field.TypeString, Size: 2147483647},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "complete", "failed"}, Default: "pending"},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "tool_call_count", Type: field.TypeInt, Default: 0},
		{Name: "subagent_count", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "last_event_at", Type: field.TypeTime, Nullable: true},
		{Name: "exit_forced", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "namespace_id", Type: field.TypeString},
	}
	// ChatJobsTable holds the schema information for the "chat_jobs" table.
	ChatJobsTable = &schema.Table{
		Name:       "chat_jobs",
		Columns:    ChatJobsColumns,
		PrimaryKey: []*schema.Column{ChatJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_jobs_chat_threads_chat_jobs",
				Columns:    []*schema.Column{ChatJobsColumns[15]},
				RefColumns: []*schema.Column{ChatThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "chat_jobs_namespaces_chat_jobs",
				Columns:    []*schema.Column{ChatJobsColumns[16]},
				RefColumns: []*schema.Column{NamespacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatjob_namespace_id",
				Unique:  false,
				Columns: []*schema.Column{ChatJobsColumns[16]},
			},
			{
				Name:    "chatjob_status",
				Unique:  false,
				Columns: []*schema.Column{ChatJobsColumns[4]},
			},
			{
				Name:    "chatjob_namespace_id_status",
				Unique:  false,
				Columns: []*schema.Column{ChatJobsColumns[16], ChatJobsColumns[4]},
			},
			{
				Name:    "chatjob_thread_id",
				Unique:  false,
				Columns: []*schema.Column{ChatJobsColumns[15]},
			},
			{
				Name:    "chatjob_thread_id_status",
				Unique:  false,
				Columns: []*schema.Column{ChatJobsColumns[15], ChatJobsColumns[4]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "pm"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "hint", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chat_threads_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[5]},
				RefColumns: []*schema.Column{ChatThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_thread_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5]},
			},
			{
				Name:    "chatmessage_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5], ChatMessagesColumns[4]},
			},
		},
	}
	// ChatThreadsColumns holds the columns for the "chat_threads" table.
	ChatThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"jam", "cook", "guardian"}, Default: "jam"},
		{Name: "last_prompt_mode", Type: field.TypeEnum, Nullable: true, Enums: []string{"jam", "cook"}},
		{Name: "claude_session_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "assignment_id", Type: field.TypeString, Nullable: true},
		{Name: "namespace_id", Type: field.TypeString},
	}
	// ChatThreadsTable holds the schema information for the "chat_threads" table.
	ChatThreadsTable = &schema.Table{
		Name:       "chat_threads",
		Columns:    ChatThreadsColumns,
		PrimaryKey: []*schema.Column{ChatThreadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_threads_assignments_chat_threads",
				Columns:    []*schema.Column{ChatThreadsColumns[7]},
				RefColumns: []*schema.Column{AssignmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "chat_threads_namespaces_chat_threads",
				Columns:    []*schema.Column{ChatThreadsColumns[8]},
				RefColumns: []*schema.Column{NamespacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatthread_namespace_id",
				Unique:  false,
				Columns: []*schema.Column{ChatThreadsColumns[8]},
			},
			{
				Name:    "chatthread_namespace_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ChatThreadsColumns[8], ChatThreadsColumns[6]},
			},
			{
				Name:    "chatthread_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{ChatThreadsColumns[7]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "job_type", Type: field.TypeString},
		{Name: "harness", Type: field.TypeEnum, Enums: []string{"claude", "codex", "gemini"}},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "complete", "failed"}, Default: "pending"},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "tool_call_count", Type: field.TypeInt, Default: 0},
		{Name: "subagent_count", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "last_event_at", Type: field.TypeTime, Nullable: true},
		{Name: "exit_forced", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_job_groups_jobs",
				Columns:    []*schema.Column{JobsColumns[16]},
				RefColumns: []*schema.Column{JobGroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_group_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[16]},
			},
			{
				Name:    "job_group_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[16], JobsColumns[5]},
			},
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
		},
	}
	// JobGroupsColumns holds the columns for the "job_groups" table.
	JobGroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "next_group_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "complete", "failed"}, Default: "pending"},
		{Name: "aggregated_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "assignment_id", Type: field.TypeString},
	}
	// JobGroupsTable holds the schema information for the "job_groups" table.
	JobGroupsTable = &schema.Table{
		Name:       "job_groups",
		Columns:    JobGroupsColumns,
		PrimaryKey: []*schema.Column{JobGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_groups_assignments_groups",
				Columns:    []*schema.Column{JobGroupsColumns[6]},
				RefColumns: []*schema.Column{AssignmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobgroup_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{JobGroupsColumns[6]},
			},
			{
				Name:    "jobgroup_assignment_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobGroupsColumns[6], JobGroupsColumns[2]},
			},
			{
				Name:    "jobgroup_status",
				Unique:  false,
				Columns: []*schema.Column{JobGroupsColumns[2]},
			},
		},
	}
	// NamespacesColumns holds the columns for the "namespaces" table.
	NamespacesColumns = []*schema.Column{
		{Name: "namespace_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "pending_count", Type: field.TypeInt, Default: 0},
		{Name: "active_count", Type: field.TypeInt, Default: 0},
		{Name: "blocked_count", Type: field.TypeInt, Default: 0},
		{Name: "complete_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NamespacesTable holds the schema information for the "namespaces" table.
	NamespacesTable = &schema.Table{
		Name:       "namespaces",
		Columns:    NamespacesColumns,
		PrimaryKey: []*schema.Column{NamespacesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "namespace_name",
				Unique:  true,
				Columns: []*schema.Column{NamespacesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentsTable,
		ChatJobsTable,
		ChatMessagesTable,
		ChatThreadsTable,
		EventsTable,
		JobsTable,
		JobGroupsTable,
		NamespacesTable,
	}
)

func init() {
	AssignmentsTable.ForeignKeys[0].RefTable = NamespacesTable
	ChatJobsTable.ForeignKeys[0].RefTable = ChatThreadsTable
	ChatJobsTable.ForeignKeys[1].RefTable = NamespacesTable
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatThreadsTable
	ChatThreadsTable.ForeignKeys[0].RefTable = AssignmentsTable
	ChatThreadsTable.ForeignKeys[1].RefTable = NamespacesTable
	JobsTable.ForeignKeys[0].RefTable = JobGroupsTable
	JobGroupsTable.ForeignKeys[0].RefTable = AssignmentsTable
}
