// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// ChatJob is the predicate function for chatjob builders.
type ChatJob func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatThread is the predicate function for chatthread builders.
type ChatThread func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobGroup is the predicate function for jobgroup builders.
type JobGroup func(*sql.Selector)

// Namespace is the predicate function for namespace builders.
type Namespace func(*sql.Selector)
