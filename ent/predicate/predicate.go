// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// QueryResult is the predicate function for queryresult builders.
type QueryResult func(*sql.Selector)
