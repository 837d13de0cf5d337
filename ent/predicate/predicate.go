// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// QuestionItem is the predicate function for questionitem builders.
type QuestionItem func(*sql.Selector)

// SequenceEvent is the predicate function for sequenceevent builders.
type SequenceEvent func(*sql.Selector)
