// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_topic",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// QuestionItemsColumns holds the columns for the "question_items" table.
	QuestionItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// QuestionItemsTable holds the schema information for the "question_items" table.
	QuestionItemsTable = &schema.Table{
		Name:       "question_items",
		Columns:    QuestionItemsColumns,
		PrimaryKey: []*schema.Column{QuestionItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionitem_topic_tier",
				Unique:  false,
				Columns: []*schema.Column{QuestionItemsColumns[2], QuestionItemsColumns[3]},
			},
		},
	}
	// SequenceEventsColumns holds the columns for the "sequence_events" table.
	SequenceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "pass_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "level", Type: field.TypeFloat64},
		{Name: "item_ids", Type: field.TypeJSON},
		{Name: "item_count", Type: field.TypeInt},
	}
	// SequenceEventsTable holds the schema information for the "sequence_events" table.
	SequenceEventsTable = &schema.Table{
		Name:       "sequence_events",
		Columns:    SequenceEventsColumns,
		PrimaryKey: []*schema.Column{SequenceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sequenceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SequenceEventsColumns[1]},
			},
			{
				Name:    "sequenceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SequenceEventsColumns[2]},
			},
			{
				Name:    "sequenceevent_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{SequenceEventsColumns[4], SequenceEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		QuestionItemsTable,
		SequenceEventsTable,
	}
)

func init() {
}
