// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dparikh/prepdrill/ent/sequenceevent"
)

// SequenceEvent is the model entity for the SequenceEvent schema.
type SequenceEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the generation pass
	PassID string `json:"pass_id,omitempty"`
	// Learner the sequence was built for
	LearnerID string `json:"learner_id,omitempty"`
	// Topic the sequence covers
	Topic string `json:"topic,omitempty"`
	// Proficiency estimate at build time
	Level float64 `json:"level,omitempty"`
	// Served item IDs in sequence order
	ItemIds []string `json:"item_ids,omitempty"`
	// Number of items served
	ItemCount    int `json:"item_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SequenceEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sequenceevent.FieldItemIds:
			values[i] = new([]byte)
		case sequenceevent.FieldLevel:
			values[i] = new(sql.NullFloat64)
		case sequenceevent.FieldID, sequenceevent.FieldSequence, sequenceevent.FieldItemCount:
			values[i] = new(sql.NullInt64)
		case sequenceevent.FieldPassID, sequenceevent.FieldLearnerID, sequenceevent.FieldTopic:
			values[i] = new(sql.NullString)
		case sequenceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SequenceEvent fields.
func (_m *SequenceEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sequenceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sequenceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sequenceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sequenceevent.FieldPassID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pass_id", values[i])
			} else if value.Valid {
				_m.PassID = value.String
			}
		case sequenceevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case sequenceevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case sequenceevent.FieldLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.Float64
			}
		case sequenceevent.FieldItemIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field item_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ItemIds); err != nil {
					return fmt.Errorf("unmarshal field item_ids: %w", err)
				}
			}
		case sequenceevent.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SequenceEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SequenceEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SequenceEvent.
// Note that you need to call SequenceEvent.Unwrap() before calling this method if this SequenceEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SequenceEvent) Update() *SequenceEventUpdateOne {
	return NewSequenceEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SequenceEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SequenceEvent) Unwrap() *SequenceEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SequenceEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SequenceEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SequenceEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("pass_id=")
	builder.WriteString(_m.PassID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("item_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemIds))
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteByte(')')
	return builder.String()
}

// SequenceEvents is a parsable slice of SequenceEvent.
type SequenceEvents []*SequenceEvent
