// Code generated by ent, DO NOT EDIT.

package sequenceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dparikh/prepdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PassID applies equality check predicate on the "pass_id" field. It's identical to PassIDEQ.
func PassID(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldPassID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldTopic, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldLevel, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldItemCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PassIDEQ applies the EQ predicate on the "pass_id" field.
func PassIDEQ(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldPassID, v))
}

// PassIDNEQ applies the NEQ predicate on the "pass_id" field.
func PassIDNEQ(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNEQ(FieldPassID, v))
}

// PassIDIn applies the In predicate on the "pass_id" field.
func PassIDIn(vs ...string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldIn(FieldPassID, vs...))
}

// PassIDNotIn applies the NotIn predicate on the "pass_id" field.
func PassIDNotIn(vs ...string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNotIn(FieldPassID, vs...))
}

// PassIDGT applies the GT predicate on the "pass_id" field.
func PassIDGT(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGT(FieldPassID, v))
}

// PassIDGTE applies the GTE predicate on the "pass_id" field.
func PassIDGTE(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGTE(FieldPassID, v))
}

// PassIDLT applies the LT predicate on the "pass_id" field.
func PassIDLT(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLT(FieldPassID, v))
}

// PassIDLTE applies the LTE predicate on the "pass_id" field.
func PassIDLTE(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLTE(FieldPassID, v))
}

// PassIDContains applies the Contains predicate on the "pass_id" field.
func PassIDContains(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldContains(FieldPassID, v))
}

// PassIDHasPrefix applies the HasPrefix predicate on the "pass_id" field.
func PassIDHasPrefix(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldHasPrefix(FieldPassID, v))
}

// PassIDHasSuffix applies the HasSuffix predicate on the "pass_id" field.
func PassIDHasSuffix(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldHasSuffix(FieldPassID, v))
}

// PassIDEqualFold applies the EqualFold predicate on the "pass_id" field.
func PassIDEqualFold(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEqualFold(FieldPassID, v))
}

// PassIDContainsFold applies the ContainsFold predicate on the "pass_id" field.
func PassIDContainsFold(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldContainsFold(FieldPassID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldContainsFold(FieldTopic, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v float64) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLTE(FieldLevel, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.FieldLTE(FieldItemCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SequenceEvent) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SequenceEvent) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SequenceEvent) predicate.SequenceEvent {
	return predicate.SequenceEvent(sql.NotPredicates(p))
}
