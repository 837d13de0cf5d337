// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dparikh/prepdrill/ent/attemptevent"
	"github.com/dparikh/prepdrill/ent/questionitem"
	"github.com/dparikh/prepdrill/ent/schema"
	"github.com/dparikh/prepdrill/ent/sequenceevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[0].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescTopic is the schema descriptor for topic field.
	attempteventDescTopic := attempteventFields[1].Descriptor()
	// attemptevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attemptevent.TopicValidator = attempteventDescTopic.Validators[0].(func(string) error)
	// attempteventDescTier is the schema descriptor for tier field.
	attempteventDescTier := attempteventFields[2].Descriptor()
	// attemptevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	attemptevent.TierValidator = attempteventDescTier.Validators[0].(func(string) error)
	questionitemFields := schema.QuestionItem{}.Fields()
	_ = questionitemFields
	// questionitemDescItemID is the schema descriptor for item_id field.
	questionitemDescItemID := questionitemFields[0].Descriptor()
	// questionitem.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	questionitem.ItemIDValidator = questionitemDescItemID.Validators[0].(func(string) error)
	// questionitemDescTopic is the schema descriptor for topic field.
	questionitemDescTopic := questionitemFields[1].Descriptor()
	// questionitem.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	questionitem.TopicValidator = questionitemDescTopic.Validators[0].(func(string) error)
	// questionitemDescTier is the schema descriptor for tier field.
	questionitemDescTier := questionitemFields[2].Descriptor()
	// questionitem.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	questionitem.TierValidator = questionitemDescTier.Validators[0].(func(string) error)
	// questionitemDescActive is the schema descriptor for active field.
	questionitemDescActive := questionitemFields[4].Descriptor()
	// questionitem.DefaultActive holds the default value on creation for the active field.
	questionitem.DefaultActive = questionitemDescActive.Default.(bool)
	sequenceeventMixin := schema.SequenceEvent{}.Mixin()
	sequenceeventMixinFields0 := sequenceeventMixin[0].Fields()
	_ = sequenceeventMixinFields0
	sequenceeventFields := schema.SequenceEvent{}.Fields()
	_ = sequenceeventFields
	// sequenceeventDescTimestamp is the schema descriptor for timestamp field.
	sequenceeventDescTimestamp := sequenceeventMixinFields0[1].Descriptor()
	// sequenceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sequenceevent.DefaultTimestamp = sequenceeventDescTimestamp.Default.(func() time.Time)
	// sequenceeventDescPassID is the schema descriptor for pass_id field.
	sequenceeventDescPassID := sequenceeventFields[0].Descriptor()
	// sequenceevent.PassIDValidator is a validator for the "pass_id" field. It is called by the builders before save.
	sequenceevent.PassIDValidator = sequenceeventDescPassID.Validators[0].(func(string) error)
	// sequenceeventDescLearnerID is the schema descriptor for learner_id field.
	sequenceeventDescLearnerID := sequenceeventFields[1].Descriptor()
	// sequenceevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sequenceevent.LearnerIDValidator = sequenceeventDescLearnerID.Validators[0].(func(string) error)
	// sequenceeventDescTopic is the schema descriptor for topic field.
	sequenceeventDescTopic := sequenceeventFields[2].Descriptor()
	// sequenceevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sequenceevent.TopicValidator = sequenceeventDescTopic.Validators[0].(func(string) error)
}
