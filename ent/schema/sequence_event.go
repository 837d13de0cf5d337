package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SequenceEvent records one completed sequence generation pass: which items
// were served, in order, and the proficiency estimate the pass was built
// against. Recent passes feed the novelty criterion on later builds.
type SequenceEvent struct {
	ent.Schema
}

func (SequenceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SequenceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("pass_id").
			NotEmpty().
			Unique().
			Comment("UUID of the generation pass"),
		field.String("learner_id").
			NotEmpty().
			Comment("Learner the sequence was built for"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the sequence covers"),
		field.Float("level").
			Comment("Proficiency estimate at build time"),
		field.JSON("item_ids", []string{}).
			Comment("Served item IDs in sequence order"),
		field.Int("item_count").
			Comment("Number of items served"),
	}
}

func (SequenceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "topic"),
	}
}
