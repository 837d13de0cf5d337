package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered practice question.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner who answered"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the question belongs to"),
		field.String("tier").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds spent answering"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "topic"),
		index.Fields("topic"),
	}
}
