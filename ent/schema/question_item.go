package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionItem is one practice question in the local question bank, used as
// the candidate pool backing store. Authoring happens outside this system;
// items arrive pre-filtered for eligibility via the seed pipeline.
type QuestionItem struct {
	ent.Schema
}

func (QuestionItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Unique().
			Comment("Stable external item identifier"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the item belongs to"),
		field.String("tier").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Audience-relevance tags"),
		field.Bool("active").
			Default(true).
			Comment("Inactive items never enter a candidate pool"),
	}
}

func (QuestionItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "tier"),
	}
}
