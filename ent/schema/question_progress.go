package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionProgress tracks the most recent answer per (user, question).
// At most one row exists per pair; a re-answer overwrites correctness
// (last-write-wins), so mastery is always recomputed from current state.
type QuestionProgress struct {
	ent.Schema
}

func (QuestionProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Comment("Question bank topic the question belongs to"),
		field.Bool("correct").
			Comment("Whether the most recent answer was correct"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (QuestionProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").Unique(),
		index.Fields("user_id", "topic"),
	}
}
