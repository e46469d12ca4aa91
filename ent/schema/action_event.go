package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionEvent records a single user action. The table is append-only:
// events are never updated or deleted, and the log is the source of truth
// for streaks and lifetime totals.
type ActionEvent struct {
	ent.Schema
}

func (ActionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Profile this action belongs to"),
		field.String("action_type").
			NotEmpty().
			Immutable().
			Comment("One of the action.Type values"),
		field.String("idempotency_key").
			Optional().
			Unique().
			Immutable().
			Comment("Client-generated token; a repeated append with the same key is a no-op"),
	}
}

func (ActionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "action_type"),
	}
}
