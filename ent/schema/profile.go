package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile holds the per-user counter state. One row per user, created
// lazily on first read. The total_actions counter is kept consistent with
// the count of qualifying ActionEvents (it may lag the log after a partial
// write, never lead it; see store.ProfileRepo and quiz.Service.Reconcile).
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("total_actions").
			Default(0).
			Min(0).
			Comment("Lifetime count of qualifying actions"),
		field.Bool("is_paid").
			Default(false),
		field.Int("daily_credits").
			Default(0).
			Min(0).
			Comment("Remaining quiz sessions today for free profiles"),
		field.String("credit_date").
			Default("").
			Comment("Local calendar date (ISO) credits were last replenished"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
