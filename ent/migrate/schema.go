// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionEventsColumns holds the columns for the "action_events" table.
	ActionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action_type", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// ActionEventsTable holds the schema information for the "action_events" table.
	ActionEventsTable = &schema.Table{
		Name:       "action_events",
		Columns:    ActionEventsColumns,
		PrimaryKey: []*schema.Column{ActionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[1]},
			},
			{
				Name:    "actionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[2]},
			},
			{
				Name:    "actionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[3]},
			},
			{
				Name:    "actionevent_user_id_action_type",
				Unique:  false,
				Columns: []*schema.Column{ActionEventsColumns[3], ActionEventsColumns[4]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "total_actions", Type: field.TypeInt, Default: 0},
		{Name: "is_paid", Type: field.TypeBool, Default: false},
		{Name: "daily_credits", Type: field.TypeInt, Default: 0},
		{Name: "credit_date", Type: field.TypeString, Default: ""},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// QuestionProgressesColumns holds the columns for the "question_progresses" table.
	QuestionProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuestionProgressesTable holds the schema information for the "question_progresses" table.
	QuestionProgressesTable = &schema.Table{
		Name:       "question_progresses",
		Columns:    QuestionProgressesColumns,
		PrimaryKey: []*schema.Column{QuestionProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionprogress_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{QuestionProgressesColumns[1], QuestionProgressesColumns[2]},
			},
			{
				Name:    "questionprogress_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{QuestionProgressesColumns[1], QuestionProgressesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionEventsTable,
		ProfilesTable,
		QuestionProgressesTable,
	}
)

func init() {
}
