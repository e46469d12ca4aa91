// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/selah-app/selah/ent/actionevent"
	"github.com/selah-app/selah/ent/profile"
	"github.com/selah-app/selah/ent/questionprogress"
	"github.com/selah-app/selah/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actioneventMixin := schema.ActionEvent{}.Mixin()
	actioneventMixinFields0 := actioneventMixin[0].Fields()
	_ = actioneventMixinFields0
	actioneventFields := schema.ActionEvent{}.Fields()
	_ = actioneventFields
	// actioneventDescTimestamp is the schema descriptor for timestamp field.
	actioneventDescTimestamp := actioneventMixinFields0[1].Descriptor()
	// actionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	actionevent.DefaultTimestamp = actioneventDescTimestamp.Default.(func() time.Time)
	// actioneventDescUserID is the schema descriptor for user_id field.
	actioneventDescUserID := actioneventFields[0].Descriptor()
	// actionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	actionevent.UserIDValidator = actioneventDescUserID.Validators[0].(func(string) error)
	// actioneventDescActionType is the schema descriptor for action_type field.
	actioneventDescActionType := actioneventFields[1].Descriptor()
	// actionevent.ActionTypeValidator is a validator for the "action_type" field. It is called by the builders before save.
	actionevent.ActionTypeValidator = actioneventDescActionType.Validators[0].(func(string) error)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescTotalActions is the schema descriptor for total_actions field.
	profileDescTotalActions := profileFields[1].Descriptor()
	// profile.DefaultTotalActions holds the default value on creation for the total_actions field.
	profile.DefaultTotalActions = profileDescTotalActions.Default.(int)
	// profile.TotalActionsValidator is a validator for the "total_actions" field. It is called by the builders before save.
	profile.TotalActionsValidator = profileDescTotalActions.Validators[0].(func(int) error)
	// profileDescIsPaid is the schema descriptor for is_paid field.
	profileDescIsPaid := profileFields[2].Descriptor()
	// profile.DefaultIsPaid holds the default value on creation for the is_paid field.
	profile.DefaultIsPaid = profileDescIsPaid.Default.(bool)
	// profileDescDailyCredits is the schema descriptor for daily_credits field.
	profileDescDailyCredits := profileFields[3].Descriptor()
	// profile.DefaultDailyCredits holds the default value on creation for the daily_credits field.
	profile.DefaultDailyCredits = profileDescDailyCredits.Default.(int)
	// profile.DailyCreditsValidator is a validator for the "daily_credits" field. It is called by the builders before save.
	profile.DailyCreditsValidator = profileDescDailyCredits.Validators[0].(func(int) error)
	// profileDescCreditDate is the schema descriptor for credit_date field.
	profileDescCreditDate := profileFields[4].Descriptor()
	// profile.DefaultCreditDate holds the default value on creation for the credit_date field.
	profile.DefaultCreditDate = profileDescCreditDate.Default.(string)
	questionprogressFields := schema.QuestionProgress{}.Fields()
	_ = questionprogressFields
	// questionprogressDescUserID is the schema descriptor for user_id field.
	questionprogressDescUserID := questionprogressFields[0].Descriptor()
	// questionprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	questionprogress.UserIDValidator = questionprogressDescUserID.Validators[0].(func(string) error)
	// questionprogressDescQuestionID is the schema descriptor for question_id field.
	questionprogressDescQuestionID := questionprogressFields[1].Descriptor()
	// questionprogress.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionprogress.QuestionIDValidator = questionprogressDescQuestionID.Validators[0].(func(string) error)
	// questionprogressDescTopic is the schema descriptor for topic field.
	questionprogressDescTopic := questionprogressFields[2].Descriptor()
	// questionprogress.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	questionprogress.TopicValidator = questionprogressDescTopic.Validators[0].(func(string) error)
	// questionprogressDescUpdatedAt is the schema descriptor for updated_at field.
	questionprogressDescUpdatedAt := questionprogressFields[4].Descriptor()
	// questionprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	questionprogress.DefaultUpdatedAt = questionprogressDescUpdatedAt.Default.(func() time.Time)
	// questionprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	questionprogress.UpdateDefaultUpdatedAt = questionprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
}
