// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
	"github.com/selah-app/selah/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// TotalActions applies equality check predicate on the "total_actions" field. It's identical to TotalActionsEQ.
func TotalActions(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalActions, v))
}

// IsPaid applies equality check predicate on the "is_paid" field. It's identical to IsPaidEQ.
func IsPaid(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldIsPaid, v))
}

// DailyCredits applies equality check predicate on the "daily_credits" field. It's identical to DailyCreditsEQ.
func DailyCredits(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyCredits, v))
}

// CreditDate applies equality check predicate on the "credit_date" field. It's identical to CreditDateEQ.
func CreditDate(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreditDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldUserID, v))
}

// TotalActionsEQ applies the EQ predicate on the "total_actions" field.
func TotalActionsEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalActions, v))
}

// TotalActionsNEQ applies the NEQ predicate on the "total_actions" field.
func TotalActionsNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTotalActions, v))
}

// TotalActionsIn applies the In predicate on the "total_actions" field.
func TotalActionsIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTotalActions, vs...))
}

// TotalActionsNotIn applies the NotIn predicate on the "total_actions" field.
func TotalActionsNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTotalActions, vs...))
}

// TotalActionsGT applies the GT predicate on the "total_actions" field.
func TotalActionsGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTotalActions, v))
}

// TotalActionsGTE applies the GTE predicate on the "total_actions" field.
func TotalActionsGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTotalActions, v))
}

// TotalActionsLT applies the LT predicate on the "total_actions" field.
func TotalActionsLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTotalActions, v))
}

// TotalActionsLTE applies the LTE predicate on the "total_actions" field.
func TotalActionsLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTotalActions, v))
}

// IsPaidEQ applies the EQ predicate on the "is_paid" field.
func IsPaidEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldIsPaid, v))
}

// IsPaidNEQ applies the NEQ predicate on the "is_paid" field.
func IsPaidNEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldIsPaid, v))
}

// DailyCreditsEQ applies the EQ predicate on the "daily_credits" field.
func DailyCreditsEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyCredits, v))
}

// DailyCreditsNEQ applies the NEQ predicate on the "daily_credits" field.
func DailyCreditsNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDailyCredits, v))
}

// DailyCreditsIn applies the In predicate on the "daily_credits" field.
func DailyCreditsIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDailyCredits, vs...))
}

// DailyCreditsNotIn applies the NotIn predicate on the "daily_credits" field.
func DailyCreditsNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDailyCredits, vs...))
}

// DailyCreditsGT applies the GT predicate on the "daily_credits" field.
func DailyCreditsGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDailyCredits, v))
}

// DailyCreditsGTE applies the GTE predicate on the "daily_credits" field.
func DailyCreditsGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDailyCredits, v))
}

// DailyCreditsLT applies the LT predicate on the "daily_credits" field.
func DailyCreditsLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDailyCredits, v))
}

// DailyCreditsLTE applies the LTE predicate on the "daily_credits" field.
func DailyCreditsLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDailyCredits, v))
}

// CreditDateEQ applies the EQ predicate on the "credit_date" field.
func CreditDateEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreditDate, v))
}

// CreditDateNEQ applies the NEQ predicate on the "credit_date" field.
func CreditDateNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCreditDate, v))
}

// CreditDateIn applies the In predicate on the "credit_date" field.
func CreditDateIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCreditDate, vs...))
}

// CreditDateNotIn applies the NotIn predicate on the "credit_date" field.
func CreditDateNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCreditDate, vs...))
}

// CreditDateGT applies the GT predicate on the "credit_date" field.
func CreditDateGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCreditDate, v))
}

// CreditDateGTE applies the GTE predicate on the "credit_date" field.
func CreditDateGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCreditDate, v))
}

// CreditDateLT applies the LT predicate on the "credit_date" field.
func CreditDateLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCreditDate, v))
}

// CreditDateLTE applies the LTE predicate on the "credit_date" field.
func CreditDateLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCreditDate, v))
}

// CreditDateContains applies the Contains predicate on the "credit_date" field.
func CreditDateContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldCreditDate, v))
}

// CreditDateHasPrefix applies the HasPrefix predicate on the "credit_date" field.
func CreditDateHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldCreditDate, v))
}

// CreditDateHasSuffix applies the HasSuffix predicate on the "credit_date" field.
func CreditDateHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldCreditDate, v))
}

// CreditDateEqualFold applies the EqualFold predicate on the "credit_date" field.
func CreditDateEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldCreditDate, v))
}

// CreditDateContainsFold applies the ContainsFold predicate on the "credit_date" field.
func CreditDateContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldCreditDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
