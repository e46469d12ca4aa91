// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTotalActions holds the string denoting the total_actions field in the database.
	FieldTotalActions = "total_actions"
	// FieldIsPaid holds the string denoting the is_paid field in the database.
	FieldIsPaid = "is_paid"
	// FieldDailyCredits holds the string denoting the daily_credits field in the database.
	FieldDailyCredits = "daily_credits"
	// FieldCreditDate holds the string denoting the credit_date field in the database.
	FieldCreditDate = "credit_date"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTotalActions,
	FieldIsPaid,
	FieldDailyCredits,
	FieldCreditDate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultTotalActions holds the default value on creation for the "total_actions" field.
	DefaultTotalActions int
	// TotalActionsValidator is a validator for the "total_actions" field. It is called by the builders before save.
	TotalActionsValidator func(int) error
	// DefaultIsPaid holds the default value on creation for the "is_paid" field.
	DefaultIsPaid bool
	// DefaultDailyCredits holds the default value on creation for the "daily_credits" field.
	DefaultDailyCredits int
	// DailyCreditsValidator is a validator for the "daily_credits" field. It is called by the builders before save.
	DailyCreditsValidator func(int) error
	// DefaultCreditDate holds the default value on creation for the "credit_date" field.
	DefaultCreditDate string
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTotalActions orders the results by the total_actions field.
func ByTotalActions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalActions, opts...).ToFunc()
}

// ByIsPaid orders the results by the is_paid field.
func ByIsPaid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPaid, opts...).ToFunc()
}

// ByDailyCredits orders the results by the daily_credits field.
func ByDailyCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyCredits, opts...).ToFunc()
}

// ByCreditDate orders the results by the credit_date field.
func ByCreditDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditDate, opts...).ToFunc()
}
