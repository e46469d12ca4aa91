// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionEvent is the predicate function for actionevent builders.
type ActionEvent func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// QuestionProgress is the predicate function for questionprogress builders.
type QuestionProgress func(*sql.Selector)
