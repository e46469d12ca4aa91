package store

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateEvent is returned by AppendAction when the idempotency key
// has already been recorded. Callers treat it as a successful no-op.
var ErrDuplicateEvent = errors.New("duplicate action event")

// ActionEventData captures one append to the action log.
type ActionEventData struct {
	UserID     string
	ActionType string
	// IdempotencyKey, when set, makes the append safely retryable: a
	// second append with the same key fails with ErrDuplicateEvent
	// instead of double-counting.
	IdempotencyKey string
	// Timestamp overrides the event instant when non-zero. Used by
	// imports and tests; live writers leave it zero.
	Timestamp time.Time
}

// ActionRecord is a single stored action event as read back for the
// calculators.
type ActionRecord struct {
	Sequence   int64
	Timestamp  time.Time
	ActionType string
}

// EventRepo provides append and read access to the append-only action
// log. Events are never updated or deleted.
type EventRepo interface {
	// AppendAction records one action event.
	AppendAction(ctx context.Context, data ActionEventData) error

	// EventsSince returns a user's events with timestamp >= since,
	// oldest first. Pass the zero time for full history.
	EventsSince(ctx context.Context, userID string, since time.Time) ([]ActionRecord, error)

	// CountQualifying counts a user's events whose type is in types,
	// over the full history. Used for lifetime totals and counter
	// reconciliation.
	CountQualifying(ctx context.Context, userID string, types []string) (int, error)

	// LatestActionTime returns the timestamp of the user's most recent
	// event, or the zero time if none exist.
	LatestActionTime(ctx context.Context, userID string) (time.Time, error)
}

// ProfileState is the per-user counter row.
type ProfileState struct {
	UserID       string
	TotalActions int
	IsPaid       bool
	DailyCredits int
	CreditDate   string
}

// ProfileRepo manages the per-user counter state. Rows are created lazily
// on first read and never deleted while the account exists.
type ProfileRepo interface {
	// GetOrCreate returns the profile for userID, creating it with
	// defaults if absent.
	GetOrCreate(ctx context.Context, userID string) (*ProfileState, error)

	// AddActions increments the lifetime counter by n.
	AddActions(ctx context.Context, userID string, n int) error

	// SetTotalActions overwrites the lifetime counter. Used only by
	// reconciliation against the event log.
	SetTotalActions(ctx context.Context, userID string, n int) error

	// SpendCredit decrements daily_credits by one. The caller checks the
	// balance first.
	SpendCredit(ctx context.Context, userID string) error

	// ReplenishCredits sets daily_credits and records the local date of
	// the replenish.
	ReplenishCredits(ctx context.Context, userID string, credits int, creditDate string) error

	// SetPaid flips the paid flag.
	SetPaid(ctx context.Context, userID string, paid bool) error
}

// ProgressRecord is one per-question progress row.
type ProgressRecord struct {
	QuestionID string
	Topic      string
	Correct    bool
	UpdatedAt  time.Time
}

// ProgressRepo manages per-question correctness. At most one record per
// (user, question); the last answer wins.
type ProgressRepo interface {
	// Upsert records the most recent answer for a question, overwriting
	// any prior correctness.
	Upsert(ctx context.Context, userID, questionID, topic string, correct bool) error

	// ForTopic returns all progress records for a user within a topic.
	ForTopic(ctx context.Context, userID, topic string) ([]ProgressRecord, error)

	// MasteredIDs returns the set of question IDs whose most recent
	// answer was correct, recomputed from current state.
	MasteredIDs(ctx context.Context, userID, topic string) (map[string]bool, error)
}
