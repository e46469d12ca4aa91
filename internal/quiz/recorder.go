package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/selah-app/selah/internal/action"
	"github.com/selah-app/selah/internal/store"
)

// Recorder is the write path for submitted answers. Each answer produces
// three writes, issued in a fixed order so a crash mid-way can only leave
// the lifetime counter behind the event log, never ahead of it:
//
//  1. upsert per-question correctness (last write wins)
//  2. append one qualifying action event, keyed for idempotence
//  3. increment the lifetime counter
//
// The counter is self-healing: quiz.Service.Reconcile recomputes it from
// the log when it has fallen behind.
type Recorder struct {
	events   store.EventRepo
	profiles store.ProfileRepo
	progress store.ProgressRepo
}

// NewRecorder creates a Recorder over the given repositories.
func NewRecorder(events store.EventRepo, profiles store.ProfileRepo, progress store.ProgressRepo) *Recorder {
	return &Recorder{events: events, profiles: profiles, progress: progress}
}

// RecordAnswer records one submitted answer with a fresh idempotency
// key. Use RecordAnswerKeyed when retrying a failed submission.
func (r *Recorder) RecordAnswer(ctx context.Context, userID, questionID, topic string, correct bool) error {
	return r.RecordAnswerKeyed(ctx, userID, questionID, topic, correct, uuid.New().String())
}

// RecordAnswerKeyed records one submitted answer under the given
// idempotency key. Replaying the same key is a no-op: the progress upsert
// is naturally idempotent, the event append detects the duplicate, and
// the counter increment is skipped so the event is never counted twice.
func (r *Recorder) RecordAnswerKeyed(ctx context.Context, userID, questionID, topic string, correct bool, key string) error {
	if err := r.progress.Upsert(ctx, userID, questionID, topic, correct); err != nil {
		return fmt.Errorf("record answer: %w", err)
	}

	err := r.events.AppendAction(ctx, store.ActionEventData{
		UserID:         userID,
		ActionType:     string(action.ForTopic(topic)),
		IdempotencyKey: key,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEvent) {
			return nil
		}
		return fmt.Errorf("record answer: %w", err)
	}

	if err := r.profiles.AddActions(ctx, userID, 1); err != nil {
		// The event is durable; the counter lags until reconciled.
		return fmt.Errorf("record answer: counter update: %w", err)
	}
	return nil
}
