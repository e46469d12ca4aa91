package store

import (
	"context"
	"fmt"
	"time"

	"github.com/selah-app/selah/ent"
	"github.com/selah-app/selah/ent/actionevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAction(ctx context.Context, data ActionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	builder := r.client.ActionEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(ts.UTC()).
		SetUserID(data.UserID).
		SetActionType(data.ActionType)

	if data.IdempotencyKey != "" {
		builder = builder.SetIdempotencyKey(data.IdempotencyKey)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && data.IdempotencyKey != "" {
			return fmt.Errorf("idempotency key %s: %w", data.IdempotencyKey, ErrDuplicateEvent)
		}
		return fmt.Errorf("save action event: %w", err)
	}
	return nil
}

func (r *eventRepo) EventsSince(ctx context.Context, userID string, since time.Time) ([]ActionRecord, error) {
	query := r.client.ActionEvent.Query().
		Where(actionevent.UserID(userID)).
		Order(ent.Asc(actionevent.FieldSequence))

	if !since.IsZero() {
		query = query.Where(actionevent.TimestampGTE(since))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query action events: %w", err)
	}

	records := make([]ActionRecord, len(events))
	for i, e := range events {
		records[i] = ActionRecord{
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
			ActionType: e.ActionType,
		}
	}
	return records, nil
}

func (r *eventRepo) CountQualifying(ctx context.Context, userID string, types []string) (int, error) {
	count, err := r.client.ActionEvent.Query().
		Where(
			actionevent.UserID(userID),
			actionevent.ActionTypeIn(types...),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count qualifying events: %w", err)
	}
	return count, nil
}

func (r *eventRepo) LatestActionTime(ctx context.Context, userID string) (time.Time, error) {
	e, err := r.client.ActionEvent.Query().
		Where(actionevent.UserID(userID)).
		Order(ent.Desc(actionevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest action time: %w", err)
	}
	return e.Timestamp, nil
}
