package store

import (
	"context"
	"fmt"

	"github.com/selah-app/selah/ent"
	"github.com/selah-app/selah/ent/questionprogress"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Upsert(ctx context.Context, userID, questionID, topic string, correct bool) error {
	existing, err := r.client.QuestionProgress.Query().
		Where(
			questionprogress.UserID(userID),
			questionprogress.QuestionID(questionID),
		).
		Only(ctx)
	if err == nil {
		_, err = r.client.QuestionProgress.UpdateOne(existing).
			SetTopic(topic).
			SetCorrect(correct).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update question progress: %w", err)
		}
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("query question progress: %w", err)
	}

	_, err = r.client.QuestionProgress.Create().
		SetUserID(userID).
		SetQuestionID(questionID).
		SetTopic(topic).
		SetCorrect(correct).
		Save(ctx)
	if err != nil {
		// Concurrent first answers to the same question: last write
		// wins, so retry as an update.
		if ent.IsConstraintError(err) {
			return r.Upsert(ctx, userID, questionID, topic, correct)
		}
		return fmt.Errorf("create question progress: %w", err)
	}
	return nil
}

func (r *progressRepo) ForTopic(ctx context.Context, userID, topic string) ([]ProgressRecord, error) {
	rows, err := r.client.QuestionProgress.Query().
		Where(
			questionprogress.UserID(userID),
			questionprogress.Topic(topic),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question progress: %w", err)
	}

	records := make([]ProgressRecord, len(rows))
	for i, row := range rows {
		records[i] = ProgressRecord{
			QuestionID: row.QuestionID,
			Topic:      row.Topic,
			Correct:    row.Correct,
			UpdatedAt:  row.UpdatedAt,
		}
	}
	return records, nil
}

func (r *progressRepo) MasteredIDs(ctx context.Context, userID, topic string) (map[string]bool, error) {
	rows, err := r.client.QuestionProgress.Query().
		Where(
			questionprogress.UserID(userID),
			questionprogress.Topic(topic),
			questionprogress.Correct(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastered questions: %w", err)
	}

	mastered := make(map[string]bool, len(rows))
	for _, row := range rows {
		mastered[row.QuestionID] = true
	}
	return mastered, nil
}
