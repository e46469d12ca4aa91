package store

import (
	"context"
	"testing"
)

func TestUpsertLastWriteWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, "u1", "people-001", "people", true); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, "u1", "people-001", "people", false); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.ForTopic(ctx, "u1", "people")
	if err != nil {
		t.Fatalf("for topic: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1 (one record per question)", len(rows))
	}
	if rows[0].Correct {
		t.Error("correct = true, want false (last write wins)")
	}
}

func TestMasteredIDsRecomputed(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	_ = repo.Upsert(ctx, "u1", "people-001", "people", true)
	_ = repo.Upsert(ctx, "u1", "people-002", "people", false)
	_ = repo.Upsert(ctx, "u1", "people-003", "people", true)

	mastered, err := repo.MasteredIDs(ctx, "u1", "people")
	if err != nil {
		t.Fatalf("mastered: %v", err)
	}
	if len(mastered) != 2 || !mastered["people-001"] || !mastered["people-003"] {
		t.Errorf("mastered = %v", mastered)
	}

	// A later wrong answer removes the question from the mastered set.
	_ = repo.Upsert(ctx, "u1", "people-001", "people", false)
	mastered, _ = repo.MasteredIDs(ctx, "u1", "people")
	if mastered["people-001"] {
		t.Error("people-001 should no longer be mastered after a wrong answer")
	}
}

func TestMasteredIDsScopedByUserAndTopic(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	_ = repo.Upsert(ctx, "u1", "people-001", "people", true)
	_ = repo.Upsert(ctx, "u2", "people-002", "people", true)
	_ = repo.Upsert(ctx, "u1", "places-001", "places", true)

	mastered, err := repo.MasteredIDs(ctx, "u1", "people")
	if err != nil {
		t.Fatalf("mastered: %v", err)
	}
	if len(mastered) != 1 || !mastered["people-001"] {
		t.Errorf("mastered = %v, want only people-001", mastered)
	}
}
