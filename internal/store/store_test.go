package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/selah-app/selah/internal/action"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndReadBack(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, typ := range []action.Type{action.PersonLearned, action.NoteCreated, action.TriviaStarted} {
		err := repo.AppendAction(ctx, ActionEventData{
			UserID:     "u1",
			ActionType: string(typ),
		})
		if err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
	}

	events, err := repo.EventsSince(ctx, "u1", time.Time{})
	if err != nil {
		t.Fatalf("events since: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("event count = %d, want 3", len(events))
	}

	// Oldest first, strictly increasing sequence.
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}
}

func TestEventsSinceFiltersByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendAction(ctx, ActionEventData{UserID: "u1", ActionType: "note_created"})
	_ = repo.AppendAction(ctx, ActionEventData{UserID: "u2", ActionType: "note_created"})

	events, err := repo.EventsSince(ctx, "u1", time.Time{})
	if err != nil {
		t.Fatalf("events since: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("event count = %d, want 1", len(events))
	}
}

func TestIdempotentAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := ActionEventData{
		UserID:         "u1",
		ActionType:     "person_learned",
		IdempotencyKey: "answer-abc-123",
	}

	if err := repo.AppendAction(ctx, data); err != nil {
		t.Fatalf("first append: %v", err)
	}

	err := repo.AppendAction(ctx, data)
	if !errors.Is(err, ErrDuplicateEvent) {
		t.Fatalf("second append err = %v, want ErrDuplicateEvent", err)
	}

	events, err := repo.EventsSince(ctx, "u1", time.Time{})
	if err != nil {
		t.Fatalf("events since: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("event count = %d, want 1 (no double-count)", len(events))
	}
}

func TestAppendWithoutKeyNeverDuplicates(t *testing.T) {
	// Events without a key are allowed to repeat (legacy writers).
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := ActionEventData{UserID: "u1", ActionType: "note_created"}
	if err := repo.AppendAction(ctx, data); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := repo.AppendAction(ctx, data); err != nil {
		t.Fatalf("second append: %v", err)
	}
}

func TestCountQualifying(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendAction(ctx, ActionEventData{UserID: "u1", ActionType: "person_learned"})
	_ = repo.AppendAction(ctx, ActionEventData{UserID: "u1", ActionType: "note_created"})
	_ = repo.AppendAction(ctx, ActionEventData{UserID: "u1", ActionType: "trivia_started"})

	count, err := repo.CountQualifying(ctx, "u1", action.QualifyingStrings())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (trivia_started excluded)", count)
	}
}

func TestLatestActionTime(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ts, err := repo.LatestActionTime(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if !ts.IsZero() {
		t.Error("expected zero time with no events")
	}

	_ = repo.AppendAction(ctx, ActionEventData{UserID: "u1", ActionType: "note_created"})

	ts, err = repo.LatestActionTime(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero time after append")
	}
}
