package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/selah-app/selah/internal/bank"
)

func TestRecordAnswerRoundTrip(t *testing.T) {
	svc, st := newTestService(t, func() time.Time { return fixedNow })
	rec := svc.Recorder()
	ctx := context.Background()

	qs, err := bank.Get("people")
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	mastered := qs[0]

	if err := rec.RecordAnswer(ctx, "u1", mastered.ID, "people", true); err != nil {
		t.Fatalf("record: %v", err)
	}

	// The mastered question drops out of the next session.
	sess, err := svc.StartSession(ctx, "u1", "people", len(qs))
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	for _, q := range sess.Questions {
		if q.ID == mastered.ID {
			t.Errorf("mastered question %s reselected", q.ID)
		}
	}
	if len(sess.Questions) != len(qs)-1 {
		t.Errorf("session size = %d, want %d", len(sess.Questions), len(qs)-1)
	}

	// And the answer counts toward streak and total.
	d, err := svc.Dashboard(ctx, "u1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Streak.Current != 1 {
		t.Errorf("streak = %d, want 1", d.Streak.Current)
	}
	if d.Profile.TotalActions != 1 {
		t.Errorf("total actions = %d, want 1", d.Profile.TotalActions)
	}

	p, _ := st.ProfileRepo().GetOrCreate(ctx, "u1")
	if p.TotalActions != 1 {
		t.Errorf("stored counter = %d, want 1", p.TotalActions)
	}
}

func TestRecordAnswerKeyedIsIdempotent(t *testing.T) {
	svc, st := newTestService(t, func() time.Time { return fixedNow })
	rec := svc.Recorder()
	ctx := context.Background()

	const key = "retry-7f3a"
	if err := rec.RecordAnswerKeyed(ctx, "u1", "people-001", "people", true, key); err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := rec.RecordAnswerKeyed(ctx, "u1", "people-001", "people", true, key); err != nil {
		t.Fatalf("replay: %v", err)
	}

	events, _ := st.EventRepo().EventsSince(ctx, "u1", time.Time{})
	if len(events) != 1 {
		t.Errorf("event count = %d, want 1", len(events))
	}
	p, _ := st.ProfileRepo().GetOrCreate(ctx, "u1")
	if p.TotalActions != 1 {
		t.Errorf("counter = %d, want 1 (replay must not double-count)", p.TotalActions)
	}
}

func TestWrongAnswerUnmasters(t *testing.T) {
	svc, st := newTestService(t, func() time.Time { return fixedNow })
	rec := svc.Recorder()
	ctx := context.Background()

	if err := rec.RecordAnswer(ctx, "u1", "people-001", "people", true); err != nil {
		t.Fatalf("correct: %v", err)
	}
	if err := rec.RecordAnswer(ctx, "u1", "people-001", "people", false); err != nil {
		t.Fatalf("wrong: %v", err)
	}

	mastered, err := st.ProgressRepo().MasteredIDs(ctx, "u1", "people")
	if err != nil {
		t.Fatalf("mastered: %v", err)
	}
	if mastered["people-001"] {
		t.Error("last write wins: a wrong answer re-opens the question")
	}
}

func TestWrongAnswerStillQualifies(t *testing.T) {
	svc, _ := newTestService(t, func() time.Time { return fixedNow })
	rec := svc.Recorder()
	ctx := context.Background()

	if err := rec.RecordAnswer(ctx, "u1", "people-001", "people", false); err != nil {
		t.Fatalf("record: %v", err)
	}

	d, err := svc.Dashboard(ctx, "u1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Streak.Current != 1 {
		t.Errorf("streak = %d, attempting counts regardless of correctness", d.Streak.Current)
	}
}

func TestSessionResultTracking(t *testing.T) {
	qs, err := bank.Get("places")
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	sess := NewSession("places", qs[:3])

	sess.RecordResult(true)
	sess.RecordResult(false)
	sess.RecordResult(true)

	answered, correct, accuracy := sess.Summary()
	if answered != 3 || correct != 2 {
		t.Errorf("summary = (%d, %d), want (3, 2)", answered, correct)
	}
	if accuracy < 0.66 || accuracy > 0.67 {
		t.Errorf("accuracy = %f, want 2/3", accuracy)
	}

	sess.SetVerse(qs[0].ID, "For God so loved the world...")
	if got := sess.Verse(qs[0].ID); got == "" {
		t.Error("expected stored verse text")
	}
	if got := sess.Verse(qs[1].ID); got != "" {
		t.Errorf("unexpected verse for unanswered lookup: %q", got)
	}
}
