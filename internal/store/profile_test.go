package store

import (
	"context"
	"testing"
)

func TestGetOrCreateDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if p.UserID != "u1" {
		t.Errorf("UserID = %q", p.UserID)
	}
	if p.TotalActions != 0 {
		t.Errorf("TotalActions = %d, want 0", p.TotalActions)
	}
	if p.IsPaid {
		t.Error("IsPaid should default to false")
	}
	if p.DailyCredits != 0 {
		t.Errorf("DailyCredits = %d, want 0 until first replenish", p.DailyCredits)
	}
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if _, err := repo.GetOrCreate(ctx, "u1"); err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := repo.AddActions(ctx, "u1", 3); err != nil {
		t.Fatalf("add: %v", err)
	}

	p, err := repo.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if p.TotalActions != 3 {
		t.Errorf("TotalActions = %d, want 3 (existing row returned, not recreated)", p.TotalActions)
	}
}

func TestAddActionsAccumulates(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	_, _ = repo.GetOrCreate(ctx, "u1")
	for i := 0; i < 5; i++ {
		if err := repo.AddActions(ctx, "u1", 1); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	p, _ := repo.GetOrCreate(ctx, "u1")
	if p.TotalActions != 5 {
		t.Errorf("TotalActions = %d, want 5", p.TotalActions)
	}
}

func TestAddActionsMissingProfile(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	if err := repo.AddActions(context.Background(), "ghost", 1); err == nil {
		t.Error("expected error for missing profile")
	}
}

func TestSetTotalActionsOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	_, _ = repo.GetOrCreate(ctx, "u1")
	_ = repo.AddActions(ctx, "u1", 2)

	if err := repo.SetTotalActions(ctx, "u1", 40); err != nil {
		t.Fatalf("set: %v", err)
	}
	p, _ := repo.GetOrCreate(ctx, "u1")
	if p.TotalActions != 40 {
		t.Errorf("TotalActions = %d, want 40", p.TotalActions)
	}
}

func TestCreditLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	_, _ = repo.GetOrCreate(ctx, "u1")

	if err := repo.ReplenishCredits(ctx, "u1", 3, "2026-03-10"); err != nil {
		t.Fatalf("replenish: %v", err)
	}
	p, _ := repo.GetOrCreate(ctx, "u1")
	if p.DailyCredits != 3 || p.CreditDate != "2026-03-10" {
		t.Errorf("after replenish: credits=%d date=%q", p.DailyCredits, p.CreditDate)
	}

	if err := repo.SpendCredit(ctx, "u1"); err != nil {
		t.Fatalf("spend: %v", err)
	}
	p, _ = repo.GetOrCreate(ctx, "u1")
	if p.DailyCredits != 2 {
		t.Errorf("after spend: credits=%d, want 2", p.DailyCredits)
	}
}

func TestSetPaid(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	_, _ = repo.GetOrCreate(ctx, "u1")
	if err := repo.SetPaid(ctx, "u1", true); err != nil {
		t.Fatalf("set paid: %v", err)
	}
	p, _ := repo.GetOrCreate(ctx, "u1")
	if !p.IsPaid {
		t.Error("IsPaid should be true")
	}
}
