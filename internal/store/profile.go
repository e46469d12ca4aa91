package store

import (
	"context"
	"fmt"

	"github.com/selah-app/selah/ent"
	"github.com/selah-app/selah/ent/profile"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) GetOrCreate(ctx context.Context, userID string) (*ProfileState, error) {
	p, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err == nil {
		return toProfileState(p), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p, err = r.client.Profile.Create().
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		// Lost a create race with another writer; re-read.
		if ent.IsConstraintError(err) {
			p, err = r.client.Profile.Query().
				Where(profile.UserID(userID)).
				Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("re-query profile: %w", err)
			}
			return toProfileState(p), nil
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return toProfileState(p), nil
}

func (r *profileRepo) AddActions(ctx context.Context, userID string, n int) error {
	updated, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		AddTotalActions(n).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("increment total actions: %w", err)
	}
	if updated == 0 {
		return fmt.Errorf("increment total actions: no profile for user %s", userID)
	}
	return nil
}

func (r *profileRepo) SetTotalActions(ctx context.Context, userID string, n int) error {
	_, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		SetTotalActions(n).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set total actions: %w", err)
	}
	return nil
}

func (r *profileRepo) SpendCredit(ctx context.Context, userID string) error {
	_, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		AddDailyCredits(-1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("spend credit: %w", err)
	}
	return nil
}

func (r *profileRepo) ReplenishCredits(ctx context.Context, userID string, credits int, creditDate string) error {
	_, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		SetDailyCredits(credits).
		SetCreditDate(creditDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("replenish credits: %w", err)
	}
	return nil
}

func (r *profileRepo) SetPaid(ctx context.Context, userID string, paid bool) error {
	_, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		SetIsPaid(paid).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set paid: %w", err)
	}
	return nil
}

func toProfileState(p *ent.Profile) *ProfileState {
	return &ProfileState{
		UserID:       p.UserID,
		TotalActions: p.TotalActions,
		IsPaid:       p.IsPaid,
		DailyCredits: p.DailyCredits,
		CreditDate:   p.CreditDate,
	}
}
