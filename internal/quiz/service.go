// Package quiz glues the pure calculators to the store: it assembles the
// dashboard, starts sessions, records answers, and reconciles the
// lifetime counter against the event log.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/selah-app/selah/internal/action"
	"github.com/selah-app/selah/internal/bank"
	"github.com/selah-app/selah/internal/level"
	"github.com/selah-app/selah/internal/selector"
	"github.com/selah-app/selah/internal/store"
	"github.com/selah-app/selah/internal/streak"
)

// HistoryWindowDays is the rolling window of events read for streak
// computation. Lifetime totals use the full log.
const HistoryWindowDays = 90

// FreeDailyCredits is the number of quiz sessions a free profile gets
// per local calendar day. Paid profiles are not gated.
const FreeDailyCredits = 5

// ErrNoCredits is returned by StartSession when a free profile has used
// all of today's sessions.
var ErrNoCredits = errors.New("no quiz credits left today")

// Dashboard is the engine's outbound state for the view layer.
type Dashboard struct {
	Streak  streak.State
	Level   level.State
	Profile store.ProfileState
}

// ReconcileResult reports one counter reconciliation pass.
type ReconcileResult struct {
	Counter  int
	LogCount int
	Repaired bool
}

// Service wires the calculators to the store.
type Service struct {
	events   store.EventRepo
	profiles store.ProfileRepo
	progress store.ProgressRepo

	loc *time.Location
	now func() time.Time
	rng *rand.Rand
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLocation sets the time zone used for local-day normalization.
// Defaults to the process-local zone.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *Service) { s.loc = loc }
}

// WithNow injects the clock, for tests.
func WithNow(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithRand injects the session shuffle generator, for tests.
func WithRand(rng *rand.Rand) ServiceOption {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a Service over the given repositories.
func NewService(events store.EventRepo, profiles store.ProfileRepo, progress store.ProgressRepo, opts ...ServiceOption) *Service {
	s := &Service{
		events:   events,
		profiles: profiles,
		progress: progress,
		loc:      time.Local,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recorder returns the answer write path sharing this service's repos.
func (s *Service) Recorder() *Recorder {
	return NewRecorder(s.events, s.profiles, s.progress)
}

// Dashboard computes the streak and level state for a user. The counter
// is opportunistically reconciled when it has fallen behind the log, so
// a partial write on a previous answer heals on the next load.
func (s *Service) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	rec, err := s.Reconcile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	total := profile.TotalActions
	if rec.Repaired {
		total = rec.LogCount
		profile.TotalActions = total
	}

	since := s.now().AddDate(0, 0, -HistoryWindowDays)
	records, err := s.events.EventsSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	events := make([]streak.Event, len(records))
	for i, r := range records {
		events[i] = streak.Event{Type: action.Type(r.ActionType), At: r.Timestamp}
	}

	return &Dashboard{
		Streak:  streak.Compute(events, streak.DateOf(s.now(), s.loc), s.loc, action.QualifyingTypes()),
		Level:   level.Compute(total),
		Profile: *profile,
	}, nil
}

// StartSession selects the day's questions for a topic and opens a
// session. Free profiles spend one daily credit, replenished on the
// first session of each local day. The trivia_started event is logged
// but does not qualify for streaks or totals.
func (s *Service) StartSession(ctx context.Context, userID, topic string, size int) (*Session, error) {
	questions, err := bank.Get(topic)
	if err != nil {
		// Content-data error: surfaced, never masked with an empty
		// session.
		return nil, fmt.Errorf("start session: %w", err)
	}

	if err := s.spendCredit(ctx, userID); err != nil {
		return nil, err
	}

	mastered, err := s.progress.MasteredIDs(ctx, userID, topic)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	selected := selector.Session(questions, mastered, size, s.rng)

	err = s.events.AppendAction(ctx, store.ActionEventData{
		UserID:         userID,
		ActionType:     string(action.TriviaStarted),
		IdempotencyKey: uuid.New().String(),
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	return NewSession(topic, selected), nil
}

func (s *Service) spendCredit(ctx context.Context, userID string) error {
	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if profile.IsPaid {
		return nil
	}

	today := streak.DateOf(s.now(), s.loc).String()
	if profile.CreditDate != today {
		if err := s.profiles.ReplenishCredits(ctx, userID, FreeDailyCredits, today); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		profile.DailyCredits = FreeDailyCredits
	}
	if profile.DailyCredits <= 0 {
		return ErrNoCredits
	}
	if err := s.profiles.SpendCredit(ctx, userID); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

// Reconcile compares the lifetime counter against the count of
// qualifying events in the log and repairs the counter when it has
// fallen behind. The counter is allowed to lag (a crash between the
// event append and the increment), never to lead, so reconciliation only
// ever raises it.
func (s *Service) Reconcile(ctx context.Context, userID string) (*ReconcileResult, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	logCount, err := s.events.CountQualifying(ctx, userID, action.QualifyingStrings())
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	result := &ReconcileResult{Counter: profile.TotalActions, LogCount: logCount}
	if profile.TotalActions < logCount {
		if err := s.profiles.SetTotalActions(ctx, userID, logCount); err != nil {
			return nil, fmt.Errorf("reconcile: %w", err)
		}
		result.Repaired = true
	}
	return result, nil
}
