// Package session holds the calculator's state: the schedule entered during
// setup, the idle duration being edited, and the ledger of logged activities.
// Derived values are computed on each read.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/idlewage/internal/domain"
	"github.com/alexanderramin/idlewage/internal/duration"
	"github.com/alexanderramin/idlewage/internal/ledger"
	"github.com/alexanderramin/idlewage/internal/repository"
	"github.com/alexanderramin/idlewage/internal/wage"
	"github.com/rs/zerolog/log"
)

// SetupKey is the store key holding the JSON-encoded schedule.
const SetupKey = "setup"

// QuickIncrements are the fixed amounts, in seconds, the idle duration can be
// bumped by: one minute, five minutes, fifteen minutes and one hour.
var QuickIncrements = []int64{60, 300, 900, 3600}

// Phase is the state machine position of a session.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseActive:
		return "active"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a single user's calculator session. It is not safe for
// concurrent use.
type State struct {
	store  repository.KVStore
	ledger *ledger.Ledger

	config domain.ScheduleConfig
	phase  Phase

	description string
	idleSeconds int64
}

// Load builds a State from store. A stored schedule restores the active
// phase; unreadable stored data is logged and ignored.
func Load(ctx context.Context, store repository.KVStore) (*State, error) {
	s := &State{
		store:       store,
		config:      domain.DefaultSchedule(),
		phase:       PhaseSetup,
		description: domain.DefaultDescription,
	}

	blob, err := store.Get(ctx, SetupKey)
	switch {
	case err == nil:
		cfg, decodeErr := decodeSetup(blob, s.config)
		if decodeErr != nil {
			log.Warn().Err(decodeErr).Str("key", SetupKey).Msg("Ignoring unreadable setup")
			break
		}
		s.config = cfg
		s.phase = PhaseActive
	case errors.Is(err, repository.ErrNotFound):
	default:
		return nil, fmt.Errorf("loading setup: %w", err)
	}

	l, err := ledger.Load(ctx, store)
	if err != nil {
		return nil, err
	}
	s.ledger = l
	return s, nil
}

// ── setup ────────────────────────────────────────────────────────────────────

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Config returns the schedule as currently entered.
func (s *State) Config() domain.ScheduleConfig { return s.config }

// SetMonthlySalary sets the salary, clamped to zero or more.
func (s *State) SetMonthlySalary(v float64) {
	s.config.MonthlySalary = domain.ClampSalary(v)
}

// SetWorkingDays sets the working days per month, floored and at least one.
func (s *State) SetWorkingDays(v float64) {
	s.config.WorkingDaysPerMonth = domain.ClampWorkingDays(v)
}

// SetWorkingHours sets the working hours per day, at least one.
func (s *State) SetWorkingHours(v float64) {
	s.config.WorkingHoursPerDay = domain.ClampWorkingHours(v)
}

// CanContinue reports whether setup can be completed with the current schedule.
func (s *State) CanContinue() bool {
	return wage.CanContinue(s.config)
}

// CompleteSetup saves the schedule and moves to the active phase. It does
// nothing and returns false while the schedule is incomplete.
func (s *State) CompleteSetup(ctx context.Context) (bool, error) {
	if !s.CanContinue() {
		return false, nil
	}
	blob, err := encodeSetup(s.config)
	if err != nil {
		return false, err
	}
	if err := s.store.Set(ctx, SetupKey, blob); err != nil {
		return false, fmt.Errorf("saving setup: %w", err)
	}
	s.phase = PhaseActive
	log.Debug().Float64("salary", s.config.MonthlySalary).
		Int("days", s.config.WorkingDaysPerMonth).
		Float64("hours", s.config.WorkingHoursPerDay).
		Msg("Setup complete")
	return true, nil
}

// BackToSetup returns to the setup phase. The schedule stays as entered and
// the ledger is untouched.
func (s *State) BackToSetup() {
	s.phase = PhaseSetup
}

// ── pending activity ─────────────────────────────────────────────────────────

// IdleSeconds returns the idle duration being edited.
func (s *State) IdleSeconds() int64 { return s.idleSeconds }

// FormattedIdle returns the idle duration as HH:MM:SS.
func (s *State) FormattedIdle() string { return duration.Format(s.idleSeconds) }

// SetIdleText parses text into the idle duration and returns its canonical form.
func (s *State) SetIdleText(text string) string {
	s.SetIdleSeconds(duration.Parse(text))
	return s.FormattedIdle()
}

// SetIdleSeconds sets the idle duration, clamped to zero or more.
func (s *State) SetIdleSeconds(n int64) {
	s.idleSeconds = max(n, 0)
}

// AddIdleSeconds adjusts the idle duration by delta, never below zero.
func (s *State) AddIdleSeconds(delta int64) {
	s.SetIdleSeconds(s.idleSeconds + delta)
}

// ClearIdle resets the idle duration to zero.
func (s *State) ClearIdle() {
	s.idleSeconds = 0
}

// Description returns the pending activity description.
func (s *State) Description() string { return s.description }

// SetDescription sets the pending activity description as typed.
func (s *State) SetDescription(text string) {
	s.description = text
}

// ── ledger ───────────────────────────────────────────────────────────────────

// AddActivity logs the pending description and idle duration, then resets
// both. It does nothing outside the active phase or when the duration is zero.
func (s *State) AddActivity(ctx context.Context) (bool, error) {
	if s.phase != PhaseActive || s.idleSeconds <= 0 {
		return false, nil
	}
	added, err := s.ledger.Append(ctx, domain.NewActivity(s.description, s.idleSeconds))
	if err != nil || !added {
		return false, err
	}
	s.description = domain.DefaultDescription
	s.idleSeconds = 0
	return true, nil
}

// RemoveActivity deletes the activity at index i; out of range is a no-op.
func (s *State) RemoveActivity(ctx context.Context, i int) (bool, error) {
	return s.ledger.RemoveAt(ctx, i)
}

// ClearActivities deletes every activity and the stored list.
func (s *State) ClearActivities(ctx context.Context) error {
	return s.ledger.Clear(ctx)
}

// Reset forgets the saved schedule and every activity in one atomic write,
// returning to a fresh setup phase.
func (s *State) Reset(ctx context.Context) error {
	err := s.store.Atomically(ctx, func(ctx context.Context, kv repository.KVStore) error {
		if err := kv.Delete(ctx, SetupKey); err != nil {
			return err
		}
		return kv.Delete(ctx, ledger.Key)
	})
	if err != nil {
		return fmt.Errorf("resetting session: %w", err)
	}

	l, err := ledger.Load(ctx, s.store)
	if err != nil {
		return err
	}
	s.ledger = l
	s.config = domain.DefaultSchedule()
	s.phase = PhaseSetup
	s.description = domain.DefaultDescription
	s.idleSeconds = 0
	log.Debug().Msg("Session reset")
	return nil
}

// Activities returns the logged activities, oldest first.
func (s *State) Activities() []domain.Activity { return s.ledger.Activities() }

// ActivityCount returns the number of logged activities.
func (s *State) ActivityCount() int { return s.ledger.Len() }

// ── derived values ───────────────────────────────────────────────────────────

// EarningsPerSecond returns the wage rate for the current schedule.
func (s *State) EarningsPerSecond() float64 { return wage.EarningsPerSecond(s.config) }

// Rates returns the wage rate per second, minute and hour.
func (s *State) Rates() wage.Rates { return wage.RatesFor(s.config) }

// IdleEarnings values the idle duration being edited.
func (s *State) IdleEarnings() float64 {
	return wage.Earnings(s.EarningsPerSecond(), s.idleSeconds)
}

// ActivityEarnings values the activity at index i, or 0 when out of range.
func (s *State) ActivityEarnings(i int) float64 {
	a, ok := s.ledger.At(i)
	if !ok {
		return 0
	}
	return wage.Earnings(s.EarningsPerSecond(), a.Seconds)
}

// TotalSeconds returns the logged idle time across all activities.
func (s *State) TotalSeconds() int64 { return s.ledger.TotalSeconds() }

// TotalEarnings values every logged activity.
func (s *State) TotalEarnings() float64 {
	return s.ledger.TotalEarnings(s.EarningsPerSecond())
}
