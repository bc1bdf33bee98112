package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mtlprog/roicalc/internal/calculator"
	"github.com/mtlprog/roicalc/internal/domain"
	"github.com/mtlprog/roicalc/internal/repository"
)

// SessionView is a session together with the results derived from it.
// Result is nil until a call type has been chosen.
type SessionView struct {
	Session *domain.Session
	Result  *calculator.Result
}

// SessionService drives the calculator wizard and recomputes results on every read.
type SessionService struct {
	store repository.SessionStore
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionService creates a new SessionService. Sessions expire after ttl of inactivity.
func NewSessionService(store repository.SessionStore, ttl time.Duration) *SessionService {
	return &SessionService{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// view derives results from the session's current parameters.
func view(session *domain.Session) (*SessionView, error) {
	v := &SessionView{Session: session}
	if session.Parameters == nil {
		return v, nil
	}
	result, err := calculator.Compute(session.Parameters)
	if err != nil {
		return nil, fmt.Errorf("compute session %s: %w", session.ID, err)
	}
	v.Result = &result
	return v, nil
}

// Create starts a new wizard session waiting for a call type.
func (s *SessionService) Create(ctx context.Context) (*SessionView, error) {
	session := domain.NewSession(uuid.NewString(), s.now().UTC(), s.ttl)
	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	slog.Debug("session created", "session_id", session.ID)
	return view(session)
}

// Get returns the session and its freshly computed results.
func (s *SessionService) Get(ctx context.Context, id string) (*SessionView, error) {
	session, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(s.now()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionExpired, id)
	}
	return view(session)
}

// mutate applies fn to a live session and slides its expiry window.
func (s *SessionService) mutate(ctx context.Context, id string, fn func(*domain.Session) error) (*SessionView, error) {
	now := s.now().UTC()
	session, err := s.store.Update(ctx, id, func(session *domain.Session) error {
		if session.IsExpired(now) {
			return fmt.Errorf("%w: %s", domain.ErrSessionExpired, id)
		}
		if err := fn(session); err != nil {
			return err
		}
		session.Touch(now, s.ttl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view(session)
}

// SelectMode picks inbound or outbound and installs that mode's default parameters.
func (s *SessionService) SelectMode(ctx context.Context, id string, mode domain.Mode) (*SessionView, error) {
	v, err := s.mutate(ctx, id, func(session *domain.Session) error {
		return session.SelectMode(mode)
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("session mode selected", "session_id", id, "mode", mode)
	return v, nil
}

// SelectIndustry records the industry and moves the session to the calculator.
func (s *SessionService) SelectIndustry(ctx context.Context, id string, industry domain.Industry) (*SessionView, error) {
	v, err := s.mutate(ctx, id, func(session *domain.Session) error {
		return session.SelectIndustry(industry)
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("session industry selected", "session_id", id, "industry", industry)
	return v, nil
}

// SetParameters clamps and applies parameter updates, then recomputes results.
func (s *SessionService) SetParameters(ctx context.Context, id string, updates []domain.ParamUpdate) (*SessionView, error) {
	return s.mutate(ctx, id, func(session *domain.Session) error {
		return session.SetParameters(updates)
	})
}

// StartOver resets the session to call type selection with no mode, industry or parameters.
func (s *SessionService) StartOver(ctx context.Context, id string) (*SessionView, error) {
	v, err := s.mutate(ctx, id, func(session *domain.Session) error {
		session.StartOver()
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("session reset", "session_id", id)
	return v, nil
}

// Delete ends a session.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// PurgeExpired removes every session past its expiry.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := s.store.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}
	return removed, nil
}

// Calculate is a stateless calculation: updates are applied over the mode's defaults.
func Calculate(mode domain.Mode, updates []domain.ParamUpdate) (domain.Input, calculator.Result, error) {
	params, err := domain.DefaultParameters(mode)
	if err != nil {
		return nil, calculator.Result{}, err
	}
	params, err = domain.ApplyUpdates(params, updates)
	if err != nil {
		return nil, calculator.Result{}, err
	}
	result, err := calculator.Compute(params)
	if err != nil {
		return nil, calculator.Result{}, err
	}
	return params, result, nil
}
