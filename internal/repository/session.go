package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mtlprog/roicalc/internal/domain"
)

// SessionStore persists in-flight wizard sessions between HTTP requests.
type SessionStore interface {
	// Create inserts a new session.
	Create(ctx context.Context, session *domain.Session) error
	// GetByID returns domain.ErrSessionNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// Update loads the session, applies fn and saves the result atomically.
	// Nothing is saved when fn returns an error.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error)
	// Delete returns domain.ErrSessionNotFound for unknown ids.
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes sessions whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// encodeParameters serialises the active parameter set, or nil when none is selected.
func encodeParameters(params domain.Input) ([]byte, error) {
	if params == nil {
		return nil, nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode %s parameters: %w", params.Mode(), err)
	}
	return data, nil
}

// decodeParameters rebuilds the parameter set for mode from its JSON form.
func decodeParameters(mode domain.Mode, data []byte) (domain.Input, error) {
	if mode == "" || len(data) == 0 {
		return nil, nil
	}

	switch mode {
	case domain.ModeInbound:
		var p domain.InboundParameters
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode inbound parameters: %w", err)
		}
		return p, nil
	case domain.ModeOutbound:
		var p domain.OutboundParameters
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode outbound parameters: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: stored mode %q", domain.ErrInvalidMode, mode)
	}
}
