package domain

import (
	"fmt"
	"time"
)

// Session is one pass through the calculator wizard.
// Mode and Parameters are both empty before a call type is chosen and both set after.
type Session struct {
	ID         string
	Step       WizardStep
	Mode       Mode
	Industry   Industry
	Parameters Input
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ExpiresAt  time.Time
}

// NewSession creates a session waiting for a call type.
func NewSession(id string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		Step:      StepSelectingCallType,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the session has been idle past its expiry time.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SelectMode chooses the call direction and installs its default parameters.
func (s *Session) SelectMode(mode Mode) error {
	if s.Step != StepSelectingCallType {
		return fmt.Errorf("%w: cannot select call type while %s", ErrInvalidTransition, s.Step)
	}
	params, err := DefaultParameters(mode)
	if err != nil {
		return err
	}
	s.Mode = mode
	s.Parameters = params
	s.Step = StepSelectingIndustry
	return nil
}

// SelectIndustry records the industry and opens the calculator.
func (s *Session) SelectIndustry(industry Industry) error {
	if s.Step != StepSelectingIndustry {
		return fmt.Errorf("%w: cannot select industry while %s", ErrInvalidTransition, s.Step)
	}
	if !industry.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidIndustry, industry)
	}
	s.Industry = industry
	s.Step = StepCalculating
	return nil
}

// SetParameters applies parameter updates. Only allowed while calculating.
func (s *Session) SetParameters(updates []ParamUpdate) error {
	if s.Step != StepCalculating {
		return fmt.Errorf("%w: cannot change parameters while %s", ErrInvalidTransition, s.Step)
	}
	params, err := ApplyUpdates(s.Parameters, updates)
	if err != nil {
		return err
	}
	s.Parameters = params
	return nil
}

// StartOver clears mode, industry and parameters and returns to call type selection.
// It is valid from every step.
func (s *Session) StartOver() {
	s.Step = StepSelectingCallType
	s.Mode = ""
	s.Industry = ""
	s.Parameters = nil
}

// Touch records activity and slides the expiry window forward.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}
