package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/roicalc/internal/domain"
)

func newSession() *domain.Session {
	return domain.NewSession("00000000-0000-0000-0000-000000000001", time.Unix(1700000000, 0), time.Hour)
}

func TestSession_HappyPath(t *testing.T) {
	s := newSession()
	assert.Equal(t, domain.StepSelectingCallType, s.Step)
	assert.Nil(t, s.Parameters)

	require.NoError(t, s.SelectMode(domain.ModeInbound))
	assert.Equal(t, domain.StepSelectingIndustry, s.Step)
	assert.Equal(t, domain.ModeInbound, s.Mode)
	assert.IsType(t, domain.InboundParameters{}, s.Parameters)

	require.NoError(t, s.SelectIndustry(domain.IndustryOther))
	assert.Equal(t, domain.StepCalculating, s.Step)
	assert.Equal(t, domain.IndustryOther, s.Industry)

	require.NoError(t, s.SetParameters([]domain.ParamUpdate{domain.NumberUpdate("numStaff", 4)}))
	assert.Equal(t, 4.0, s.Parameters.(domain.InboundParameters).NumStaff)
}

func TestSession_RejectsOutOfOrderTransitions(t *testing.T) {
	s := newSession()
	assert.ErrorIs(t, s.SelectIndustry(domain.IndustryHealth), domain.ErrInvalidTransition)
	assert.ErrorIs(t, s.SetParameters(nil), domain.ErrInvalidTransition)

	require.NoError(t, s.SelectMode(domain.ModeOutbound))
	assert.ErrorIs(t, s.SelectMode(domain.ModeInbound), domain.ErrInvalidTransition)
	assert.ErrorIs(t, s.SetParameters(nil), domain.ErrInvalidTransition)

	require.NoError(t, s.SelectIndustry(domain.IndustrySaaS))
	assert.ErrorIs(t, s.SelectMode(domain.ModeInbound), domain.ErrInvalidTransition)
	assert.ErrorIs(t, s.SelectIndustry(domain.IndustryAgency), domain.ErrInvalidTransition)
	assert.Equal(t, domain.ModeOutbound, s.Mode)
}

func TestSession_RejectsInvalidValues(t *testing.T) {
	s := newSession()
	assert.ErrorIs(t, s.SelectMode("sideways"), domain.ErrInvalidMode)
	assert.Equal(t, domain.StepSelectingCallType, s.Step)

	require.NoError(t, s.SelectMode(domain.ModeInbound))
	assert.ErrorIs(t, s.SelectIndustry("mining"), domain.ErrInvalidIndustry)
	assert.Equal(t, domain.StepSelectingIndustry, s.Step)
}

func TestSession_AcceptsEveryIndustry(t *testing.T) {
	for _, industry := range domain.Industries {
		s := newSession()
		require.NoError(t, s.SelectMode(domain.ModeInbound))
		require.NoError(t, s.SelectIndustry(industry), "industry=%s", industry)
		assert.NotEmpty(t, industry.Label())
	}
}

func TestSession_StartOverResetsEverything(t *testing.T) {
	s := newSession()
	require.NoError(t, s.SelectMode(domain.ModeInbound))
	require.NoError(t, s.SelectIndustry(domain.IndustryFinance))
	require.NoError(t, s.SetParameters([]domain.ParamUpdate{domain.NumberUpdate("avgTicketSize", 900)}))

	s.StartOver()

	assert.Equal(t, domain.StepSelectingCallType, s.Step)
	assert.Empty(t, s.Mode)
	assert.Empty(t, s.Industry)
	assert.Nil(t, s.Parameters)

	// Re-entering installs fresh defaults, not the edited values.
	require.NoError(t, s.SelectMode(domain.ModeInbound))
	assert.Equal(t, 600.0, s.Parameters.(domain.InboundParameters).AvgTicketSize)
}

func TestSession_StartOverFromIndustrySelection(t *testing.T) {
	s := newSession()
	require.NoError(t, s.SelectMode(domain.ModeOutbound))

	s.StartOver()

	require.NoError(t, s.SelectMode(domain.ModeInbound))
	assert.IsType(t, domain.InboundParameters{}, s.Parameters)
}

func TestSession_Expiry(t *testing.T) {
	now := time.Unix(1700000000, 0)
	s := domain.NewSession("id", now, 10*time.Minute)

	assert.False(t, s.IsExpired(now.Add(9*time.Minute)))
	assert.True(t, s.IsExpired(now.Add(10*time.Minute)))

	s.Touch(now.Add(9*time.Minute), 10*time.Minute)
	assert.False(t, s.IsExpired(now.Add(15*time.Minute)))
	assert.Equal(t, now.Add(9*time.Minute), s.UpdatedAt)
}
