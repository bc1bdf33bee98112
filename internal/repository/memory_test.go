package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/roicalc/internal/domain"
	"github.com/mtlprog/roicalc/internal/repository"
)

func TestMemorySessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemorySessionStore()
	now := time.Now()

	session := domain.NewSession("s-1", now, time.Hour)
	require.NoError(t, store.Create(ctx, session))
	assert.Error(t, store.Create(ctx, session))

	updated, err := store.Update(ctx, "s-1", func(s *domain.Session) error {
		return s.SelectMode(domain.ModeOutbound)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectingIndustry, updated.Step)

	got, err := store.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeOutbound, got.Mode)
	assert.IsType(t, domain.OutboundParameters{}, got.Parameters)

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err = store.GetByID(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "s-1"), domain.ErrSessionNotFound)
}

func TestMemorySessionStore_FailedUpdateIsDiscarded(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemorySessionStore()
	require.NoError(t, store.Create(ctx, domain.NewSession("s-1", time.Now(), time.Hour)))

	boom := errors.New("boom")
	_, err := store.Update(ctx, "s-1", func(s *domain.Session) error {
		s.Step = domain.StepCalculating
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectingCallType, got.Step)

	_, err = store.Update(ctx, "missing", func(*domain.Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemorySessionStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemorySessionStore()
	require.NoError(t, store.Create(ctx, domain.NewSession("s-1", time.Now(), time.Hour)))

	got, err := store.GetByID(ctx, "s-1")
	require.NoError(t, err)
	got.Step = domain.StepCalculating

	again, err := store.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectingCallType, again.Step)
}

func TestMemorySessionStore_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemorySessionStore()
	now := time.Now()

	require.NoError(t, store.Create(ctx, domain.NewSession("old", now.Add(-2*time.Hour), time.Hour)))
	require.NoError(t, store.Create(ctx, domain.NewSession("fresh", now, time.Hour)))

	removed, err := store.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = store.GetByID(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.GetByID(ctx, "fresh")
	assert.NoError(t, err)
}
