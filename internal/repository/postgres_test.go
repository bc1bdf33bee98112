package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/roicalc/internal/database"
	"github.com/mtlprog/roicalc/internal/domain"
	"github.com/mtlprog/roicalc/internal/repository"
)

// PostgresSessionStoreTestSuite runs against DATABASE_URL and is skipped without it.
type PostgresSessionStoreTestSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	store *repository.PostgresSessionStore
}

func (s *PostgresSessionStoreTestSuite) SetupSuite() {
	databaseURL := os.Getenv("DATABASE_URL")

	ctx := context.Background()
	db, err := database.New(ctx, databaseURL)
	s.Require().NoError(err, "failed to connect to database")
	s.pool = db.Pool()

	s.Require().NoError(database.RunMigrations(ctx, s.pool), "failed to run migrations")

	s.store = repository.NewPostgresSessionStore(s.pool)
}

func (s *PostgresSessionStoreTestSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE sessions")
	s.Require().NoError(err, "failed to truncate sessions")
}

func (s *PostgresSessionStoreTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func TestPostgresSessionStoreSuite(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set")
	}
	suite.Run(t, new(PostgresSessionStoreTestSuite))
}

func (s *PostgresSessionStoreTestSuite) newSession(now time.Time) *domain.Session {
	return domain.NewSession(uuid.NewString(), now.UTC().Truncate(time.Microsecond), time.Hour)
}

func (s *PostgresSessionStoreTestSuite) TestCreateAndGet_EmptySession() {
	ctx := context.Background()
	session := s.newSession(time.Now())
	s.Require().NoError(s.store.Create(ctx, session))

	got, err := s.store.GetByID(ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(domain.StepSelectingCallType, got.Step)
	s.Empty(got.Mode)
	s.Empty(got.Industry)
	s.Nil(got.Parameters)
	s.True(session.ExpiresAt.Equal(got.ExpiresAt))
}

func (s *PostgresSessionStoreTestSuite) TestUpdate_RoundTripsParameters() {
	ctx := context.Background()
	session := s.newSession(time.Now())
	s.Require().NoError(s.store.Create(ctx, session))

	_, err := s.store.Update(ctx, session.ID, func(sess *domain.Session) error {
		if err := sess.SelectMode(domain.ModeInbound); err != nil {
			return err
		}
		if err := sess.SelectIndustry(domain.IndustryHealth); err != nil {
			return err
		}
		return sess.SetParameters([]domain.ParamUpdate{
			domain.FlagUpdate("hasReceptionStaff", false),
			domain.NumberUpdate("avgInboundCalls", 1500),
		})
	})
	s.Require().NoError(err)

	got, err := s.store.GetByID(ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(domain.StepCalculating, got.Step)
	s.Equal(domain.IndustryHealth, got.Industry)
	params, ok := got.Parameters.(domain.InboundParameters)
	s.Require().True(ok)
	s.False(params.HasReceptionStaff)
	s.Equal(1500.0, params.AvgInboundCalls)
}

func (s *PostgresSessionStoreTestSuite) TestUpdate_ErrorRollsBack() {
	ctx := context.Background()
	session := s.newSession(time.Now())
	s.Require().NoError(s.store.Create(ctx, session))

	boom := errors.New("boom")
	_, err := s.store.Update(ctx, session.ID, func(sess *domain.Session) error {
		sess.Step = domain.StepCalculating
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.store.GetByID(ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(domain.StepSelectingCallType, got.Step)
}

func (s *PostgresSessionStoreTestSuite) TestStartOverClearsColumns() {
	ctx := context.Background()
	session := s.newSession(time.Now())
	s.Require().NoError(s.store.Create(ctx, session))

	_, err := s.store.Update(ctx, session.ID, func(sess *domain.Session) error {
		return sess.SelectMode(domain.ModeOutbound)
	})
	s.Require().NoError(err)

	_, err = s.store.Update(ctx, session.ID, func(sess *domain.Session) error {
		sess.StartOver()
		return nil
	})
	s.Require().NoError(err)

	got, err := s.store.GetByID(ctx, session.ID)
	s.Require().NoError(err)
	s.Empty(got.Mode)
	s.Nil(got.Parameters)
}

func (s *PostgresSessionStoreTestSuite) TestDeleteAndDeleteExpired() {
	ctx := context.Background()
	now := time.Now()

	old := s.newSession(now.Add(-2 * time.Hour))
	fresh := s.newSession(now)
	s.Require().NoError(s.store.Create(ctx, old))
	s.Require().NoError(s.store.Create(ctx, fresh))

	removed, err := s.store.DeleteExpired(ctx, now)
	s.Require().NoError(err)
	s.Equal(int64(1), removed)

	_, err = s.store.GetByID(ctx, old.ID)
	s.ErrorIs(err, domain.ErrSessionNotFound)

	s.Require().NoError(s.store.Delete(ctx, fresh.ID))
	s.ErrorIs(s.store.Delete(ctx, fresh.ID), domain.ErrSessionNotFound)
}
