package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/roicalc/internal/domain"
)

// PostgresSessionStore keeps sessions in PostgreSQL so several server instances can share them.
type PostgresSessionStore struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionStore creates a new PostgresSessionStore.
func NewPostgresSessionStore(pool *pgxpool.Pool) *PostgresSessionStore {
	return &PostgresSessionStore{pool: pool}
}

// scanSession scans a single row into a Session struct.
func scanSession(row pgx.Row) (*domain.Session, error) {
	var (
		session    domain.Session
		mode       *string
		industry   *string
		parameters []byte
	)
	err := row.Scan(
		&session.ID,
		&session.Step,
		&mode,
		&industry,
		&parameters,
		&session.CreatedAt,
		&session.UpdatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	if mode != nil {
		session.Mode = domain.Mode(*mode)
	}
	if industry != nil {
		session.Industry = domain.Industry(*industry)
	}

	session.Parameters, err = decodeParameters(session.Mode, parameters)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", session.ID, err)
	}

	return &session, nil
}

// nullable maps the zero value of a typed string to SQL NULL.
func nullable[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

// Create inserts a new session.
func (r *PostgresSessionStore) Create(ctx context.Context, session *domain.Session) error {
	parameters, err := encodeParameters(session.Parameters)
	if err != nil {
		return err
	}

	query, args, err := psql.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			session.ID,
			session.Step,
			nullable(session.Mode),
			nullable(session.Industry),
			parameters,
			session.CreatedAt,
			session.UpdatedAt,
			session.ExpiresAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for session %s: %w", session.ID, err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID retrieves a session by ID.
func (r *PostgresSessionStore) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query, args, err := psql.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for session %s: %w", id, err)
	}

	return scanSession(r.pool.QueryRow(ctx, query, args...))
}

// Update locks the row FOR UPDATE, applies fn and writes the result in one transaction.
func (r *PostgresSessionStore) Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	query, args, err := psql.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for session %s: %w", id, err)
	}

	session, err := scanSession(tx.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	parameters, err := encodeParameters(session.Parameters)
	if err != nil {
		return nil, err
	}

	query, args, err = psql.
		Update(sessionsTable).
		Set("step", session.Step).
		Set("mode", nullable(session.Mode)).
		Set("industry", nullable(session.Industry)).
		Set("parameters", parameters).
		Set("updated_at", session.UpdatedAt).
		Set("expires_at", session.ExpiresAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for session %s: %w", id, err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return session, nil
}

// Delete removes a session.
func (r *PostgresSessionStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.
		Delete(sessionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for session %s: %w", id, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes sessions whose expiry is at or before now.
func (r *PostgresSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build DeleteExpired query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
