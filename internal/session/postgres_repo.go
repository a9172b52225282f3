package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, s *Session) error {
	const query = `
	INSERT INTO sessions (id, user_id, token_hash, user_agent, ip_address, expires_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
	RETURNING id, num_visits, created_at, last_used_at
	`
	return r.db.QueryRow(ctx, query,
		s.UserID,
		s.TokenHash,
		s.UserAgent,
		s.IPAddress,
		s.ExpiresAt,
	).Scan(&s.ID, &s.NumVisits, &s.CreatedAt, &s.LastUsedAt)
}

func (r *PostgresRepo) GetByTokenHash(ctx context.Context, tokenHash string) (Session, error) {
	const query = `
	SELECT id, user_id, token_hash, user_agent, ip_address, num_visits, expires_at, created_at, last_used_at
	FROM sessions
	WHERE token_hash = $1 AND expires_at > now()
	LIMIT 1
	`
	var s Session
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&s.ID,
		&s.UserID,
		&s.TokenHash,
		&s.UserAgent,
		&s.IPAddress,
		&s.NumVisits,
		&s.ExpiresAt,
		&s.CreatedAt,
		&s.LastUsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	return s, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, sessionID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash)
	return err
}

func (r *PostgresRepo) UpdateLastUsed(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx, `UPDATE sessions SET last_used_at = now() WHERE id = $1`, sessionID)
	return err
}

func (r *PostgresRepo) IncrementVisits(ctx context.Context, sessionID string) (int, error) {
	// Single atomic update; the returned value is the count before this call.
	const query = `
	UPDATE sessions SET num_visits = num_visits + 1
	WHERE id = $1
	RETURNING num_visits - 1
	`
	var before int
	err := r.db.QueryRow(ctx, query, sessionID).Scan(&before)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return before, nil
}

func (r *PostgresRepo) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	return err
}
