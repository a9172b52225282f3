package session

import "context"

type Repository interface {
	Create(ctx context.Context, s *Session) error

	// GetByTokenHash returns a live session; expired rows are filtered out in
	// SQL and report ErrNotFound.
	GetByTokenHash(ctx context.Context, tokenHash string) (Session, error)

	Delete(ctx context.Context, sessionID string) error
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	UpdateLastUsed(ctx context.Context, sessionID string) error

	// IncrementVisits bumps the session's visit counter and returns the value
	// prior to the increment.
	IncrementVisits(ctx context.Context, sessionID string) (int, error)

	CleanupExpired(ctx context.Context) error
}
