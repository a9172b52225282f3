package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TTL is how long a login session lives.
const TTL = 14 * 24 * time.Hour

type Service struct {
	repo   Repository
	secret string
}

func NewService(repo Repository, secret string) *Service {
	return &Service{repo: repo, secret: secret}
}

// Start creates a session for the user and returns the signed cookie value.
func (s *Service) Start(ctx context.Context, userID, userAgent, ipAddress string) (string, error) {
	token := uuid.NewString()
	sess := &Session{
		UserID:    userID,
		TokenHash: HashToken(token),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: time.Now().Add(TTL),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", err
	}
	return GenerateToken(s.secret, userID, token, TTL)
}

// FromCookie resolves a cookie value to its live session. Tampered, expired
// or unknown tokens all report ErrNotFound; callers treat that as anonymous.
func (s *Service) FromCookie(ctx context.Context, cookieValue string) (Session, error) {
	claims, err := ParseToken(s.secret, cookieValue)
	if err != nil {
		return Session{}, ErrNotFound
	}
	sess, err := s.repo.GetByTokenHash(ctx, HashToken(claims.ID))
	if err != nil {
		return Session{}, err
	}
	_ = s.repo.UpdateLastUsed(ctx, sess.ID)
	return sess, nil
}

// IncrementVisits returns the session's visit count before this call. A fresh
// session reports 0 first.
func (s *Service) IncrementVisits(ctx context.Context, sessionID string) (int, error) {
	return s.repo.IncrementVisits(ctx, sessionID)
}

// End deletes the session behind the cookie value. Unknown tokens are a no-op.
func (s *Service) End(ctx context.Context, cookieValue string) error {
	claims, err := ParseToken(s.secret, cookieValue)
	if err != nil {
		return nil
	}
	return s.repo.DeleteByTokenHash(ctx, HashToken(claims.ID))
}

// CleanupExpired removes expired session rows. Called opportunistically at
// server start.
func (s *Service) CleanupExpired(ctx context.Context) error {
	return s.repo.CleanupExpired(ctx)
}
