package user

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies an email/password pair. Unknown accounts and wrong
// passwords fail identically with ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !VerifyPassword(u.Password, password) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// HasPermissions reports whether the user holds ALL of the given permission
// codes. Multiple codes are ANDed, never ORed.
func (s *Service) HasPermissions(ctx context.Context, userID string, codes ...string) (bool, error) {
	if len(codes) == 0 {
		return true, nil
	}
	held, err := s.repo.CountPermissions(ctx, userID, codes)
	if err != nil {
		return false, err
	}
	return held == len(codes), nil
}

// PermissionCodes returns every permission code the user holds.
func (s *Service) PermissionCodes(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListPermissionCodes(ctx, userID)
}
