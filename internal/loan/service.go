package loan

import (
	"context"
	"time"

	"locallibrary/internal/catalog"
)

// Service implements the renewal workflow and the loan listing queries.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Instance fetches a single book instance for the renewal form.
func (s *Service) Instance(ctx context.Context, id string) (catalog.BookInstance, error) {
	return s.repo.GetInstance(ctx, id)
}

// Renew validates the proposed due-back date and persists it onto the
// instance. Nothing is written when validation fails.
func (s *Service) Renew(ctx context.Context, instanceID string, proposed time.Time) error {
	if _, err := s.repo.GetInstance(ctx, instanceID); err != nil {
		return err
	}
	if err := ValidateRenewalDate(proposed, s.now()); err != nil {
		return err
	}
	return s.repo.UpdateDueBack(ctx, instanceID, dateOnly(proposed))
}

// ListBorrowedByUser returns one page of the user's on-loan instances, due
// soonest first.
func (s *Service) ListBorrowedByUser(ctx context.Context, userID string, limit, offset int) ([]catalog.BookInstance, int, error) {
	return s.repo.ListOnLoanByBorrower(ctx, userID, limit, offset)
}

// ListAllOnLoan returns one page of every on-loan instance, due soonest first.
func (s *Service) ListAllOnLoan(ctx context.Context, limit, offset int) ([]catalog.BookInstance, int, error) {
	return s.repo.ListOnLoan(ctx, limit, offset)
}
