package loan

import (
	"context"
	"time"

	"locallibrary/internal/catalog"
)

// Repository defines the loan-side contract over book instances. Lookups that
// miss return catalog.ErrNotFound.
type Repository interface {
	GetInstance(ctx context.Context, id string) (catalog.BookInstance, error)
	UpdateDueBack(ctx context.Context, id string, dueBack time.Time) error

	// ListOnLoanByBorrower returns the borrower's on-loan instances ordered by
	// due-back ascending, plus the unpaged total.
	ListOnLoanByBorrower(ctx context.Context, borrowerID string, limit, offset int) ([]catalog.BookInstance, int, error)

	// ListOnLoan returns every on-loan instance across all borrowers ordered
	// by due-back ascending, plus the unpaged total.
	ListOnLoan(ctx context.Context, limit, offset int) ([]catalog.BookInstance, int, error)
}
