package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)

	// CountPermissions returns how many of the given codes the user holds.
	CountPermissions(ctx context.Context, userID string, codes []string) (int, error)
	GrantPermission(ctx context.Context, userID, code string) error
	ListPermissionCodes(ctx context.Context, userID string) ([]string, error)
}
