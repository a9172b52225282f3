package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is a hand-written in-memory Repository.
type fakeRepo struct {
	users map[string]User // keyed by email
	perms map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]User), perms: make(map[string][]string)}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	u.ID = "user-" + u.Email
	f.users[u.Email] = *u
	return nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := f.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (f *fakeRepo) CountPermissions(_ context.Context, userID string, codes []string) (int, error) {
	held := make(map[string]bool)
	for _, c := range f.perms[userID] {
		held[c] = true
	}
	count := 0
	for _, c := range codes {
		if held[c] {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GrantPermission(_ context.Context, userID, code string) error {
	f.perms[userID] = append(f.perms[userID], code)
	return nil
}

func (f *fakeRepo) ListPermissionCodes(_ context.Context, userID string) ([]string, error) {
	return f.perms[userID], nil
}

func seedUser(t *testing.T, repo *fakeRepo, email, password string) User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	u := &User{Email: email, Username: "librarian", Password: hash}
	require.NoError(t, repo.Create(context.Background(), u))
	return *u
}

func TestService_Authenticate(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)
	seedUser(t, repo, "staff@library.test", "Sup3rSecret")

	t.Run("valid credentials", func(t *testing.T) {
		u, err := service.Authenticate(context.Background(), "staff@library.test", "Sup3rSecret")
		require.NoError(t, err)
		assert.Equal(t, "staff@library.test", u.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "staff@library.test", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email fails the same way", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "nobody@library.test", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_HasPermissions(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)
	u := seedUser(t, repo, "staff@library.test", "Sup3rSecret")
	ctx := context.Background()

	require.NoError(t, repo.GrantPermission(ctx, u.ID, PermMarkReturned))

	t.Run("single held permission", func(t *testing.T) {
		ok, err := service.HasPermissions(ctx, u.ID, PermMarkReturned)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("all semantics: one missing code fails the set", func(t *testing.T) {
		ok, err := service.HasPermissions(ctx, u.ID, PermMarkReturned, PermEdit)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty set always passes", func(t *testing.T) {
		ok, err := service.HasPermissions(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
