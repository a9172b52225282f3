package web

import (
	"context"
	"strconv"
	"testing"
	"time"

	"locallibrary/internal/catalog"
	"locallibrary/internal/loan"
	"locallibrary/internal/session"
	"locallibrary/internal/user"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// userFakeRepo is an in-memory user.Repository for handler tests.
type userFakeRepo struct {
	users map[string]user.User
	perms map[string][]string
	next  int
}

func newUserFakeRepo() *userFakeRepo {
	return &userFakeRepo{users: make(map[string]user.User), perms: make(map[string][]string)}
}

func (f *userFakeRepo) Create(_ context.Context, u *user.User) error {
	f.next++
	u.ID = "user-" + strconv.Itoa(f.next)
	f.users[u.ID] = *u
	return nil
}

func (f *userFakeRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *userFakeRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *userFakeRepo) CountPermissions(_ context.Context, userID string, codes []string) (int, error) {
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

func (f *userFakeRepo) GrantPermission(_ context.Context, userID, code string) error {
	f.perms[userID] = append(f.perms[userID], code)
	return nil
}

func (f *userFakeRepo) ListPermissionCodes(_ context.Context, userID string) ([]string, error) {
	return f.perms[userID], nil
}

// sessionFakeRepo is an in-memory session.Repository keyed by token hash.
type sessionFakeRepo struct {
	byHash map[string]*session.Session
	next   int
}

func newSessionFakeRepo() *sessionFakeRepo {
	return &sessionFakeRepo{byHash: make(map[string]*session.Session)}
}

func (f *sessionFakeRepo) Create(_ context.Context, s *session.Session) error {
	f.next++
	s.ID = "sess-" + strconv.Itoa(f.next)
	copied := *s
	f.byHash[s.TokenHash] = &copied
	return nil
}

func (f *sessionFakeRepo) GetByTokenHash(_ context.Context, tokenHash string) (session.Session, error) {
	s, ok := f.byHash[tokenHash]
	if !ok || s.ExpiresAt.Before(time.Now()) {
		return session.Session{}, session.ErrNotFound
	}
	return *s, nil
}

func (f *sessionFakeRepo) Delete(_ context.Context, sessionID string) error {
	for hash, s := range f.byHash {
		if s.ID == sessionID {
			delete(f.byHash, hash)
			return nil
		}
	}
	return session.ErrNotFound
}

func (f *sessionFakeRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	delete(f.byHash, tokenHash)
	return nil
}

func (f *sessionFakeRepo) UpdateLastUsed(_ context.Context, sessionID string) error {
	return nil
}

func (f *sessionFakeRepo) IncrementVisits(_ context.Context, sessionID string) (int, error) {
	for _, s := range f.byHash {
		if s.ID == sessionID {
			before := s.NumVisits
			s.NumVisits++
			return before, nil
		}
	}
	return 0, session.ErrNotFound
}

func (f *sessionFakeRepo) CleanupExpired(_ context.Context) error {
	return nil
}

// testEnv wires a Server over mock catalog/loan repositories and in-memory
// user/session stores.
type testEnv struct {
	server      *Server
	catalogRepo *catalog.MockRepository
	loanRepo    *loan.MockRepository
	userRepo    *userFakeRepo
	sessionRepo *sessionFakeRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		catalogRepo: catalog.NewMockRepository(ctrl),
		loanRepo:    loan.NewMockRepository(ctrl),
		userRepo:    newUserFakeRepo(),
		sessionRepo: newSessionFakeRepo(),
	}
	env.server = NewServer(Config{
		Catalog:  catalog.NewService(env.catalogRepo),
		Loans:    loan.NewService(env.loanRepo),
		Users:    user.NewService(env.userRepo),
		Sessions: session.NewService(env.sessionRepo, testSecret),
	})
	return env
}

// loginAs creates a staff user holding the given permissions and returns a
// valid session cookie value.
func (e *testEnv) loginAs(t *testing.T, perms ...string) string {
	t.Helper()
	ctx := context.Background()

	hash, err := user.HashPassword("Password1")
	require.NoError(t, err)
	u := &user.User{Email: "staff@library.test", Username: "staff", Password: hash}
	require.NoError(t, e.userRepo.Create(ctx, u))
	for _, p := range perms {
		require.NoError(t, e.userRepo.GrantPermission(ctx, u.ID, p))
	}

	cookie, err := e.server.sessions.Start(ctx, u.ID, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	return cookie
}
