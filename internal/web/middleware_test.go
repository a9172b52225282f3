package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"locallibrary/internal/catalog"
	"locallibrary/internal/testutil"
	"locallibrary/internal/user"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousRequestsRedirectToLogin(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()

	tests := []struct {
		name string
		path string
	}{
		{name: "home", path: "/"},
		{name: "book list", path: "/books"},
		{name: "my loans", path: "/myloans"},
		{name: "all loans", path: "/loans"},
		{name: "author create", path: "/authors/create"},
		{name: "renew form", path: "/instances/abc/renew"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login?next="+url.QueryEscape(tc.path), rec.Header().Get("Location"))
		})
	}
}

func TestTamperedCookieIsTreatedAsAnonymous(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req = testutil.WithCookie(req, sessionCookie, "not-a-real-token")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fbooks", rec.Header().Get("Location"))
}

func TestMissingPermissionIsForbiddenNotRedirected(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t)

	tests := []struct {
		name string
		path string
	}{
		{name: "home needs mark returned", path: "/"},
		{name: "all loans needs both", path: "/loans"},
		{name: "author create needs both", path: "/authors/create"},
		{name: "renew needs mark returned", path: "/instances/abc/renew"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req = testutil.WithCookie(req, sessionCookie, cookie)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			require.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "do not have permission")
		})
	}
}

func TestAllPermissionsAreRequiredNotAny(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()

	// Holding one of the two staff permissions is not enough for the pages
	// that ask for both.
	cookie := env.loginAs(t, user.PermMarkReturned)

	req := httptest.NewRequest(http.MethodGet, "/loans", nil)
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthorBrowsingIsPublic(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()

	env.catalogRepo.EXPECT().
		ListAuthors(gomock.Any(), authorPageSize, 0).
		Return([]catalog.Author{{ID: "a1", FirstName: "Jane", LastName: "Austen"}}, 1, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/authors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Austen, Jane")
}
