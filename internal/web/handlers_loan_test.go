package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"locallibrary/internal/catalog"
	"locallibrary/internal/loan"
	"locallibrary/internal/testutil"
	"locallibrary/internal/user"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInstance() catalog.BookInstance {
	due := time.Now().AddDate(0, 0, 5)
	return catalog.BookInstance{
		ID:           "inst-1",
		BookID:       "book-1",
		Imprint:      "First edition, 1965",
		DueBack:      &due,
		Status:       catalog.StatusOnLoan,
		BookTitle:    "Dune",
		BorrowerName: "reader",
	}
}

func TestRenewFormProposesThreeWeeksOut(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t, user.PermMarkReturned)

	env.loanRepo.EXPECT().GetInstance(gomock.Any(), "inst-1").Return(testInstance(), nil)

	req := httptest.NewRequest(http.MethodGet, "/instances/inst-1/renew", nil)
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	proposed := loan.ProposedRenewalDate(time.Now()).Format(dateLayout)
	body := rec.Body.String()
	assert.Contains(t, body, `value="`+proposed+`"`)
	assert.Contains(t, body, "Renew: Dune")
}

func TestRenewFormUnknownInstance(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t, user.PermMarkReturned)

	env.loanRepo.EXPECT().
		GetInstance(gomock.Any(), "missing").
		Return(catalog.BookInstance{}, catalog.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/instances/missing/renew", nil)
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenewRejectsPastDate(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t, user.PermMarkReturned)

	// Fetched once by the handler and once inside the renewal; the due date
	// must not be written.
	env.loanRepo.EXPECT().GetInstance(gomock.Any(), "inst-1").Return(testInstance(), nil).Times(2)

	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)
	req := testutil.NewFormRequest("/instances/inst-1/renew", url.Values{"due_back": {yesterday}})
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Invalid date - renewal in past")
	assert.Contains(t, body, `value="`+yesterday+`"`)
}

func TestRenewRejectsDateBeyondFourWeeks(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t, user.PermMarkReturned)

	env.loanRepo.EXPECT().GetInstance(gomock.Any(), "inst-1").Return(testInstance(), nil).Times(2)

	tooFar := time.Now().AddDate(0, 0, 35).Format(dateLayout)
	req := testutil.NewFormRequest("/instances/inst-1/renew", url.Values{"due_back": {tooFar}})
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid date - renewal more than 4 weeks ahead")
}

func TestRenewRejectsMalformedDate(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t, user.PermMarkReturned)

	env.loanRepo.EXPECT().GetInstance(gomock.Any(), "inst-1").Return(testInstance(), nil)

	req := testutil.NewFormRequest("/instances/inst-1/renew", url.Values{"due_back": {"06/30/2026"}})
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enter a valid date (YYYY-MM-DD)")
}

func TestRenewValidDateRedirectsToLoans(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t, user.PermMarkReturned)

	proposed := time.Now().AddDate(0, 0, 7)
	y, m, d := proposed.Date()
	want := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	env.loanRepo.EXPECT().GetInstance(gomock.Any(), "inst-1").Return(testInstance(), nil).Times(2)
	env.loanRepo.EXPECT().UpdateDueBack(gomock.Any(), "inst-1", want).Return(nil)

	req := testutil.NewFormRequest("/instances/inst-1/renew", url.Values{"due_back": {want.Format(dateLayout)}})
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/loans", rec.Header().Get("Location"))
}

func TestMyLoansListsOwnBorrowedCopies(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t)

	instance := testInstance()
	env.loanRepo.EXPECT().
		ListOnLoanByBorrower(gomock.Any(), "user-1", loanPageSize, 0).
		Return([]catalog.BookInstance{instance}, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/myloans", nil)
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune")
}

func TestAllLoansClampsOutOfRangePage(t *testing.T) {
	env := newTestEnv(t)
	mux := env.server.Routes()
	cookie := env.loginAs(t, user.PermMarkReturned, user.PermEdit)

	// Page 9 of 4 records lands on page 2.
	env.loanRepo.EXPECT().
		ListOnLoan(gomock.Any(), loanPageSize, 24).
		Return(nil, 4, nil)
	env.loanRepo.EXPECT().
		ListOnLoan(gomock.Any(), loanPageSize, 3).
		Return([]catalog.BookInstance{testInstance()}, 4, nil)

	req := httptest.NewRequest(http.MethodGet, "/loans?page=9", nil)
	req = testutil.WithCookie(req, sessionCookie, cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune")
}
