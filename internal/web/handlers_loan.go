package web

import (
	"errors"
	"net/http"
	"time"

	"locallibrary/internal/catalog"
	"locallibrary/internal/loan"
)

const loanPageSize = 3

type loanListData struct {
	baseData
	Instances  []catalog.BookInstance
	Pagination Pagination
	Today      time.Time
}

func (s *Server) handleMyLoans(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	page := pageParam(r)

	instances, total, err := s.loans.ListBorrowedByUser(r.Context(), actor.User.ID, loanPageSize, (page-1)*loanPageSize)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	pg := paginate(page, loanPageSize, total)
	if pg.Page != page {
		instances, _, err = s.loans.ListBorrowedByUser(r.Context(), actor.User.ID, loanPageSize, pg.Offset())
		if err != nil {
			s.serverError(w, r, err)
			return
		}
	}

	s.render(w, r, http.StatusOK, "my_loans.html", loanListData{
		baseData:   s.baseData(r, "My borrowed books"),
		Instances:  instances,
		Pagination: pg,
		Today:      time.Now(),
	})
}

func (s *Server) handleAllLoans(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	instances, total, err := s.loans.ListAllOnLoan(r.Context(), loanPageSize, (page-1)*loanPageSize)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	pg := paginate(page, loanPageSize, total)
	if pg.Page != page {
		instances, _, err = s.loans.ListAllOnLoan(r.Context(), loanPageSize, pg.Offset())
		if err != nil {
			s.serverError(w, r, err)
			return
		}
	}

	s.render(w, r, http.StatusOK, "all_loans.html", loanListData{
		baseData:   s.baseData(r, "All borrowed books"),
		Instances:  instances,
		Pagination: pg,
		Today:      time.Now(),
	})
}

type renewData struct {
	baseData
	Instance    catalog.BookInstance
	Form        renewForm
	FieldErrors map[string]string
	Today       time.Time
	Proposed    time.Time
}

func (s *Server) handleRenewForm(w http.ResponseWriter, r *http.Request) {
	instance, err := s.loans.Instance(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	now := time.Now()
	proposed := loan.ProposedRenewalDate(now)
	s.render(w, r, http.StatusOK, "renew_form.html", renewData{
		baseData: s.baseData(r, "Renew: "+instance.BookTitle),
		Instance: instance,
		Form:     renewForm{DueBack: proposed.Format(dateLayout)},
		Today:    now,
		Proposed: proposed,
	})
}

func (s *Server) handleRenew(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	instance, err := s.loans.Instance(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.serverError(w, r, err)
		return
	}
	form := renewForm{DueBack: r.PostFormValue("due_back")}

	now := time.Now()
	data := renewData{
		baseData: s.baseData(r, "Renew: "+instance.BookTitle),
		Instance: instance,
		Form:     form,
		Today:    now,
		Proposed: loan.ProposedRenewalDate(now),
	}

	if fieldErrors := validateForm(form); fieldErrors != nil {
		data.FieldErrors = fieldErrors
		s.render(w, r, http.StatusOK, "renew_form.html", data)
		return
	}

	proposed, err := parseDate(form.DueBack)
	if err != nil {
		data.FieldErrors = map[string]string{"DueBack": "Enter a valid date (YYYY-MM-DD)"}
		s.render(w, r, http.StatusOK, "renew_form.html", data)
		return
	}

	if err := s.loans.Renew(r.Context(), id, *proposed); err != nil {
		var vErr *loan.ValidationError
		if errors.As(err, &vErr) {
			// Rejected input re-renders with the message; nothing persisted.
			data.FieldErrors = map[string]string{"DueBack": vErr.Message}
			s.render(w, r, http.StatusOK, "renew_form.html", data)
			return
		}
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/loans", http.StatusSeeOther)
}
