package web

import (
	"errors"
	"net/http"
	"strings"

	"locallibrary/internal/catalog"
)

const authorPageSize = 2

type authorListData struct {
	baseData
	Authors    []catalog.Author
	Pagination Pagination
}

func (s *Server) handleAuthorList(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	authors, total, err := s.catalog.ListAuthors(r.Context(), authorPageSize, (page-1)*authorPageSize)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	pg := paginate(page, authorPageSize, total)
	if pg.Page != page {
		authors, _, err = s.catalog.ListAuthors(r.Context(), authorPageSize, pg.Offset())
		if err != nil {
			s.serverError(w, r, err)
			return
		}
	}

	s.render(w, r, http.StatusOK, "author_list.html", authorListData{
		baseData:   s.baseData(r, "Authors"),
		Authors:    authors,
		Pagination: pg,
	})
}

type authorDetailData struct {
	baseData
	Author catalog.Author
	Books  []catalog.Book
}

func (s *Server) handleAuthorDetail(w http.ResponseWriter, r *http.Request) {
	author, books, err := s.catalog.GetAuthor(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "author_detail.html", authorDetailData{
		baseData: s.baseData(r, author.Name()),
		Author:   author,
		Books:    books,
	})
}

type authorFormData struct {
	baseData
	Form        authorForm
	FieldErrors map[string]string
	IsUpdate    bool
}

func parseAuthorForm(r *http.Request) (authorForm, error) {
	if err := r.ParseForm(); err != nil {
		return authorForm{}, err
	}
	return authorForm{
		FirstName:   strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:    strings.TrimSpace(r.PostFormValue("last_name")),
		DateOfBirth: r.PostFormValue("date_of_birth"),
		DateOfDeath: r.PostFormValue("date_of_death"),
	}, nil
}

// authorFromForm builds the entity from validated input. Date of death is not
// checked against date of birth; the store accepts whatever staff enter.
func authorFromForm(form authorForm) (catalog.Author, error) {
	dob, err := parseDate(form.DateOfBirth)
	if err != nil {
		return catalog.Author{}, err
	}
	dod, err := parseDate(form.DateOfDeath)
	if err != nil {
		return catalog.Author{}, err
	}
	return catalog.Author{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		DateOfBirth: dob,
		DateOfDeath: dod,
	}, nil
}

func (s *Server) handleAuthorCreateForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "author_form.html", authorFormData{
		baseData: s.baseData(r, "Create author"),
	})
}

func (s *Server) handleAuthorCreate(w http.ResponseWriter, r *http.Request) {
	form, err := parseAuthorForm(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	if fieldErrors := validateForm(form); fieldErrors != nil {
		s.render(w, r, http.StatusOK, "author_form.html", authorFormData{
			baseData:    s.baseData(r, "Create author"),
			Form:        form,
			FieldErrors: fieldErrors,
		})
		return
	}

	author, err := authorFromForm(form)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := s.catalog.CreateAuthor(r.Context(), &author); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/authors/"+author.ID, http.StatusSeeOther)
}

func (s *Server) handleAuthorUpdateForm(w http.ResponseWriter, r *http.Request) {
	author, _, err := s.catalog.GetAuthor(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "author_form.html", authorFormData{
		baseData: s.baseData(r, "Update author"),
		Form: authorForm{
			FirstName:   author.FirstName,
			LastName:    author.LastName,
			DateOfBirth: formatDate(author.DateOfBirth),
			DateOfDeath: formatDate(author.DateOfDeath),
		},
		IsUpdate: true,
	})
}

func (s *Server) handleAuthorUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form, err := parseAuthorForm(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	if fieldErrors := validateForm(form); fieldErrors != nil {
		s.render(w, r, http.StatusOK, "author_form.html", authorFormData{
			baseData:    s.baseData(r, "Update author"),
			Form:        form,
			FieldErrors: fieldErrors,
			IsUpdate:    true,
		})
		return
	}

	author, err := authorFromForm(form)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	author.ID = id
	if err := s.catalog.UpdateAuthor(r.Context(), &author); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/authors/"+id, http.StatusSeeOther)
}

type authorDeleteData struct {
	baseData
	Author catalog.Author
	Books  []catalog.Book
}

func (s *Server) handleAuthorDeleteForm(w http.ResponseWriter, r *http.Request) {
	author, books, err := s.catalog.GetAuthor(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "author_confirm_delete.html", authorDeleteData{
		baseData: s.baseData(r, "Delete author"),
		Author:   author,
		Books:    books,
	})
}

func (s *Server) handleAuthorDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteAuthor(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/authors", http.StatusSeeOther)
}
