package web

import (
	"errors"
	"net/http"
	"strings"

	"locallibrary/internal/catalog"
)

const bookPageSize = 2

type bookListData struct {
	baseData
	Books      []catalog.Book
	Pagination Pagination
}

func (s *Server) handleBookList(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	books, total, err := s.catalog.ListBooks(r.Context(), bookPageSize, (page-1)*bookPageSize)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	pg := paginate(page, bookPageSize, total)
	if pg.Page != page {
		// Requested page was out of range; refetch the clamped one.
		books, _, err = s.catalog.ListBooks(r.Context(), bookPageSize, pg.Offset())
		if err != nil {
			s.serverError(w, r, err)
			return
		}
	}

	s.render(w, r, http.StatusOK, "book_list.html", bookListData{
		baseData:   s.baseData(r, "Books"),
		Books:      books,
		Pagination: pg,
	})
}

type bookDetailData struct {
	baseData
	Book      catalog.Book
	Instances []catalog.BookInstance
}

func (s *Server) handleBookDetail(w http.ResponseWriter, r *http.Request) {
	book, instances, err := s.catalog.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "book_detail.html", bookDetailData{
		baseData:  s.baseData(r, book.Title),
		Book:      book,
		Instances: instances,
	})
}

type bookFormData struct {
	baseData
	Form        bookForm
	FieldErrors map[string]string
	Authors     []catalog.Author
	Genres      []catalog.Genre
	Languages   []catalog.Language
	IsUpdate    bool
}

func (s *Server) bookFormData(r *http.Request, title string, form bookForm, isUpdate bool) (bookFormData, error) {
	data := bookFormData{
		baseData: s.baseData(r, title),
		Form:     form,
		IsUpdate: isUpdate,
	}
	var err error
	if data.Authors, err = s.catalog.ListAllAuthors(r.Context()); err != nil {
		return bookFormData{}, err
	}
	if data.Genres, err = s.catalog.ListGenres(r.Context()); err != nil {
		return bookFormData{}, err
	}
	if data.Languages, err = s.catalog.ListLanguages(r.Context()); err != nil {
		return bookFormData{}, err
	}
	return data, nil
}

// GenreSelected reports whether a genre id is in the form's current set. Used
// to re-check boxes when the form re-renders.
func (d bookFormData) GenreSelected(id string) bool {
	for _, g := range d.Form.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

func parseBookForm(r *http.Request) (bookForm, error) {
	if err := r.ParseForm(); err != nil {
		return bookForm{}, err
	}
	return bookForm{
		Title:      strings.TrimSpace(r.PostFormValue("title")),
		AuthorID:   r.PostFormValue("author_id"),
		Summary:    strings.TrimSpace(r.PostFormValue("summary")),
		ISBN:       strings.TrimSpace(r.PostFormValue("isbn")),
		LanguageID: r.PostFormValue("language_id"),
		GenreIDs:   r.PostForm["genre_ids"],
	}, nil
}

func (s *Server) handleBookCreateForm(w http.ResponseWriter, r *http.Request) {
	data, err := s.bookFormData(r, "Create book", bookForm{}, false)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "book_form.html", data)
}

func (s *Server) handleBookCreate(w http.ResponseWriter, r *http.Request) {
	form, err := parseBookForm(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	if fieldErrors := validateForm(form); fieldErrors != nil {
		data, err := s.bookFormData(r, "Create book", form, false)
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		data.FieldErrors = fieldErrors
		s.render(w, r, http.StatusOK, "book_form.html", data)
		return
	}

	book := catalog.Book{
		Title:      form.Title,
		AuthorID:   form.AuthorID,
		Summary:    form.Summary,
		ISBN:       form.ISBN,
		LanguageID: form.LanguageID,
	}
	if err := s.catalog.CreateBook(r.Context(), &book, form.GenreIDs); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/books/"+book.ID, http.StatusSeeOther)
}

func (s *Server) handleBookUpdateForm(w http.ResponseWriter, r *http.Request) {
	book, _, err := s.catalog.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	form := bookForm{
		Title:      book.Title,
		AuthorID:   book.AuthorID,
		Summary:    book.Summary,
		ISBN:       book.ISBN,
		LanguageID: book.LanguageID,
	}
	for _, g := range book.Genres {
		form.GenreIDs = append(form.GenreIDs, g.ID)
	}

	data, err := s.bookFormData(r, "Update book", form, true)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "book_form.html", data)
}

func (s *Server) handleBookUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form, err := parseBookForm(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	if fieldErrors := validateForm(form); fieldErrors != nil {
		data, err := s.bookFormData(r, "Update book", form, true)
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		data.FieldErrors = fieldErrors
		s.render(w, r, http.StatusOK, "book_form.html", data)
		return
	}

	book := catalog.Book{
		ID:         id,
		Title:      form.Title,
		AuthorID:   form.AuthorID,
		Summary:    form.Summary,
		ISBN:       form.ISBN,
		LanguageID: form.LanguageID,
	}
	if err := s.catalog.UpdateBook(r.Context(), &book, form.GenreIDs); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/books/"+id, http.StatusSeeOther)
}

type bookDeleteData struct {
	baseData
	Book catalog.Book
}

func (s *Server) handleBookDeleteForm(w http.ResponseWriter, r *http.Request) {
	book, _, err := s.catalog.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "book_confirm_delete.html", bookDeleteData{
		baseData: s.baseData(r, "Delete book"),
		Book:     book,
	})
}

func (s *Server) handleBookDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteBook(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}
