package web

import (
	"errors"
	"net/http"

	"locallibrary/internal/catalog"
)

type genreListData struct {
	baseData
	Genres []catalog.Genre
}

func (s *Server) handleGenreList(w http.ResponseWriter, r *http.Request) {
	genres, err := s.catalog.ListGenres(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "genre_list.html", genreListData{
		baseData: s.baseData(r, "Genres"),
		Genres:   genres,
	})
}

type genreDetailData struct {
	baseData
	Genre catalog.Genre
	Books []catalog.Book
}

func (s *Server) handleGenreDetail(w http.ResponseWriter, r *http.Request) {
	genre, books, err := s.catalog.GetGenre(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "genre_detail.html", genreDetailData{
		baseData: s.baseData(r, genre.Name),
		Genre:    genre,
		Books:    books,
	})
}
