package web

import (
	"net/http"

	"locallibrary/internal/user"
)

// Routes builds the application's route table with its access policy:
// genre and author browsing is public, book browsing needs a login, and the
// dashboard, renewal and catalog mutations need staff permissions.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", s.permitted(s.handleHome, user.PermMarkReturned))

	loginPost := http.Handler(s.public(s.handleLogin))
	if s.loginLimiter != nil {
		loginPost = s.loginLimiter.Middleware(loginPost)
	}
	mux.Handle("GET /login", s.public(s.handleLoginForm))
	mux.Handle("POST /login", loginPost)
	mux.Handle("POST /logout", s.authed(s.handleLogout))

	mux.Handle("GET /books", s.authed(s.handleBookList))
	mux.Handle("GET /books/{id}", s.authed(s.handleBookDetail))
	mux.Handle("GET /books/create", s.permitted(s.handleBookCreateForm, user.PermMarkReturned, user.PermEdit))
	mux.Handle("POST /books/create", s.permitted(s.handleBookCreate, user.PermMarkReturned, user.PermEdit))
	mux.Handle("GET /books/{id}/update", s.permitted(s.handleBookUpdateForm, user.PermMarkReturned, user.PermEdit))
	mux.Handle("POST /books/{id}/update", s.permitted(s.handleBookUpdate, user.PermMarkReturned, user.PermEdit))
	mux.Handle("GET /books/{id}/delete", s.permitted(s.handleBookDeleteForm, user.PermMarkReturned, user.PermEdit))
	mux.Handle("POST /books/{id}/delete", s.permitted(s.handleBookDelete, user.PermMarkReturned, user.PermEdit))

	mux.Handle("GET /authors", s.public(s.handleAuthorList))
	mux.Handle("GET /authors/{id}", s.public(s.handleAuthorDetail))
	mux.Handle("GET /authors/create", s.permitted(s.handleAuthorCreateForm, user.PermMarkReturned, user.PermEdit))
	mux.Handle("POST /authors/create", s.permitted(s.handleAuthorCreate, user.PermMarkReturned, user.PermEdit))
	mux.Handle("GET /authors/{id}/update", s.permitted(s.handleAuthorUpdateForm, user.PermMarkReturned, user.PermEdit))
	mux.Handle("POST /authors/{id}/update", s.permitted(s.handleAuthorUpdate, user.PermMarkReturned, user.PermEdit))
	mux.Handle("GET /authors/{id}/delete", s.permitted(s.handleAuthorDeleteForm, user.PermMarkReturned, user.PermEdit))
	mux.Handle("POST /authors/{id}/delete", s.permitted(s.handleAuthorDelete, user.PermMarkReturned, user.PermEdit))

	mux.Handle("GET /genres", s.public(s.handleGenreList))
	mux.Handle("GET /genres/{id}", s.public(s.handleGenreDetail))

	mux.Handle("GET /myloans", s.authed(s.handleMyLoans))
	mux.Handle("GET /loans", s.permitted(s.handleAllLoans, user.PermMarkReturned, user.PermEdit))

	mux.Handle("GET /instances/{id}/renew", s.permitted(s.handleRenewForm, user.PermMarkReturned))
	mux.Handle("POST /instances/{id}/renew", s.permitted(s.handleRenew, user.PermMarkReturned))

	mux.Handle("GET /static/", http.FileServer(http.FS(staticFS)))

	return mux
}
