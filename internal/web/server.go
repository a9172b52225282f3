package web

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"locallibrary/internal/catalog"
	"locallibrary/internal/httpx"
	"locallibrary/internal/loan"
	"locallibrary/internal/session"
	"locallibrary/internal/user"
)

// Server renders the catalog's HTML pages.
type Server struct {
	catalog  *catalog.Service
	loans    *loan.Service
	users    *user.Service
	sessions *session.Service

	devMode      bool
	cookieSecure bool
	loginLimiter *httpx.RateLimitMiddleware

	templates map[string]*template.Template
}

type Config struct {
	Catalog  *catalog.Service
	Loans    *loan.Service
	Users    *user.Service
	Sessions *session.Service

	// DevMode adds the diagnostic author listing to the home page.
	DevMode bool
	// CookieSecure marks the session cookie Secure; on behind TLS.
	CookieSecure bool
	// LoginLimiter, when set, rate limits login attempts per client.
	LoginLimiter *httpx.RateLimitMiddleware
}

func NewServer(cfg Config) *Server {
	return &Server{
		catalog:      cfg.Catalog,
		loans:        cfg.Loans,
		users:        cfg.Users,
		sessions:     cfg.Sessions,
		devMode:      cfg.DevMode,
		cookieSecure: cfg.CookieSecure,
		loginLimiter: cfg.LoginLimiter,
		templates:    parseTemplates(),
	}
}

// baseData carries the fields every page's layout needs.
type baseData struct {
	Title           string
	IsAuthenticated bool
	Username        string
	CanMarkReturned bool
	CanEdit         bool
}

func (s *Server) baseData(r *http.Request, title string) baseData {
	data := baseData{Title: title}
	if actor := actorFrom(r); actor != nil {
		data.IsAuthenticated = true
		data.Username = actor.User.Username
		data.CanMarkReturned = actor.Has(user.PermMarkReturned)
		data.CanEdit = actor.Has(user.PermEdit)
	}
	return data
}

// render writes a page through its template set. The page is rendered to a
// buffer first so a template fault cannot leave a half-written response.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tpl, ok := s.templates[page]
	if !ok {
		s.serverError(w, r, errTemplateMissing(page))
		return
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errTemplateMissing string

func (e errTemplateMissing) Error() string {
	return "template not registered: " + string(e)
}

type errorData struct {
	baseData
	Status  int
	Message string
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "error.html", errorData{
		baseData: s.baseData(r, "Not Found"),
		Status:   http.StatusNotFound,
		Message:  "The record you asked for does not exist.",
	})
}

func (s *Server) forbidden(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusForbidden, "error.html", errorData{
		baseData: s.baseData(r, "Forbidden"),
		Status:   http.StatusForbidden,
		Message:  "You do not have permission to view this page.",
	})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("server error: request_id=%s path=%s error=%v", httpx.RequestIDFrom(r), r.URL.Path, err)

	// Render directly; going through render again could recurse.
	tpl, ok := s.templates["error.html"]
	if !ok {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	data := errorData{
		baseData: s.baseData(r, "Server Error"),
		Status:   http.StatusInternalServerError,
		Message:  "Something went wrong. Please try again.",
	}
	if execErr := tpl.ExecuteTemplate(&buf, "layout.html", data); execErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}
