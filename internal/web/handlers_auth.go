package web

import (
	"errors"
	"net/http"
	"strings"

	"locallibrary/internal/session"
	"locallibrary/internal/user"
)

type loginData struct {
	baseData
	Form        loginForm
	FieldErrors map[string]string
	FormError   string
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if actorFrom(r) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	data := loginData{
		baseData: s.baseData(r, "Sign in"),
		Form:     loginForm{Next: safeNext(r.URL.Query().Get("next"))},
	}
	s.render(w, r, http.StatusOK, "login.html", data)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.serverError(w, r, err)
		return
	}

	form := loginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Next:     safeNext(r.PostFormValue("next")),
	}

	data := loginData{baseData: s.baseData(r, "Sign in"), Form: form}
	if fieldErrors := validateForm(form); fieldErrors != nil {
		data.FieldErrors = fieldErrors
		data.Form.Password = ""
		s.render(w, r, http.StatusOK, "login.html", data)
		return
	}

	u, err := s.users.Authenticate(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			data.FormError = "Email or password is incorrect"
			data.Form.Password = ""
			s.render(w, r, http.StatusOK, "login.html", data)
			return
		}
		s.serverError(w, r, err)
		return
	}

	cookieValue, err := s.sessions.Start(r.Context(), u.ID, r.UserAgent(), clientIP(r))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.setSessionCookie(w, cookieValue)

	target := form.Next
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := s.sessions.End(r.Context(), cookie.Value); err != nil {
			s.serverError(w, r, err)
			return
		}
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeNext only honors relative redirect targets. Anything that could leave
// the site is dropped.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return forwarded
	}
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}
